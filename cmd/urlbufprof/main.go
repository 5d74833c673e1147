// Command urlbufprof profiles UrlBuffer parsing and mutation against a
// fixed URL corpus, the same harness shape as the teacher's
// profiling/ submodule (profileCPU/profileMemory).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/go-urlbuf/urlbuf"
	"github.com/go-urlbuf/urlbuf/internal/profcorpus"
)

func main() {
	mode := flag.String("mode", "cpu", "profile mode: cpu or mem")
	iterations := flag.Int("n", 200000, "number of corpus passes")
	outdir := flag.String("out", ".", "profile output directory")
	flag.Parse()

	var stop interface{ Stop() }
	switch *mode {
	case "cpu":
		stop = profile.Start(profile.CPUProfile, profile.ProfilePath(*outdir))
	case "mem":
		stop = profile.Start(profile.MemProfile, profile.ProfilePath(*outdir))
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
	defer stop.Stop()

	if err := run(*iterations); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(iterations int) error {
	for i := 0; i < iterations; i++ {
		for _, raw := range profcorpus.URLs {
			u, err := urlbuf.ParseURL(raw)
			if err != nil {
				return fmt.Errorf("parse %q: %w", raw, err)
			}

			segs := u.Segments()
			for j := 0; j < segs.Count(); j++ {
				if _, err := segs.EncodedAt(j); err != nil {
					return err
				}
			}

			params := u.Params()
			for j := 0; j < params.Count(); j++ {
				if _, _, _, err := params.KeyValueAt(j); err != nil {
					return err
				}
			}

			if err := exerciseMutation(u); err != nil {
				return err
			}
		}
	}

	return nil
}

// exerciseMutation performs one insert/erase round-trip on the query,
// and on the path when the URL has an authority (segment mutation
// needs an abempty path), the way a real caller would build up a URL
// incrementally, then discards the result.
func exerciseMutation(u *urlbuf.Url) error {
	if u.HasAuthority() {
		segs := u.Segments()
		if err := segs.Insert(0, "probe"); err != nil {
			return err
		}
		if err := segs.Erase(0); err != nil {
			return err
		}
	}

	params := u.Params()
	if err := params.Insert(0, "probe", "1", true); err != nil {
		return err
	}

	return params.Erase(0)
}
