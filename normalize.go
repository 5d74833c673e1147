package urlbuf

// NormalizeScheme lower-cases the ASCII letters of the scheme component
// in place and returns a borrow of the normalized region. It is the
// only built-in normalization this library performs (spec.md §4.5,
// Non-goals): URI normalization beyond scheme case-folding — percent-
// decoding, dot-segment removal, Unicode/IDNA host normalization — is
// explicitly out of scope and is not attempted here, unlike the
// teacher's normalize.go, which additionally applies IDNA/Unicode
// normalization via golang.org/x/net/idna and golang.org/x/text/unicode/norm
// (dropped; see DESIGN.md).
//
// Calling NormalizeScheme twice produces the same bytes as calling it
// once (spec.md P8).
func (u *Url) NormalizeScheme() []byte {
	region := u.buf.region(IDScheme)
	if len(region) == 0 {
		return region
	}

	// the trailing ':' (if present) is not a letter and is left alone.
	end := len(region)
	if region[end-1] == ':' {
		end--
	}

	NormalizeSchemeBytes(region[:end])

	return region
}
