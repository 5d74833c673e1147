package urlbuf

import "sync"

type (
	// Option allows fine-grained tuning of which components a setter
	// call re-validates, and of the DNS-vs-reg-name host validation
	// policy. Modeled on the teacher's options.go functional-options
	// type.
	Option func(*options)

	options struct {
		schemeIsDNSFunc func(string) bool

		// validationFlags selects which components a setter call
		// re-validates; used internally so a setter that only touches
		// one component doesn't pay to re-check the others.
		validationFlags uint16
	}

	optionsPool struct {
		*sync.Pool
	}
)

const (
	flagValidateHost uint16 = 1 << iota
	flagValidatePort
	flagValidatePath
	flagValidateQuery
	flagValidateFragment

	flagValidateAll = flagValidateHost | flagValidatePort | flagValidatePath |
		flagValidateQuery | flagValidateFragment
)

var (
	packageLevelDefaults = options{
		schemeIsDNSFunc: UsesDNSHostValidation,
		validationFlags: flagValidateAll,
	}

	muxDefaults   sync.Mutex
	poolOfOptions = optionsPool{
		Pool: &sync.Pool{
			New: func() any {
				return defaultOptions()
			},
		},
	}
)

func borrowOptions() *options {
	o := poolOfOptions.Get().(*options)
	*o = packageLevelDefaults

	return o
}

func redeemOptions(o *options) {
	if o == &packageLevelDefaults {
		return
	}
	poolOfOptions.Put(o)
}

func defaultOptions() *options {
	o := packageLevelDefaults

	return &o
}

// applyOptions borrows an *options from the pool (or reuses the shared
// package-level defaults when there is nothing to override), applies
// opts, and returns it alongside the function that returns it to the
// pool. **Don't mutate the returned options after calling the redeem
// function.**
func applyOptions(opts []Option) (*options, func(*options)) {
	if len(opts) == 0 {
		return &packageLevelDefaults, redeemOptions
	}

	o := borrowOptions()
	for _, apply := range opts {
		apply(o)
	}

	return o, redeemOptions
}

// SetDefaultOptions tweaks package-level defaults. Only use this during
// initialization: it mutates a package global.
func SetDefaultOptions(opts ...Option) {
	muxDefaults.Lock()
	defer muxDefaults.Unlock()

	for _, apply := range opts {
		apply(&packageLevelDefaults)
	}
}

func withValidationFlags(flags uint16) Option {
	return func(o *options) {
		o.validationFlags = flags
	}
}

// WithSchemeIsDNSFunc overrides the function used to decide whether a
// scheme's host should be held to the stricter DNS-hostname subset of
// reg-name (see dns.go).
func WithSchemeIsDNSFunc(fn func(string) bool) Option {
	return func(o *options) {
		o.schemeIsDNSFunc = fn
	}
}
