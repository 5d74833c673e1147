package urlbuf

// ParseScheme recognizes the RFC 3986 scheme production:
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
//
// against data and returns the number of bytes consumed by a maximal
// match. It does not look for a trailing ':' — callers isolate the
// scheme substring first (see Url.SetEncodedURL).
func ParseScheme(data []byte) (consumed int, err error) {
	if len(data) == 0 {
		return 0, invalidPartf("ParseScheme", ErrInvalidScheme, "scheme must not be empty")
	}
	if !Alpha.Contains(data[0]) {
		return 0, invalidPartf("ParseScheme", ErrInvalidScheme,
			"scheme must start with an ASCII letter, got %q", data[0])
	}

	n := 1
	for n < len(data) && SchemeChar.Contains(data[n]) {
		n++
	}

	return n, nil
}

// NormalizeSchemeBytes lower-cases the ASCII letters of b in place. It is
// the only built-in normalization this library performs (spec.md §4.5).
func NormalizeSchemeBytes(b []byte) {
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
}
