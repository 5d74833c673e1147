package urlbuf

import "strconv"

// ValidatePort recognizes the RFC 3986 port production, "*DIGIT",
// against the already-isolated encoded port substring (no leading ':').
func ValidatePort(data []byte) error {
	for _, c := range data {
		if !Digit.Contains(c) {
			return invalidPartf("ValidatePort", ErrInvalidPort, "non-digit byte %q", c)
		}
	}

	return nil
}

// PortNumber parses data (digits only, no leading ':') as a uint16. ok
// is false if data is empty or does not fit in 16 bits.
func PortNumber(data []byte) (n uint16, ok bool) {
	if len(data) == 0 {
		return 0, false
	}

	v, err := strconv.ParseUint(string(data), 10, 16)
	if err != nil {
		return 0, false
	}

	return uint16(v), true
}
