package urlbuf

import (
	"net/netip"
)

var regNameCodec = NewPercentCodec(RegName)

// ParseHost recognizes the RFC 3986 host production:
//
//	host = IP-literal / IPv4address / reg-name
//
// against the fully-isolated encoded host substring data (brackets
// included for IP-literal forms) and classifies it. It leans on
// net/netip for IPv4/IPv6 literal validation and canonical-shape
// checking, the same library the teacher's normalize.go reaches for
// when confirming an address literal (see SPEC_FULL.md §4.3), rather
// than hand-rolling RFC 3986's IPv6 grammar (::-compression, embedded
// IPv4 tail) a second time.
func ParseHost(data []byte) (hostType HostType, err error) {
	if len(data) == 0 {
		return HostNone, nil
	}

	if data[0] == '[' {
		return parseIPLiteral(data)
	}

	if isIPv4Literal(data) {
		if _, perr := netip.ParseAddr(string(data)); perr == nil {
			return HostIPv4, nil
		}
	}

	if err := regNameCodec.Validate(data); err != nil {
		return HostNone, invalidPartf("ParseHost", ErrInvalidRegisteredName, "invalid reg-name: %v", err)
	}

	return HostName, nil
}

// isIPv4Literal is a cheap shape test (digits and dots only, 4 groups)
// used to decide whether to even attempt netip validation, so that a
// reg-name like "1.2.3.4.com" isn't misrouted.
func isIPv4Literal(data []byte) bool {
	groups := 1
	for _, c := range data {
		switch {
		case c == '.':
			groups++
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}

	return groups == 4
}

func parseIPLiteral(data []byte) (HostType, error) {
	if len(data) < 2 || data[len(data)-1] != ']' {
		return HostNone, invalidPartf("ParseHost", ErrInvalidHostAddress, "unterminated IP-literal %q", data)
	}

	inner := data[1 : len(data)-1]
	if len(inner) == 0 {
		return HostNone, invalidPartf("ParseHost", ErrInvalidHostAddress, "empty IP-literal")
	}

	if inner[0] == 'v' || inner[0] == 'V' {
		if err := validateIPvFuture(inner); err != nil {
			return HostNone, err
		}

		return HostIPvFuture, nil
	}

	addr, perr := netip.ParseAddr(string(inner))
	if perr != nil || !addr.Is6() {
		return HostNone, invalidPartf("ParseHost", ErrInvalidHostAddress, "invalid IPv6 address %q", inner)
	}

	return HostIPv6, nil
}

// validateIPvFuture recognizes:
//
//	IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
func validateIPvFuture(data []byte) error {
	if len(data) < 4 {
		return invalidPartf("validateIPvFuture", ErrInvalidHostAddress, "too short: %q", data)
	}

	i := 1
	start := i
	for i < len(data) && isHex(data[i]) {
		i++
	}
	if i == start {
		return invalidPartf("validateIPvFuture", ErrInvalidHostAddress, "expected hex version near %q", data)
	}
	if i >= len(data) || data[i] != '.' {
		return invalidPartf("validateIPvFuture", ErrInvalidHostAddress, "expected '.' near %q", data[i:])
	}
	i++

	if i >= len(data) {
		return invalidPartf("validateIPvFuture", ErrInvalidHostAddress, "missing address part")
	}

	future := Unreserved.Union(SubDelims).Union(charSetFromBytes(':'))
	for ; i < len(data); i++ {
		if !future.Contains(data[i]) {
			return invalidPartf("validateIPvFuture", ErrInvalidHostAddress, "invalid byte %q", data[i])
		}
	}

	return nil
}
