package urlbuf

import (
	"bytes"
	"hash/crc64"
)

// UsesDNSHostValidation reports whether scheme is one of the well-known
// schemes (per the IANA URI scheme registry) that is conventionally
// expected to carry a DNS hostname rather than an arbitrary RFC 3986
// reg-name. When it reports true, SetScheme, SetEncodedHost and
// SetEncodedURL additionally hold a HostName host to ValidateDNSHostname
// and reject the call if the host fails it, even though the reg-name
// grammar alone would accept that host. HostType stays HostName either
// way.
//
// This is a package-level variable, not a constant function, so callers
// may override it to add or remove schemes.
var UsesDNSHostValidation = func(scheme string) bool {
	_, ok := dnsSchemesHashes[hashScheme(scheme)]

	return ok
}

var dnsSchemesTable = crc64.MakeTable(crc64.ISO)

func hashScheme(scheme string) uint64 {
	h := crc64.New(dnsSchemesTable)
	_, _ = h.Write([]byte(scheme))

	return h.Sum64()
}

var dnsSchemesHashes map[uint64]struct{}

func init() {
	schemes := []string{
		"https", "http",
		"aaa", "aaas", "acap", "acct",
		"cap", "cid",
		"coap", "coaps", "coap+tcp", "coap+ws", "coaps+tcp", "coaps+ws",
		"dav", "dict",
		"dns",
		"dntp",
		"finger",
		"ftp",
		"git",
		"gopher",
		"h323",
		"iax",
		"icap",
		"im",
		"imap",
		"ipp", "ipps",
		"irc", "irc6", "ircs",
		"jms",
		"ldap",
		"mailto",
		"mid",
		"msrp", "msrps",
		"nfs",
		"nntp",
		"ntp",
		"postgresql",
		"radius",
		"redis",
		"rmi",
		"rtsp", "rtsps", "rtspu",
		"rsync",
		"sftp",
		"skype",
		"smtp",
		"snmp",
		"soap",
		"ssh",
		"steam",
		"svn",
		"tcp",
		"telnet",
		"udp",
		"vnc",
		"wais",
		"ws",
		"wss",
	}

	dnsSchemesHashes = make(map[uint64]struct{}, len(schemes))
	for _, scheme := range schemes {
		dnsSchemesHashes[hashScheme(scheme)] = struct{}{}
	}
}

var dnsLabelCharSet = AlphaDigit.Union(charSetFromBytes('-'))

// ValidateDNSHostname applies the stricter RFC 1035 DNS-label subset of
// reg-name: dot-separated labels of 1-63 characters, each alphanumeric
// or '-', never starting or ending with '-'. It is consulted only when
// UsesDNSHostValidation(scheme) says the current scheme expects a real
// hostname; encoded (percent-escaped) hosts should be decoded first, as
// DNS labels are never themselves percent-encoded.
func ValidateDNSHostname(host []byte) error {
	if len(host) == 0 {
		return invalidPartf("ValidateDNSHostname", ErrInvalidHost, "empty hostname")
	}

	for _, label := range bytes.Split(host, []byte{'.'}) {
		if len(label) == 0 || len(label) > 63 {
			return invalidPartf("ValidateDNSHostname", ErrInvalidHost,
				"label %q must be 1-63 characters", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return invalidPartf("ValidateDNSHostname", ErrInvalidHost,
				"label %q must not start or end with '-'", label)
		}
		for _, c := range label {
			if !dnsLabelCharSet.Contains(c) {
				return invalidPartf("ValidateDNSHostname", ErrInvalidHost,
					"label %q contains invalid byte %q", label, c)
			}
		}
	}

	return nil
}
