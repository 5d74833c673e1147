package urlbuf

import (
	"bytes"
	"strconv"
)

// Url is the public façade over a UrlBuffer: it owns the single
// contiguous byte buffer and offers component-level getters and
// setters built on top of UrlBuffer.Resize. Every setter re-validates
// only what it touches, using the grammar helpers in grammar_*.go
// (spec.md §4.5).
//
// Grounded on the teacher's builder.go WithScheme/WithHost/... chain,
// generalized from "rebuild the whole value" to "resize-and-splice in
// place".
type Url struct {
	buf *UrlBuffer
}

// NewUrl returns an empty Url backed by the default heap-growing
// allocator.
func NewUrl() *Url {
	return &Url{buf: NewUrlBuffer()}
}

// NewUrlWithAllocator returns an empty Url backed by alloc.
func NewUrlWithAllocator(alloc Allocator) *Url {
	return &Url{buf: NewUrlBufferWithAllocator(alloc)}
}

// NewStaticUrl returns an empty Url whose storage is the caller's
// fixed-size backing array (see NewStaticUrlBuffer).
func NewStaticUrl(backing []byte) *Url {
	return &Url{buf: NewStaticUrlBuffer(backing)}
}

// ParseURL parses raw as a complete URI and returns the resulting Url.
func ParseURL(raw string, opts ...Option) (*Url, error) {
	u := NewUrl()
	if err := u.SetEncodedURL(raw, opts...); err != nil {
		return nil, err
	}

	return u, nil
}

// Buffer exposes the underlying UrlBuffer, for callers that need the
// lower-level Resize/ResizeRange primitives directly (segments.go and
// params.go are built on this).
func (u *Url) Buffer() *UrlBuffer {
	return u.buf
}

// EncodedURL returns the complete, already percent-encoded URL as a
// borrow of the buffer's content: every component region stores its
// own delimiters, so the whole URL is simply the buffer's bytes end
// to end (spec.md §3).
func (u *Url) EncodedURL() []byte {
	return u.buf.Bytes()
}

// String implements fmt.Stringer.
func (u *Url) String() string {
	return string(u.EncodedURL())
}

// HasAuthority reports whether the URL currently carries an authority
// (a leading "//" before the path).
func (u *Url) HasAuthority() bool {
	return u.buf.parts.HasAuthority()
}

// HasScheme reports whether the URL currently carries a scheme.
func (u *Url) HasScheme() bool {
	return u.buf.parts.Length(IDScheme) > 0
}

// HasPassword reports whether a password (distinct from an empty
// userinfo terminator) is present.
func (u *Url) HasPassword() bool {
	region := u.buf.region(IDPassword)

	return len(region) > 0 && region[0] == ':'
}

// HasUserInfo reports whether the authority carries a userinfo
// section at all (user, password, or both) terminated by '@'.
func (u *Url) HasUserInfo() bool {
	return u.buf.parts.Length(IDPassword) > 0
}

// collapseAuthorityIfEmpty removes the synthesized "//" marker once
// user, password, host and port have all gone empty, so that clearing
// the last remaining authority subcomponent also removes the
// authority itself rather than leaving a stray "//" behind (spec.md
// §4.5).
func (u *Url) collapseAuthorityIfEmpty() error {
	if !u.HasAuthority() {
		return nil
	}
	if len(u.EncodedUser()) > 0 || u.HasPassword() {
		return nil
	}
	if u.buf.parts.Length(IDHost) > 0 || u.buf.parts.Length(IDPort) > 0 {
		return nil
	}

	if err := u.setRegion(IDPassword, nil); err != nil {
		return err
	}

	return u.setRegion(IDUser, nil)
}

// setRegion resizes region id to hold exactly content and copies it
// in. content must already be valid for id's grammar; callers
// validate before calling this.
func (u *Url) setRegion(id ComponentID, content []byte) error {
	dst, err := u.buf.Resize(id, len(content))
	if err != nil {
		return err
	}
	copy(dst, content)

	return nil
}

// commitRegions replaces every component region at once via a single
// ResizeRange spanning the whole buffer, inheriting its strong
// exception-safety guarantee: either every region lands or, on a
// capacity failure, the buffer is left exactly as it was. This is
// what SetEncodedURL uses instead of a sequence of per-component
// setRegion calls, which could otherwise leave a mix of old and new
// region content behind if a later call in the sequence failed.
func (u *Url) commitRegions(regions [IDEnd][]byte) error {
	total := 0
	for _, r := range regions {
		total += len(r)
	}

	dst, err := u.buf.ResizeRange(IDScheme, IDEnd, total)
	if err != nil {
		return err
	}

	offset := 0
	for id, content := range regions {
		copy(dst[offset:offset+len(content)], content)
		u.buf.parts.Offset[id] = offset
		offset += len(content)
	}
	u.buf.parts.Offset[IDEnd] = offset

	return nil
}

// Scheme returns the encoded scheme, without the trailing ':'. It is
// empty if no scheme is set.
func (u *Url) Scheme() []byte {
	region := u.buf.region(IDScheme)
	if len(region) == 0 {
		return region
	}

	return region[:len(region)-1]
}

// SetScheme sets the scheme component. An empty scheme removes it
// entirely. When opts (or the package defaults) route scheme through
// UsesDNSHostValidation and an existing host is already set, SetScheme
// re-validates that host against the stricter DNS-label grammar
// (see dns.go): a host that was a perfectly valid reg-name under the
// old scheme can become invalid once the new scheme expects DNS.
//
// Clearing the scheme does not re-validate the path: a rootless path
// whose first segment contains ':' is left as it is, and keeping the
// path valid as path-noscheme is the caller's responsibility.
func (u *Url) SetScheme(scheme string, opts ...Option) error {
	if scheme == "" {
		return u.setRegion(IDScheme, nil)
	}

	data := []byte(scheme)
	n, err := ParseScheme(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return invalidPartf("Url.SetScheme", ErrInvalidScheme,
			"trailing bytes after scheme: %q", data[n:])
	}

	o, redeem := applyOptions(opts)
	defer redeem(o)

	if o.validationFlags&flagValidateHost > 0 && o.schemeIsDNSFunc(scheme) {
		if host := u.buf.region(IDHost); len(host) > 0 && u.buf.parts.HostType == HostName {
			decoded, derr := regNameCodec.Decode(host)
			if derr != nil {
				return derr
			}
			if derr := ValidateDNSHostname(decoded); derr != nil {
				return derr
			}
		}
	}

	region := make([]byte, n+1)
	copy(region, data)
	region[n] = ':'

	return u.setRegion(IDScheme, region)
}

// ensureAuthority synthesizes an empty "//" authority marker if one
// is not already present, so that User/Host/Port setters always have
// an IDUser region to work with.
func (u *Url) ensureAuthority() error {
	if u.HasAuthority() {
		return nil
	}

	return u.setRegion(IDUser, []byte("//"))
}

// EncodedUser returns the still-percent-encoded user subcomponent
// (the bytes of IDUser after the leading "//").
func (u *Url) EncodedUser() []byte {
	region := u.buf.region(IDUser)
	if len(region) < 2 {
		return nil
	}

	return region[2:]
}

// User decodes EncodedUser.
func (u *Url) User() ([]byte, error) {
	return userInfoNCCodec.Decode(u.EncodedUser())
}

// SetEncodedUser sets the user subcomponent from already-encoded
// bytes, synthesizing the "//" authority marker if necessary.
func (u *Url) SetEncodedUser(encoded []byte) error {
	if err := userInfoNCCodec.Validate(encoded); err != nil {
		return invalidPartf("Url.SetEncodedUser", ErrInvalidUserInfo, "invalid user: %v", err)
	}
	if err := u.ensureAuthority(); err != nil {
		return err
	}

	region := make([]byte, 2+len(encoded))
	region[0], region[1] = '/', '/'
	copy(region[2:], encoded)

	if err := u.setRegion(IDUser, region); err != nil {
		return err
	}

	switch {
	case len(encoded) == 0 && !u.HasPassword():
		// no user and no password left: there is no userinfo section
		// to terminate, so drop any stale terminator.
		if err := u.setRegion(IDPassword, nil); err != nil {
			return err
		}
	case !u.HasUserInfo():
		// a non-empty user (or a password already present) needs '@'
		// to terminate the userinfo section.
		if err := u.setRegion(IDPassword, []byte("@")); err != nil {
			return err
		}
	}

	return u.collapseAuthorityIfEmpty()
}

// SetUser percent-encodes user against UserInfoNC and sets it.
func (u *Url) SetUser(user string) error {
	src := []byte(user)
	dst := make([]byte, userInfoNCCodec.EncodedSize(src))
	userInfoNCCodec.Encode(dst, src)

	return u.SetEncodedUser(dst)
}

// EncodedPassword returns the still-percent-encoded password, or nil
// if no password is set.
func (u *Url) EncodedPassword() []byte {
	region := u.buf.region(IDPassword)
	if len(region) == 0 || region[0] != ':' {
		return nil
	}

	return region[1 : len(region)-1] // strip ':' prefix and '@' suffix
}

// Password decodes EncodedPassword.
func (u *Url) Password() ([]byte, error) {
	return userInfoCodec.Decode(u.EncodedPassword())
}

// SetEncodedPassword sets the password from already-encoded bytes,
// synthesizing the "//" authority marker if necessary. Passing nil
// removes the password while keeping the userinfo terminator if a
// user is already set.
func (u *Url) SetEncodedPassword(encoded []byte) error {
	if encoded == nil {
		if !u.HasAuthority() {
			return nil
		}
		if len(u.EncodedUser()) == 0 {
			if err := u.setRegion(IDPassword, nil); err != nil {
				return err
			}

			return u.collapseAuthorityIfEmpty()
		}

		return u.setRegion(IDPassword, []byte("@"))
	}

	if len(encoded) > 0 && encoded[0] == ':' {
		return invalidPartf("Url.SetEncodedPassword", ErrInvalidUserInfo,
			"encoded password must not start with ':': %q", encoded)
	}
	if err := userInfoCodec.Validate(encoded); err != nil {
		return invalidPartf("Url.SetEncodedPassword", ErrInvalidUserInfo, "invalid password: %v", err)
	}
	if err := u.ensureAuthority(); err != nil {
		return err
	}

	region := make([]byte, 1+len(encoded)+1)
	region[0] = ':'
	copy(region[1:], encoded)
	region[len(region)-1] = '@'

	return u.setRegion(IDPassword, region)
}

// SetPassword percent-encodes password against UserInfo and sets it.
func (u *Url) SetPassword(password string) error {
	src := []byte(password)
	dst := make([]byte, userInfoCodec.EncodedSize(src))
	userInfoCodec.Encode(dst, src)

	return u.SetEncodedPassword(dst)
}

// EncodedHost returns the still-percent-encoded host, brackets
// included for IP-literal forms.
func (u *Url) EncodedHost() []byte {
	return u.buf.region(IDHost)
}

// HostType reports how the current host was classified.
func (u *Url) HostType() HostType {
	return u.buf.parts.HostType
}

// Host decodes EncodedHost. Decoding is a no-op for IP-literal and
// IPv4 forms, which never contain percent-escapes.
func (u *Url) Host() ([]byte, error) {
	return regNameCodec.Decode(u.EncodedHost())
}

// SetEncodedHost sets the host from an already-encoded substring
// (brackets included for bracketed forms), classifying it via
// ParseHost and synthesizing the "//" authority marker if necessary.
func (u *Url) SetEncodedHost(encoded []byte, opts ...Option) error {
	hostType, err := ParseHost(encoded)
	if err != nil {
		return err
	}

	o, redeem := applyOptions(opts)
	defer redeem(o)

	if hostType == HostName && o.validationFlags&flagValidateHost > 0 {
		scheme := string(u.Scheme())
		if scheme != "" && o.schemeIsDNSFunc(scheme) {
			decoded, derr := regNameCodec.Decode(encoded)
			if derr != nil {
				return derr
			}
			if derr := ValidateDNSHostname(decoded); derr != nil {
				return derr
			}
		}
	}

	if len(encoded) == 0 {
		if !u.HasAuthority() {
			u.buf.parts.HostType = HostNone

			return nil
		}
		if err := u.setRegion(IDHost, nil); err != nil {
			return err
		}
		u.buf.parts.HostType = HostNone

		return u.collapseAuthorityIfEmpty()
	}

	if err := u.ensureAuthority(); err != nil {
		return err
	}

	if err := u.setRegion(IDHost, encoded); err != nil {
		return err
	}

	u.buf.parts.HostType = hostType

	return nil
}

// SetHost percent-encodes host as a reg-name (unless it parses as an
// IP-literal or IPv4 address, in which case it is passed through
// unescaped) and sets it.
func (u *Url) SetHost(host string, opts ...Option) error {
	src := []byte(host)
	if len(src) > 0 && (src[0] == '[' || isIPv4Literal(src)) {
		return u.SetEncodedHost(src, opts...)
	}

	dst := make([]byte, regNameCodec.EncodedSize(src))
	regNameCodec.Encode(dst, src)

	return u.SetEncodedHost(dst, opts...)
}

// Port returns the numeric port and true, or (0, false) if no port is
// set or it does not fit a uint16.
func (u *Url) Port() (uint16, bool) {
	region := u.buf.region(IDPort)
	if len(region) == 0 {
		return 0, false
	}

	return PortNumber(region[1:])
}

// HasPort reports whether a port component is present at all (it may
// still be the empty string, e.g. "http://host:/").
func (u *Url) HasPort() bool {
	return u.buf.parts.Length(IDPort) > 0
}

// EncodedPort returns the raw port digits, without the leading ':'.
func (u *Url) EncodedPort() []byte {
	region := u.buf.region(IDPort)
	if len(region) == 0 {
		return nil
	}

	return region[1:]
}

// SetPort sets the port to a specific 16-bit number.
func (u *Url) SetPort(port uint16) error {
	return u.SetPortString(strconv.FormatUint(uint64(port), 10))
}

// SetPortString sets the port from its decimal digit string. An empty
// string sets an empty-but-present port (e.g. "host:").
func (u *Url) SetPortString(digits string) error {
	data := []byte(digits)
	if err := ValidatePort(data); err != nil {
		return err
	}
	if err := u.ensureAuthority(); err != nil {
		return err
	}

	region := make([]byte, 1+len(data))
	region[0] = ':'
	copy(region[1:], data)

	return u.setRegion(IDPort, region)
}

// ClearPort removes the port component entirely.
func (u *Url) ClearPort() error {
	if err := u.setRegion(IDPort, nil); err != nil {
		return err
	}

	return u.collapseAuthorityIfEmpty()
}

// EncodedPath returns the still-percent-encoded path.
func (u *Url) EncodedPath() []byte {
	return u.buf.region(IDPath)
}

// Path decodes EncodedPath.
func (u *Url) Path() ([]byte, error) {
	return pcharCodec.Decode(u.EncodedPath())
}

// SetEncodedPath sets the path from an already-encoded substring,
// validated against the ABNF shape implied by the URL's current
// scheme/authority state (spec.md §4.6).
func (u *Url) SetEncodedPath(encoded []byte) error {
	if err := ValidatePathForContext(encoded, u.HasAuthority(), u.HasScheme()); err != nil {
		return err
	}

	return u.setRegion(IDPath, encoded)
}

// SetPath percent-encodes path against PChar segment by segment
// (preserving existing '/' separators) and sets it.
func (u *Url) SetPath(path string) error {
	segs := bytes.Split([]byte(path), []byte{'/'})
	var buf bytes.Buffer
	for i, seg := range segs {
		if i > 0 {
			buf.WriteByte('/')
		}
		dst := make([]byte, pcharCodec.EncodedSize(seg))
		pcharCodec.Encode(dst, seg)
		buf.Write(dst)
	}

	return u.SetEncodedPath(buf.Bytes())
}

// NSegments returns the cached segment count for the current path
// (spec.md P4).
func (u *Url) NSegments() int {
	return u.buf.parts.NSeg
}

// EncodedQuery returns the still-percent-encoded query, without the
// leading '?'. The zero value (nil) means no query at all; an empty
// non-nil slice means a present-but-empty query ("?").
func (u *Url) EncodedQuery() []byte {
	region := u.buf.region(IDQuery)
	if len(region) == 0 {
		return nil
	}

	return region[1:]
}

// HasQuery reports whether a '?' is present at all.
func (u *Url) HasQuery() bool {
	return u.buf.parts.Length(IDQuery) > 0
}

// Query decodes EncodedQuery.
func (u *Url) Query() ([]byte, error) {
	return queryCodec.Decode(u.EncodedQuery())
}

// SetEncodedQuery sets the query from an already-encoded substring
// (without the leading '?'). Passing nil removes the query entirely;
// passing an empty non-nil slice sets a present-but-empty query.
func (u *Url) SetEncodedQuery(encoded []byte) error {
	if encoded == nil {
		if err := u.setRegion(IDQuery, nil); err != nil {
			return err
		}
		u.buf.parts.NParam = 0

		return nil
	}

	if err := ValidateQuery(encoded); err != nil {
		return err
	}

	region := make([]byte, 1+len(encoded))
	region[0] = '?'
	copy(region[1:], encoded)

	if err := u.setRegion(IDQuery, region); err != nil {
		return err
	}

	u.buf.parts.NParam = CountParams(encoded)

	return nil
}

// SetQuery percent-encodes query against Query and sets it.
func (u *Url) SetQuery(query string) error {
	src := []byte(query)
	dst := make([]byte, queryCodec.EncodedSize(src))
	queryCodec.Encode(dst, src)

	return u.SetEncodedQuery(dst)
}

// NParams returns the cached parameter count for the current query
// (spec.md P5).
func (u *Url) NParams() int {
	return u.buf.parts.NParam
}

// EncodedFragment returns the still-percent-encoded fragment, without
// the leading '#'.
func (u *Url) EncodedFragment() []byte {
	region := u.buf.region(IDFragment)
	if len(region) == 0 {
		return nil
	}

	return region[1:]
}

// HasFragment reports whether a '#' is present at all.
func (u *Url) HasFragment() bool {
	return u.buf.parts.Length(IDFragment) > 0
}

// Fragment decodes EncodedFragment.
func (u *Url) Fragment() ([]byte, error) {
	return fragmentCodec.Decode(u.EncodedFragment())
}

// SetEncodedFragment sets the fragment from an already-encoded
// substring (without the leading '#'). A nil encoded removes the
// fragment entirely.
func (u *Url) SetEncodedFragment(encoded []byte) error {
	if encoded == nil {
		return u.setRegion(IDFragment, nil)
	}

	if err := ValidateFragment(encoded); err != nil {
		return err
	}

	region := make([]byte, 1+len(encoded))
	region[0] = '#'
	copy(region[1:], encoded)

	return u.setRegion(IDFragment, region)
}

// SetFragment percent-encodes fragment against Fragment and sets it.
func (u *Url) SetFragment(fragment string) error {
	src := []byte(fragment)
	dst := make([]byte, fragmentCodec.EncodedSize(src))
	fragmentCodec.Encode(dst, src)

	return u.SetEncodedFragment(dst)
}

// splitAuthority decomposes the bytes between "//" and the following
// '/', '?', '#', or end of string, into userinfo (nil if absent),
// host and port (nil if absent) substrings, all still encoded.
func splitAuthority(authority []byte) (userinfo, host, port []byte, hasUserInfo, hasPort bool) {
	rest := authority
	if at := bytes.IndexByte(rest, '@'); at >= 0 {
		userinfo, hasUserInfo = rest[:at], true
		rest = rest[at+1:]
	}

	if len(rest) > 0 && rest[0] == '[' {
		closeIdx := bytes.IndexByte(rest, ']')
		if closeIdx < 0 {
			closeIdx = len(rest) - 1
		}
		host = rest[:closeIdx+1]
		remainder := rest[closeIdx+1:]
		if len(remainder) > 0 && remainder[0] == ':' {
			port, hasPort = remainder[1:], true
		}

		return userinfo, host, port, hasUserInfo, hasPort
	}

	if idx := bytes.LastIndexByte(rest, ':'); idx >= 0 {
		host, port, hasPort = rest[:idx], rest[idx+1:], true

		return userinfo, host, port, hasUserInfo, hasPort
	}

	host = rest

	return userinfo, host, port, hasUserInfo, hasPort
}

// SetEncodedURL parses raw as a complete URI (scheme, authority,
// path, query, fragment, each already percent-encoded) and replaces
// the Url's entire content with it. On any validation error the Url
// is left unchanged.
func (u *Url) SetEncodedURL(raw string, opts ...Option) error {
	data := []byte(raw)
	o, redeem := applyOptions(opts)
	defer redeem(o)

	var scheme []byte
	rest := data
	if len(data) > 0 && Alpha.Contains(data[0]) {
		if n, err := ParseScheme(data); err == nil && n < len(data) && data[n] == ':' {
			scheme, rest = data[:n], data[n+1:]
		}
	}

	var authority []byte
	hasAuthority := false
	if len(rest) >= 2 && rest[0] == '/' && rest[1] == '/' {
		hasAuthority = true
		rest = rest[2:]
		end := len(rest)
		for i, c := range rest {
			if c == '/' || c == '?' || c == '#' {
				end = i

				break
			}
		}
		authority, rest = rest[:end], rest[end:]
	}

	var queryPart, fragmentPart []byte
	hasQuery, hasFragment := false, false
	if h := bytes.IndexByte(rest, '#'); h >= 0 {
		fragmentPart, hasFragment = rest[h+1:], true
		rest = rest[:h]
	}
	if q := bytes.IndexByte(rest, '?'); q >= 0 {
		queryPart, hasQuery = rest[q+1:], true
		rest = rest[:q]
	}
	pathPart := rest

	if o.validationFlags&flagValidatePath > 0 {
		if err := ValidatePathForContext(pathPart, hasAuthority, len(scheme) > 0); err != nil {
			return err
		}
	}
	if hasQuery && o.validationFlags&flagValidateQuery > 0 {
		if err := ValidateQuery(queryPart); err != nil {
			return err
		}
	}
	if hasFragment && o.validationFlags&flagValidateFragment > 0 {
		if err := ValidateFragment(fragmentPart); err != nil {
			return err
		}
	}

	var userinfoRaw, hostRaw, portRaw []byte
	var hasUserInfo, hasPort bool
	if hasAuthority {
		userinfoRaw, hostRaw, portRaw, hasUserInfo, hasPort = splitAuthority(authority)
	}

	var hostType HostType
	if hasAuthority {
		var err error
		hostType, err = ParseHost(hostRaw)
		if err != nil {
			return err
		}
		if hasPort && o.validationFlags&flagValidatePort > 0 {
			if err := ValidatePort(portRaw); err != nil {
				return err
			}
		}
	}

	var userRegion, userOnly []byte
	var passwordRegion []byte
	if hasAuthority {
		userRegion = []byte("//")
		if hasUserInfo {
			var password []byte
			var err error
			userOnly, password, err = SplitUserInfo(userinfoRaw)
			if err != nil {
				return err
			}
			userRegion = append(userRegion, userOnly...)
			if password != nil {
				passwordRegion = append([]byte{':'}, password...)
				passwordRegion = append(passwordRegion, '@')
			} else {
				passwordRegion = []byte("@")
			}
		}
	}

	if hostType == HostName && o.validationFlags&flagValidateHost > 0 && len(scheme) > 0 && o.schemeIsDNSFunc(string(scheme)) {
		decoded, derr := regNameCodec.Decode(hostRaw)
		if derr != nil {
			return derr
		}
		if derr := ValidateDNSHostname(decoded); derr != nil {
			return derr
		}
	}

	var schemeRegion []byte
	if len(scheme) > 0 {
		schemeRegion = append(append([]byte(nil), scheme...), ':')
	}

	var portRegion []byte
	if hasPort {
		portRegion = append([]byte{':'}, portRaw...)
	}

	var queryRegion []byte
	if hasQuery {
		queryRegion = append([]byte{'?'}, queryPart...)
	}

	var fragmentRegion []byte
	if hasFragment {
		fragmentRegion = append([]byte{'#'}, fragmentPart...)
	}

	regions := [IDEnd][]byte{
		IDScheme:   schemeRegion,
		IDUser:     userRegion,
		IDPassword: passwordRegion,
		IDHost:     hostRaw,
		IDPort:     portRegion,
		IDPath:     pathPart,
		IDQuery:    queryRegion,
		IDFragment: fragmentRegion,
	}
	if err := u.commitRegions(regions); err != nil {
		return err
	}

	u.buf.parts.HostType = hostType
	u.buf.parts.NSeg = CountSegments(pathPart)
	if hasQuery {
		u.buf.parts.NParam = CountParams(queryPart)
	} else {
		u.buf.parts.NParam = 0
	}

	return nil
}
