package urlbuf

import "bytes"

var (
	qKeyCodec = NewPercentCodec(QKey)
	qValCodec = NewPercentCodec(QVal)
)

// ParamsView is a bidirectional facade over the query component's
// key/value parameters, built on UrlBuffer.spliceTokens the same way
// SegmentsView is built over the path (spec.md §4.7, supplemented by
// SPEC_FULL.md §4.7a with Insert/Erase/Replace).
type ParamsView struct {
	u *Url
}

// Params returns a ParamsView over u's current query.
func (u *Url) Params() ParamsView {
	return ParamsView{u: u}
}

func (u *Url) paramBounds() []segBound {
	region := u.EncodedQuery()
	n := len(region)
	if n == 0 {
		return nil
	}

	var bounds []segBound
	i := 0
	for i < n {
		sepLen := 0
		if region[i] == '&' {
			sepLen = 1
			i++
		}

		start := i
		for i < n && region[i] != '&' {
			i++
		}

		bounds = append(bounds, segBound{sepLen: sepLen, contentStart: start, contentEnd: i})
	}

	return bounds
}

// Count returns the number of parameters in the current query
// (spec.md P5), identical to Url.NParams.
func (v ParamsView) Count() int {
	return v.u.buf.parts.NParam
}

// EncodedAt returns the i-th parameter's raw "key" or "key=value"
// token, still percent-encoded.
func (v ParamsView) EncodedAt(i int) ([]byte, error) {
	bounds := v.u.paramBounds()
	if i < 0 || i >= len(bounds) {
		return nil, invalidPartf("ParamsView.EncodedAt", ErrInvalidQuery, "index %d out of range [0,%d)", i, len(bounds))
	}

	region := v.u.EncodedQuery()

	return region[bounds[i].contentStart:bounds[i].contentEnd], nil
}

// KeyValueAt splits the i-th parameter's token on the first '=',
// still percent-encoded. hasVal is false for a bare key with no '='.
func (v ParamsView) KeyValueAt(i int) (key, val []byte, hasVal bool, err error) {
	token, err := v.EncodedAt(i)
	if err != nil {
		return nil, nil, false, err
	}

	eq := bytes.IndexByte(token, '=')
	if eq < 0 {
		return token, nil, false, nil
	}

	return token[:eq], token[eq+1:], true, nil
}

// At decodes KeyValueAt.
func (v ParamsView) At(i int) (key, val []byte, hasVal bool, err error) {
	ek, ev, hasVal, err := v.KeyValueAt(i)
	if err != nil {
		return nil, nil, false, err
	}

	key, err = qKeyCodec.Decode(ek)
	if err != nil {
		return nil, nil, false, err
	}
	if !hasVal {
		return key, nil, false, nil
	}

	val, err = qValCodec.Decode(ev)
	if err != nil {
		return nil, nil, false, err
	}

	return key, val, true, nil
}

// Find returns the index of the first parameter whose decoded key
// equals key, and whether one was found.
func (v ParamsView) Find(key string) (int, bool) {
	n := v.Count()
	for i := 0; i < n; i++ {
		k, _, _, err := v.At(i)
		if err == nil && string(k) == key {
			return i, true
		}
	}

	return 0, false
}

// Contains reports whether any parameter has the given decoded key.
func (v ParamsView) Contains(key string) bool {
	_, ok := v.Find(key)

	return ok
}

// Get returns the decoded value of the first parameter matching key.
// ok is false if no such parameter exists or it carries no value.
func (v ParamsView) Get(key string) (string, bool) {
	i, ok := v.Find(key)
	if !ok {
		return "", false
	}

	_, val, hasVal, err := v.At(i)
	if err != nil || !hasVal {
		return "", false
	}

	return string(val), true
}

func encodeParamToken(key, val []byte, hasVal bool) []byte {
	ek := make([]byte, qKeyCodec.EncodedSize(key))
	qKeyCodec.Encode(ek, key)

	if !hasVal {
		return ek
	}

	ev := make([]byte, qValCodec.EncodedSize(val))
	qValCodec.Encode(ev, val)

	token := make([]byte, 0, len(ek)+1+len(ev))
	token = append(token, ek...)
	token = append(token, '=')
	token = append(token, ev...)

	return token
}

// InsertEncoded inserts a new "key" or "key=value" parameter, already
// percent-encoded and pre-joined by the caller, at logical position i
// (0 <= i <= Count()).
func (v ParamsView) InsertEncoded(i int, token []byte) error {
	if err := ValidateQuery(token); err != nil {
		return err
	}

	if !v.u.HasQuery() {
		if err := v.u.SetEncodedQuery([]byte{}); err != nil {
			return err
		}
		// SetEncodedQuery treats a present-but-empty query as already
		// holding one (empty) parameter; this call is only bootstrapping
		// the '?' region ahead of the real splice below, which supplies
		// its own +1 delta, so undo that count here.
		v.u.buf.parts.NParam = 0
	}

	bounds := v.u.paramBounds()
	if i < 0 || i > len(bounds) {
		return invalidPartf("ParamsView.InsertEncoded", ErrInvalidQuery, "index %d out of range [0,%d]", i, len(bounds))
	}

	base := v.u.buf.parts.Offset[IDQuery] + 1 // +1 to skip the leading '?'
	var absOff int
	var newTokens []byte
	if i == 0 {
		absOff = base
		newTokens = token
		if len(bounds) > 0 {
			newTokens = append(append([]byte(nil), token...), '&')
		}
	} else {
		absOff = base + bounds[i-1].contentEnd
		newTokens = append([]byte{'&'}, token...)
	}

	return v.u.buf.spliceTokens(IDQuery, absOff, 0, newTokens, 1)
}

// Insert percent-encodes key/val and inserts them as a new parameter.
func (v ParamsView) Insert(i int, key, val string, hasVal bool) error {
	return v.InsertEncoded(i, encodeParamToken([]byte(key), []byte(val), hasVal))
}

// Erase removes the i-th parameter (including its separating '&', if
// any).
func (v ParamsView) Erase(i int) error {
	bounds := v.u.paramBounds()
	if i < 0 || i >= len(bounds) {
		return invalidPartf("ParamsView.Erase", ErrInvalidQuery, "index %d out of range [0,%d)", i, len(bounds))
	}

	base := v.u.buf.parts.Offset[IDQuery] + 1
	var absOff, oldLen int
	if i == 0 {
		absOff = base + bounds[0].contentStart
		end := bounds[0].contentEnd
		if len(bounds) > 1 {
			end = bounds[1].contentStart // swallow the '&' that followed
		}
		oldLen = end - bounds[0].contentStart
	} else {
		absOff = base + bounds[i].contentStart - bounds[i].sepLen
		oldLen = bounds[i].contentEnd - (bounds[i].contentStart - bounds[i].sepLen)
	}

	if err := v.u.buf.spliceTokens(IDQuery, absOff, oldLen, nil, -1); err != nil {
		return err
	}

	if v.u.NParams() == 0 {
		return v.u.SetEncodedQuery(nil)
	}

	return nil
}

// ReplaceEncoded replaces the i-th parameter's token (key or
// key=value, not its separating '&') with the already-encoded token.
func (v ParamsView) ReplaceEncoded(i int, token []byte) error {
	if err := ValidateQuery(token); err != nil {
		return err
	}

	bounds := v.u.paramBounds()
	if i < 0 || i >= len(bounds) {
		return invalidPartf("ParamsView.ReplaceEncoded", ErrInvalidQuery, "index %d out of range [0,%d)", i, len(bounds))
	}

	base := v.u.buf.parts.Offset[IDQuery] + 1
	absOff := base + bounds[i].contentStart
	oldLen := bounds[i].contentEnd - bounds[i].contentStart

	return v.u.buf.spliceTokens(IDQuery, absOff, oldLen, token, 0)
}

// Replace percent-encodes key/val and replaces the i-th parameter's
// token with them.
func (v ParamsView) Replace(i int, key, val string, hasVal bool) error {
	return v.ReplaceEncoded(i, encodeParamToken([]byte(key), []byte(val), hasVal))
}
