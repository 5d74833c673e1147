package urlbuf

// MarshalText implements encoding.TextMarshaler, returning the
// already percent-encoded URL (spec.md §6), ported from the teacher's
// uri_extra.go MarshalText/UnmarshalText pair.
func (u *Url) MarshalText() ([]byte, error) {
	return append([]byte(nil), u.EncodedURL()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by replacing u's
// entire content with the parse of text.
func (u *Url) UnmarshalText(text []byte) error {
	if u.buf == nil {
		u.buf = NewUrlBuffer()
	}

	return u.SetEncodedURL(string(text))
}

// MarshalBinary implements encoding.BinaryMarshaler. The binary form
// is identical to the text form: the buffer is already a flat byte
// sequence with no framing needed.
func (u *Url) MarshalBinary() ([]byte, error) {
	return u.MarshalText()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *Url) UnmarshalBinary(data []byte) error {
	return u.UnmarshalText(data)
}
