package urlbuf

// PercentCodec implements RFC 3986 percent-encoding over the bytes
// allowed to appear unescaped by a given CharSet. It generalizes the
// teacher's (decode.go) unescapePercentEncoding/unescapeSequence pair
// from UTF-8 rune decoding down to the byte-oriented decoding this
// buffer-and-offset model needs: every percent-escape decodes to exactly
// one raw byte, never a multi-byte rune.
type PercentCodec struct {
	set CharSet
}

// NewPercentCodec returns a codec that treats bytes in set as safe to
// emit unescaped.
func NewPercentCodec(set CharSet) PercentCodec {
	return PercentCodec{set: set}
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}

	return false
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}

	return 0
}

const upperHex = "0123456789ABCDEF"

// Validate reports whether every byte of b is either in the codec's
// CharSet or part of a well-formed %HH escape.
func (c PercentCodec) Validate(b []byte) error {
	for i := 0; i < len(b); {
		n, err := c.stepLen(b, i)
		if err != nil {
			return err
		}
		i += n
	}

	return nil
}

// stepLen returns how many bytes of b[i:] the next token consumes: 1 for
// a plain in-set byte, 3 for a %HH escape.
func (c PercentCodec) stepLen(b []byte, i int) (int, error) {
	if b[i] == '%' {
		if i+2 >= len(b) {
			return 0, invalidPartf("PercentCodec.Validate", ErrInvalidEscaping,
				"truncated percent-escape near %q", b[i:])
		}
		if !isHex(b[i+1]) || !isHex(b[i+2]) {
			return 0, invalidPartf("PercentCodec.Validate", ErrInvalidEscaping,
				"malformed percent-escape near %q", b[i:i+3])
		}

		return 3, nil
	}

	if !c.set.Contains(b[i]) {
		return 0, invalidPartf("PercentCodec.Validate", ErrInvalidPart,
			"byte %q not allowed here", b[i])
	}

	return 1, nil
}

// EncodedSize returns the number of bytes Encode would write for b: 1
// per byte already in the CharSet, 3 per byte that needs escaping.
func (c PercentCodec) EncodedSize(b []byte) int {
	n := 0
	for _, by := range b {
		if c.set.Contains(by) {
			n++
		} else {
			n += 3
		}
	}

	return n
}

// Encode writes the percent-encoded form of b into dest, which must have
// capacity of at least EncodedSize(b), and returns the number of bytes
// written. Escaped bytes are always emitted as uppercase %HH.
func (c PercentCodec) Encode(dest, b []byte) int {
	n := 0
	for _, by := range b {
		if c.set.Contains(by) {
			dest[n] = by
			n++

			continue
		}

		dest[n] = '%'
		dest[n+1] = upperHex[by>>4]
		dest[n+2] = upperHex[by&0x0f]
		n += 3
	}

	return n
}

// Decode returns the inverse of Encode: every %HH escape in b becomes
// its raw byte, every other byte is copied verbatim. It fails with
// ErrInvalidEscaping wrapped in KindInvalidPart on a malformed escape.
func (c PercentCodec) Decode(b []byte) ([]byte, error) {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		if b[i] != '%' {
			out = append(out, b[i])
			i++

			continue
		}

		if i+2 >= len(b) {
			return nil, invalidPartf("PercentCodec.Decode", ErrInvalidEscaping,
				"truncated percent-escape near %q", b[i:])
		}
		if !isHex(b[i+1]) || !isHex(b[i+2]) {
			return nil, invalidPartf("PercentCodec.Decode", ErrInvalidEscaping,
				"malformed percent-escape near %q", b[i:i+3])
		}

		out = append(out, unhex(b[i+1])<<4|unhex(b[i+2]))
		i += 3
	}

	return out, nil
}

// Parse is the streaming form used by grammars: it advances through
// data as long as the next byte is in the CharSet or a well-formed
// %HH escape, stopping at the first byte that is neither. It returns
// the number of input bytes consumed and the length the token would
// have once decoded. Parse fails with KindNeedMore only when a '%' is
// the last byte, or is followed by fewer than two bytes, of data.
func (c PercentCodec) Parse(data []byte) (consumed int, decodedLen int, err error) {
	for consumed < len(data) {
		if data[consumed] == '%' {
			if consumed+2 >= len(data) {
				return consumed, decodedLen, needMore("PercentCodec.Parse", ErrInvalidEscaping)
			}
			if !isHex(data[consumed+1]) || !isHex(data[consumed+2]) {
				return consumed, decodedLen, invalidPartf("PercentCodec.Parse", ErrInvalidEscaping,
					"malformed percent-escape near %q", data[consumed:consumed+3])
			}

			consumed += 3
			decodedLen++

			continue
		}

		if !c.set.Contains(data[consumed]) {
			break
		}

		consumed++
		decodedLen++
	}

	return consumed, decodedLen, nil
}
