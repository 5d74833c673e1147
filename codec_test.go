package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentCodecRoundTrip(t *testing.T) {
	codec := NewPercentCodec(Unreserved)

	for _, raw := range [][]byte{
		[]byte("hello"),
		[]byte("hello world"),
		[]byte("a/b?c#d"),
		[]byte{0x00, 0x01, 0xff},
		{},
	} {
		size := codec.EncodedSize(raw)
		dest := make([]byte, size)
		n := codec.Encode(dest, raw)
		require.Equal(t, size, n)

		require.NoError(t, codec.Validate(dest))

		decoded, err := codec.Decode(dest)
		require.NoError(t, err)
		require.Equal(t, raw, decoded)
	}
}

func TestPercentCodecEncodeIsUppercase(t *testing.T) {
	codec := NewPercentCodec(Unreserved)
	dest := make([]byte, codec.EncodedSize([]byte{0xab}))
	codec.Encode(dest, []byte{0xab})
	require.Equal(t, "%AB", string(dest))
}

func TestPercentCodecValidateRejectsMalformedEscape(t *testing.T) {
	codec := NewPercentCodec(Unreserved)

	for _, bad := range []string{"%", "%1", "%1g", "%zz"} {
		err := codec.Validate([]byte(bad))
		require.Error(t, err)
	}
}

func TestPercentCodecValidateRejectsOutOfSetByte(t *testing.T) {
	codec := NewPercentCodec(Unreserved)
	err := codec.Validate([]byte("a b"))
	require.ErrorIs(t, err, ErrInvalidPart)
}

func TestPercentCodecParseStopsAtFirstDisallowedByte(t *testing.T) {
	codec := NewPercentCodec(Unreserved)
	consumed, decodedLen, err := codec.Parse([]byte("abc?rest"))
	require.NoError(t, err)
	require.Equal(t, 3, consumed)
	require.Equal(t, 3, decodedLen)
}

func TestPercentCodecParseNeedsMoreOnTruncatedEscape(t *testing.T) {
	codec := NewPercentCodec(Unreserved)
	_, _, err := codec.Parse([]byte("abc%2"))
	require.ErrorIs(t, err, ErrNeedMore)
}

func TestPercentCodecParseCountsEscapesAsOneDecodedByte(t *testing.T) {
	codec := NewPercentCodec(Unreserved)
	consumed, decodedLen, err := codec.Parse([]byte("%41%42"))
	require.NoError(t, err)
	require.Equal(t, 6, consumed)
	require.Equal(t, 2, decodedLen)
}
