package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSchemeMaximalMunch(t *testing.T) {
	n, err := ParseScheme([]byte("http+ssh.2-x:rest"))
	require.NoError(t, err)
	require.Equal(t, len("http+ssh.2-x"), n)
}

func TestParseSchemeRejectsLeadingDigit(t *testing.T) {
	_, err := ParseScheme([]byte("1http"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidScheme)
}

func TestParseSchemeRejectsEmpty(t *testing.T) {
	_, err := ParseScheme(nil)
	require.Error(t, err)
}

func TestNormalizeSchemeBytesLowerCasesInPlace(t *testing.T) {
	b := []byte("HtTpS")
	NormalizeSchemeBytes(b)
	require.Equal(t, "https", string(b))
}
