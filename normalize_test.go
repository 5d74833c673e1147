package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSchemeLowerCases(t *testing.T) {
	u := NewUrl()
	require.NoError(t, u.SetScheme("HTTPS"))

	u.NormalizeScheme()
	require.Equal(t, "https", string(u.Scheme()))
}

func TestNormalizeSchemeIdempotent(t *testing.T) {
	u := NewUrl()
	require.NoError(t, u.SetScheme("HtTp"))

	u.NormalizeScheme()
	once := string(u.Scheme())
	u.NormalizeScheme()
	require.Equal(t, once, string(u.Scheme()))
}

func TestNormalizeSchemeOnEmptyScheme(t *testing.T) {
	u := NewUrl()
	require.NotPanics(t, func() { u.NormalizeScheme() })
}
