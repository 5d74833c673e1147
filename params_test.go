package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParamsCountAndAt(t *testing.T) {
	u, err := ParseURL("https://host/path?a=1&b=2&flag")
	require.NoError(t, err)

	params := u.Params()
	require.Equal(t, 3, params.Count())

	k, v, hasVal, err := params.At(0)
	require.NoError(t, err)
	require.Equal(t, "a", string(k))
	require.True(t, hasVal)
	require.Equal(t, "1", string(v))

	k, _, hasVal, err = params.At(2)
	require.NoError(t, err)
	require.Equal(t, "flag", string(k))
	require.False(t, hasVal)
}

func TestParamsGetAndContains(t *testing.T) {
	u, err := ParseURL("https://host/path?a=1&b=2")
	require.NoError(t, err)

	params := u.Params()
	require.True(t, params.Contains("b"))
	val, ok := params.Get("b")
	require.True(t, ok)
	require.Equal(t, "2", val)

	require.False(t, params.Contains("missing"))
}

func TestParamsInsertAtStart(t *testing.T) {
	u, err := ParseURL("https://host/path?b=2")
	require.NoError(t, err)

	params := u.Params()
	require.NoError(t, params.Insert(0, "a", "1", true))
	require.Equal(t, "https://host/path?a=1&b=2", u.String())
}

func TestParamsInsertIntoEmptyQuery(t *testing.T) {
	u, err := ParseURL("https://host/path")
	require.NoError(t, err)

	params := u.Params()
	require.NoError(t, params.Insert(0, "a", "1", true))
	require.Equal(t, "https://host/path?a=1", u.String())
}

func TestParamsErase(t *testing.T) {
	u, err := ParseURL("https://host/path?a=1&b=2&c=3")
	require.NoError(t, err)

	params := u.Params()
	require.NoError(t, params.Erase(1))
	require.Equal(t, "https://host/path?a=1&c=3", u.String())
}

func TestParamsEraseLastRemovesQueryEntirely(t *testing.T) {
	u, err := ParseURL("https://host/path?a=1")
	require.NoError(t, err)

	params := u.Params()
	require.NoError(t, params.Erase(0))
	require.False(t, u.HasQuery())
	require.Equal(t, "https://host/path", u.String())
}

func TestParamsReplace(t *testing.T) {
	u, err := ParseURL("https://host/path?a=1&b=2")
	require.NoError(t, err)

	params := u.Params()
	require.NoError(t, params.Replace(0, "a", "99", true))
	require.Equal(t, "https://host/path?a=99&b=2", u.String())
}
