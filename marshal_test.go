package urlbuf

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalTextRoundTrip(t *testing.T) {
	u, err := ParseURL("https://host/a/b?x=1")
	require.NoError(t, err)

	text, err := u.MarshalText()
	require.NoError(t, err)

	var out Url
	require.NoError(t, out.UnmarshalText(text))
	require.Equal(t, u.String(), out.String())
}

func TestMarshalJSON(t *testing.T) {
	u, err := ParseURL("https://host/a?b=1")
	require.NoError(t, err)

	data, err := json.Marshal(u)
	require.NoError(t, err)
	require.Equal(t, `"https://host/a?b=1"`, string(data))

	var out Url
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, u.String(), out.String())
}
