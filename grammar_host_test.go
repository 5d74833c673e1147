package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHostRegName(t *testing.T) {
	ht, err := ParseHost([]byte("example.com"))
	require.NoError(t, err)
	require.Equal(t, HostName, ht)
}

func TestParseHostIPv4(t *testing.T) {
	ht, err := ParseHost([]byte("192.168.1.1"))
	require.NoError(t, err)
	require.Equal(t, HostIPv4, ht)
}

func TestParseHostIPv6Literal(t *testing.T) {
	ht, err := ParseHost([]byte("[2001:db8::1]"))
	require.NoError(t, err)
	require.Equal(t, HostIPv6, ht)
}

func TestParseHostIPvFuture(t *testing.T) {
	ht, err := ParseHost([]byte("[v1.fe80::a]"))
	require.NoError(t, err)
	require.Equal(t, HostIPvFuture, ht)
}

func TestParseHostEmpty(t *testing.T) {
	ht, err := ParseHost(nil)
	require.NoError(t, err)
	require.Equal(t, HostNone, ht)
}

func TestParseHostRejectsUnterminatedBracket(t *testing.T) {
	_, err := ParseHost([]byte("[2001:db8::1"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidHostAddress)
}

func TestParseHostRejectsInvalidRegName(t *testing.T) {
	_, err := ParseHost([]byte("exa mple.com"))
	require.Error(t, err)
}
