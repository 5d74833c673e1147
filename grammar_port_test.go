package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePort(t *testing.T) {
	require.NoError(t, ValidatePort([]byte("8080")))
	require.NoError(t, ValidatePort(nil))
	require.Error(t, ValidatePort([]byte("80a0")))
}

func TestPortNumber(t *testing.T) {
	n, ok := PortNumber([]byte("443"))
	require.True(t, ok)
	require.EqualValues(t, 443, n)

	_, ok = PortNumber(nil)
	require.False(t, ok)

	_, ok = PortNumber([]byte("99999999"))
	require.False(t, ok)
}
