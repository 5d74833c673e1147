package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsesDNSHostValidation(t *testing.T) {
	require.True(t, UsesDNSHostValidation("https"))
	require.True(t, UsesDNSHostValidation("ftp"))
	require.False(t, UsesDNSHostValidation("urn"))
	require.False(t, UsesDNSHostValidation("tag"))
}

func TestValidateDNSHostname(t *testing.T) {
	require.NoError(t, ValidateDNSHostname([]byte("example.com")))
	require.NoError(t, ValidateDNSHostname([]byte("a-b.c-d")))

	require.Error(t, ValidateDNSHostname([]byte("")))
	require.Error(t, ValidateDNSHostname([]byte("-leading.com")))
	require.Error(t, ValidateDNSHostname([]byte("trailing-.com")))
	require.Error(t, ValidateDNSHostname([]byte("under_score.com")))
	require.Error(t, ValidateDNSHostname([]byte("..")))
}
