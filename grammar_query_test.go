package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateQueryAndFragment(t *testing.T) {
	require.NoError(t, ValidateQuery([]byte("a=1&b=2")))
	require.NoError(t, ValidateQuery([]byte("a/b?c")))
	require.NoError(t, ValidateFragment([]byte("section-1")))
	require.Error(t, ValidateQuery([]byte("a b")))
}

func TestCountParams(t *testing.T) {
	require.Equal(t, 0, CountParams(nil))
	require.Equal(t, 1, CountParams([]byte{}))
	require.Equal(t, 1, CountParams([]byte("a=1")))
	require.Equal(t, 3, CountParams([]byte("a=1&b=2&c=3")))
}
