package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitUserInfoWithPassword(t *testing.T) {
	user, password, err := SplitUserInfo([]byte("fred:secret"))
	require.NoError(t, err)
	require.Equal(t, "fred", string(user))
	require.Equal(t, "secret", string(password))
}

func TestSplitUserInfoWithoutPassword(t *testing.T) {
	user, password, err := SplitUserInfo([]byte("fred"))
	require.NoError(t, err)
	require.Equal(t, "fred", string(user))
	require.Nil(t, password)
}

func TestSplitUserInfoRejectsInvalidUserByte(t *testing.T) {
	_, _, err := SplitUserInfo([]byte("fr/ed:secret"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidUserInfo)
}

func TestSplitUserInfoAllowsColonInPassword(t *testing.T) {
	user, password, err := SplitUserInfo([]byte("fred:se:cret"))
	require.NoError(t, err)
	require.Equal(t, "fred", string(user))
	require.Equal(t, "se:cret", string(password))
}
