package urlbuf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "invalid_part", KindInvalidPart.String())
	require.Equal(t, "need_more", KindNeedMore.String())
	require.Equal(t, "too_large", KindTooLarge.String())
	require.Equal(t, "unknown", Kind(0).String())
}

func TestErrorIs(t *testing.T) {
	err := invalidPartf("SetScheme", ErrInvalidScheme, "near %q", "ht!tp")

	require.ErrorIs(t, err, ErrInvalidPart)
	require.ErrorIs(t, err, ErrInvalidScheme)
	require.NotErrorIs(t, err, ErrTooLarge)
	require.NotErrorIs(t, err, ErrNeedMore)

	var asErr *Error
	require.True(t, errors.As(err, &asErr))
	require.Equal(t, "SetScheme", asErr.Op)
	require.NotEmpty(t, asErr.Error())
}

func TestTooLarge(t *testing.T) {
	err := tooLarge("Resize", 100, 10)
	require.ErrorIs(t, err, ErrTooLarge)
	require.Contains(t, err.Error(), "too_large")
}

func TestNeedMore(t *testing.T) {
	err := needMore("parsePercentEscape", ErrInvalidEscaping)
	require.ErrorIs(t, err, ErrNeedMore)
	require.ErrorIs(t, err, ErrInvalidEscaping)
}
