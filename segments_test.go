package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentsCountAndAt(t *testing.T) {
	u, err := ParseURL("https://host/a/b/c")
	require.NoError(t, err)

	segs := u.Segments()
	require.Equal(t, 3, segs.Count())

	a, err := segs.At(0)
	require.NoError(t, err)
	require.Equal(t, "a", string(a))

	c, err := segs.At(2)
	require.NoError(t, err)
	require.Equal(t, "c", string(c))
}

func TestSegmentsInsertShiftsRemainder(t *testing.T) {
	u, err := ParseURL("https://host/a/c")
	require.NoError(t, err)

	segs := u.Segments()
	require.NoError(t, segs.Insert(1, "b"))

	require.Equal(t, 3, segs.Count())
	b, err := segs.At(1)
	require.NoError(t, err)
	require.Equal(t, "b", string(b))
	require.Equal(t, "https://host/a/b/c", u.String())
}

func TestSegmentsInsertAtEnd(t *testing.T) {
	u, err := ParseURL("https://host/a")
	require.NoError(t, err)

	segs := u.Segments()
	require.NoError(t, segs.Insert(1, "z"))
	require.Equal(t, "https://host/a/z", u.String())
}

func TestSegmentsErase(t *testing.T) {
	u, err := ParseURL("https://host/a/b/c")
	require.NoError(t, err)

	segs := u.Segments()
	require.NoError(t, segs.Erase(1))
	require.Equal(t, 2, segs.Count())
	require.Equal(t, "https://host/a/c", u.String())
}

func TestSegmentsReplace(t *testing.T) {
	u, err := ParseURL("https://host/a/b/c")
	require.NoError(t, err)

	segs := u.Segments()
	require.NoError(t, segs.Replace(1, "changed"))
	require.Equal(t, "https://host/a/changed/c", u.String())
}

func TestSegmentsMutationRejectsRootlessPath(t *testing.T) {
	u, err := ParseURL("mailto:a/b")
	require.NoError(t, err)

	segs := u.Segments()
	require.Error(t, segs.Insert(0, "x"))
}
