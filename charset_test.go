package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharSetUnion(t *testing.T) {
	a := charSetFromBytes('a', 'b')
	b := charSetFromBytes('c')
	u := a.Union(b)

	require.True(t, u.Contains('a'))
	require.True(t, u.Contains('b'))
	require.True(t, u.Contains('c'))
	require.False(t, u.Contains('d'))

	// originals unaffected
	require.False(t, a.Contains('c'))
}

func TestCharSetWithout(t *testing.T) {
	full := charSetFromBytes('a', 'b', 'c')
	minusB := full.Without(charSetFromBytes('b'))

	require.True(t, minusB.Contains('a'))
	require.False(t, minusB.Contains('b'))
	require.True(t, minusB.Contains('c'))
}

func TestNamedCharSets(t *testing.T) {
	require.True(t, Unreserved.Contains('a'))
	require.True(t, Unreserved.Contains('9'))
	require.True(t, Unreserved.Contains('-'))
	require.False(t, Unreserved.Contains('/'))

	require.True(t, PChar.Contains(':'))
	require.True(t, PChar.Contains('@'))
	require.False(t, PChar.Contains('/'))

	require.True(t, Query.Contains('/'))
	require.True(t, Query.Contains('?'))

	require.False(t, QKey.Contains('='))
	require.False(t, QKey.Contains('&'))
	require.True(t, QVal.Contains('='))
	require.False(t, QVal.Contains('&'))

	require.True(t, Digit.Contains('0'))
	require.False(t, Digit.Contains('a'))
}
