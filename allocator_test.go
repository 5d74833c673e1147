package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapAllocator(t *testing.T) {
	var a HeapAllocator
	b, err := a.Allocate(10)
	require.NoError(t, err)
	require.Len(t, b, 10)
	a.Deallocate(b)
}

func TestStaticAllocatorRejectsOversizedRequest(t *testing.T) {
	a := NewStaticAllocator(make([]byte, 8))

	b, err := a.Allocate(8)
	require.NoError(t, err)
	require.Len(t, b, 8)

	_, err = a.Allocate(9)
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestGrowCapacityDoubles(t *testing.T) {
	require.Equal(t, 16, growCapacity(0, 1))
	require.Equal(t, 32, growCapacity(16, 17))
	require.Equal(t, 64, growCapacity(16, 50))
}
