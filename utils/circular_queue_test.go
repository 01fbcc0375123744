package utils

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3)
	_, ok := q.Last()
	require.False(t, ok)

	for i := 1; i <= 5; i++ {
		require.NoError(t, q.Append(i))
	}
	require.Equal(t, 3, q.Len())
	require.Equal(t, []int{3, 4, 5}, slices.Collect(q.Iter()))

	first, err := q.Get(0)
	require.NoError(t, err)
	require.Equal(t, 3, first)
	_, err = q.Get(3)
	require.Error(t, err)

	last, ok := q.Last()
	require.True(t, ok)
	require.Equal(t, 5, last)

	q.Clear()
	require.Equal(t, 0, q.Len())
	require.Equal(t, 3, q.Cap())
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	require.Error(t, NewCircularQueue[int](0).Append(1))
}
