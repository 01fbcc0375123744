package worker

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestGroupWaits(t *testing.T) {
	var (
		g   Group
		sum atomic.Int64
	)
	for i := 1; i <= 100; i++ {
		i := i
		g.Go(func() { sum.Add(int64(i)) })
	}
	require.Zero(t, g.Wait())
	require.Equal(t, int64(5050), sum.Load())
	require.Zero(t, g.Pending())
}

func TestGroupCountsPanics(t *testing.T) {
	var g Group
	g.Go(func() { panic("boom") })
	g.Go(func() {})
	require.Equal(t, int64(1), g.Wait())

	// The pool keeps working after a panic.
	var after Group
	ran := atomic.NewBool(false)
	after.Go(func() { ran.Store(true) })
	after.Wait()
	require.True(t, ran.Load())
}
