package assert

import (
	"testing"

	"github.com/bumpmine-sim/subtick/oerror"
	"github.com/stretchr/testify/require"
)

func TestIsTrue(t *testing.T) {
	require.NotPanics(t, func() { IsTrue(true, "never") })

	defer func() {
		r := recover()
		err, ok := r.(*oerror.SimError)
		require.True(t, ok, "panic value should be *oerror.SimError, got %T", r)
		require.Equal(t, "fraction 1.5 > 1", err.Error())
	}()
	IsTrue(false, "fraction %v > 1", 1.5)
}

func TestUnreachable(t *testing.T) {
	require.PanicsWithError(t, "tick 3 out of order", func() { Unreachable("tick %d out of order", 3) })
}
