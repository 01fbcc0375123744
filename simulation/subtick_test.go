package simulation

import (
	"testing"

	"github.com/bumpmine-sim/subtick/input"
	"github.com/bumpmine-sim/subtick/oerror"
	"github.com/stretchr/testify/require"
)

func TestLedger(t *testing.T) {
	var l Ledger
	require.Equal(t, input.InDuck, l.ActiveBitmask(input.InDuck))

	l.Append(SubtickStep{InputBitmask: input.InForward, When: 0.2})
	l.Append(SubtickStep{InputBitmask: input.InBack, When: 0.2})
	require.Equal(t, 2, l.Len())
	require.Equal(t, input.InBack, l.ActiveBitmask(input.InDuck))

	defer func() {
		err, ok := recover().(*oerror.SimError)
		require.True(t, ok)
		require.Contains(t, err.Error(), "appended after")
		require.Equal(t, 2, l.Len())
	}()
	l.Append(SubtickStep{When: 0.1})
}

func TestLedgerClear(t *testing.T) {
	var l Ledger
	l.Append(SubtickStep{When: 0.9})
	l.Clear()
	_, ok := l.Last()
	require.False(t, ok)
	l.Append(SubtickStep{When: 0.1})
	require.Equal(t, 1, l.Len())
}
