package main

import (
	"testing"
	"time"

	"github.com/bumpmine-sim/subtick/input"
	"github.com/stretchr/testify/require"
)

func TestScriptedSample(t *testing.T) {
	s := scriptedSample(100 * time.Millisecond)
	require.True(t, s.Buttons.Has(input.InForward|input.InMoveRight))
	require.Zero(t, s.Triggers)

	s = scriptedSample(500 * time.Millisecond)
	require.True(t, s.Buttons.Has(input.InMoveLeft))
	require.False(t, s.Buttons.Has(input.InMoveRight))

	s = scriptedSample(time.Second + time.Millisecond)
	require.True(t, s.Triggers.Has(input.TriggerScrollJump))

	s = scriptedSample(2050 * time.Millisecond)
	require.True(t, s.Buttons.Has(input.InAttack))
	require.Equal(t, float32(60), s.ViewAngles[0])

	require.Zero(t, scriptedSample(0).Triggers)
}
