package input

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestResolveWithoutSamplesDropsTriggers(t *testing.T) {
	prev := State{
		ViewAngles: mgl32.Vec2{10, 20},
		Buttons:    InForward | InDuck,
		Triggers:   TriggerScrollJump,
	}
	resolved := Resolve(prev, nil)
	require.Equal(t, prev.ViewAngles, resolved.ViewAngles)
	require.Equal(t, prev.Buttons, resolved.Buttons)
	require.False(t, resolved.Triggers.Has(TriggerScrollJump))
}

func TestResolveUsesLatestAndCoalescesTriggers(t *testing.T) {
	now := time.Unix(0, 0)
	samples := []State{
		{SampleTime: now, ViewAngles: mgl32.Vec2{0, 0}, Buttons: InForward, Triggers: TriggerScrollJump},
		{SampleTime: now.Add(time.Millisecond), ViewAngles: mgl32.Vec2{5, 45}, Buttons: InMoveLeft},
	}
	resolved := Resolve(State{}, samples)
	require.Equal(t, mgl32.Vec2{5, 45}, resolved.ViewAngles)
	require.Equal(t, InMoveLeft, resolved.Buttons)
	require.True(t, resolved.Triggers.Has(TriggerScrollJump))
	require.Equal(t, samples[1].SampleTime, resolved.SampleTime)
}

func TestButtonLayout(t *testing.T) {
	require.Equal(t, Buttons(1), InAttack)
	require.Equal(t, Buttons(2), InJump)
	require.Equal(t, Buttons(1<<9), InMoveLeft)
	require.Equal(t, Buttons(1<<10), InMoveRight)
	require.True(t, (InForward | InJump).Has(InJump))
	require.False(t, InForward.Has(InForward|InJump))
}
