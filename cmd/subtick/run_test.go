package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/bumpmine-sim/subtick/settings"
	"github.com/bumpmine-sim/subtick/simulation"
	"github.com/bumpmine-sim/subtick/world"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestSessionFields(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	step := time.Second / 64
	d := simulation.NewDriver(simulation.NewEnv(world.Flat(512), settings.Default(), nil), simulation.Options{
		Clock: simulation.NewManualClock(start),
	})
	d.Start(step, 1, simulation.NewWorldState(mgl32.Vec3{}))

	fields := sessionFields(d)
	require.Zero(t, fields["ticks"])
	require.NotContains(t, fields, "last_tick")
	require.NotContains(t, fields, "digest")

	sample := scriptedSample(2*step + time.Millisecond)
	sample.SampleTime = start.Add(2*step + time.Millisecond)
	d.ProcessInput(sample, true)
	fields = sessionFields(d)
	require.Equal(t, uint64(2), fields["ticks"])
	require.Equal(t, uint64(2), fields["last_tick"])
	require.Equal(t, fmt.Sprintf("%016x", d.LatestActualWorldState().Digest()), fields["digest"])
}
