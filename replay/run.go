package replay

import (
	"fmt"

	"github.com/bumpmine-sim/subtick/oerror"
	"github.com/bumpmine-sim/subtick/simulation"
	"github.com/bumpmine-sim/subtick/world"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of simulating a recording.
type Result struct {
	// Ticks holds every tick finalized during the replay, in order.
	Ticks []simulation.TickRecord
	// Final is the last finalized world state.
	Final simulation.WorldState
}

// Run simulates the recording from the start against the given world. Time is taken from the
// recording only, so the result does not depend on how fast Run executes. A recording that breaks the
// driver's contract, such as one with out of order samples, returns an error.
func Run(rec *Recording, w world.Provider, log *logrus.Logger) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			simErr, ok := r.(*oerror.SimError)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("replay aborted: %w", simErr)
		}
	}()

	hdr := rec.Header
	start := hdr.StartTime()
	clock := simulation.NewManualClock(start)
	d := simulation.NewDriver(simulation.NewEnv(w, hdr.Settings, nil), simulation.Options{
		Logger:               log,
		Clock:                clock,
		DisableInterpolation: !hdr.Settings.Simulation.Interpolate,
		OnTick: func(t simulation.TickRecord) {
			res.Ticks = append(res.Ticks, t)
		},
	})
	d.Start(hdr.Step, hdr.Timescale, simulation.NewWorldState(mgl32.Vec3(hdr.Origin)))

	for _, ev := range rec.Events {
		switch ev.Kind {
		case EventInput:
			sample := ev.Sample(start)
			clock.Set(sample.SampleTime)
			d.ProcessInput(sample, ev.Subticked)
		case EventTimescale:
			d.UpdateTimescale(ev.Timescale)
		}
	}
	res.Final = d.LatestActualWorldState()
	return res, nil
}
