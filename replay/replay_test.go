package replay

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bumpmine-sim/subtick/input"
	"github.com/bumpmine-sim/subtick/settings"
	"github.com/bumpmine-sim/subtick/simulation"
	"github.com/bumpmine-sim/subtick/world"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

// recordSession drives a live session and records it, returning the recording and the ticks the live
// driver finalized.
func recordSession(t *testing.T, w world.Provider, recordTicks bool) (*bytes.Buffer, []simulation.TickRecord) {
	t.Helper()

	s := settings.Default()
	start := time.Unix(1700000000, 0)
	header := Header{
		Start:     start.UnixNano(),
		Step:      s.StepDuration(),
		Timescale: 1,
		Settings:  s,
	}

	buf := &bytes.Buffer{}
	rec, err := NewRecorder(buf, header)
	require.NoError(t, err)

	var live []simulation.TickRecord
	clock := simulation.NewManualClock(start)
	d := simulation.NewDriver(simulation.NewEnv(w, s, nil), simulation.Options{
		Clock: clock,
		OnTick: func(tr simulation.TickRecord) {
			live = append(live, tr)
			if recordTicks {
				require.NoError(t, rec.Tick(tr))
			}
		},
	})
	d.Start(header.Step, header.Timescale, simulation.NewWorldState(mgl32.Vec3{}))

	for i := 1; i <= 120; i++ {
		if i == 60 {
			d.UpdateTimescale(0.5)
			require.NoError(t, rec.Timescale(0.5))
		}
		sample := input.State{
			SampleTime: clock.Advance(4 * time.Millisecond),
			ViewAngles: mgl32.Vec2{-5, float32(i) / 2},
			Buttons:    input.InForward,
		}
		if i%10 < 5 {
			sample.Buttons |= input.InMoveRight
		}
		if i%40 == 0 {
			sample.Buttons |= input.InAttack
		}
		if i%25 == 0 {
			sample.Triggers = input.TriggerScrollJump
		}
		d.ProcessInput(sample, true)
		require.NoError(t, rec.Input(sample, true))
	}
	require.NotEmpty(t, live)
	return buf, live
}

func TestRecordAndLoad(t *testing.T) {
	buf, live := recordSession(t, world.Flat(4096), true)

	rec, err := Load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, CurrentRecordingVer, rec.Version)
	require.Equal(t, time.Second/64, rec.Header.Step)
	require.Equal(t, live, rec.Ticks())

	var inputs, timescales int
	for _, ev := range rec.Events {
		switch ev.Kind {
		case EventInput:
			inputs++
		case EventTimescale:
			timescales++
		}
	}
	require.Equal(t, 120, inputs)
	require.Equal(t, 1, timescales)
}

func TestRunReproducesLiveSession(t *testing.T) {
	w := world.Flat(4096)
	buf, live := recordSession(t, w, false)

	rec, err := Load(buf)
	require.NoError(t, err)
	res, err := Run(rec, w, nil)
	require.NoError(t, err)
	require.Equal(t, live, res.Ticks)
	require.Equal(t, live[len(live)-1].Digest, res.Final.Digest())
}

func TestVerify(t *testing.T) {
	w := world.Flat(4096)
	buf, _ := recordSession(t, w, true)
	rec, err := Load(buf)
	require.NoError(t, err)

	report, err := Verify(rec, w, 4, nil)
	require.NoError(t, err)
	require.True(t, report.OK(), report.String())
	require.Equal(t, "recording", report.Reference)
	require.Equal(t, int64(4*report.Ticks), report.Checked)

	// Tamper with one recorded digest.
	for i := range rec.Events {
		if rec.Events[i].Kind == EventTick {
			rec.Events[i].Digest ^= 1
			break
		}
	}
	report, err = Verify(rec, w, 2, nil)
	require.NoError(t, err)
	require.False(t, report.OK())
	require.Len(t, report.Mismatches, 2)
	require.Contains(t, report.String(), "mismatch [run=")
}

func TestVerifyWithoutRecordedTicks(t *testing.T) {
	w := world.Flat(4096)
	buf, _ := recordSession(t, w, false)
	rec, err := Load(buf)
	require.NoError(t, err)

	report, err := Verify(rec, w, 3, nil)
	require.NoError(t, err)
	require.True(t, report.OK(), report.String())
	require.Equal(t, "run 0", report.Reference)

	_, err = Verify(rec, w, 0, nil)
	require.Error(t, err)
}

func TestRunRejectsOutOfOrderSamples(t *testing.T) {
	rec := &Recording{
		Version: CurrentRecordingVer,
		Header:  Header{Step: time.Second / 64, Timescale: 1, Settings: settings.Default()},
		Events: []Event{
			{Kind: EventInput, Offset: 10 * time.Millisecond},
			{Kind: EventInput, Offset: 5 * time.Millisecond},
		},
	}
	_, err := Run(rec, world.Flat(512), nil)
	require.ErrorContains(t, err, "out of order")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader("2\n{}\n"))
	require.ErrorContains(t, err, "unsupported recording version")

	_, err = Load(strings.NewReader(""))
	require.Error(t, err)

	_, err = Load(strings.NewReader("1\n{\"step\":0,\"timescale\":1}\n"))
	require.ErrorContains(t, err, "invalid step")

	_, err = Load(strings.NewReader("1\n{\"step\":15625000,\"timescale\":1}\nnot json\n"))
	require.ErrorContains(t, err, "line 3")
}
