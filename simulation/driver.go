package simulation

import (
	"io"
	"time"

	"github.com/bumpmine-sim/subtick/assert"
	"github.com/bumpmine-sim/subtick/debug"
	"github.com/bumpmine-sim/subtick/input"
	"github.com/bumpmine-sim/subtick/utils"
	"github.com/sirupsen/logrus"
)

// Options configures a Driver.
type Options struct {
	// Logger receives lifecycle messages and subtick clamp warnings. Defaults to a logger that discards everything.
	Logger *logrus.Logger
	// Clock is the real time source used when starting. Defaults to WallClock.
	Clock Clock
	// DisableInterpolation makes the drawable world state the latest finalized one for every sample,
	// subticked or not.
	DisableInterpolation bool
	// HistorySize is the number of finalized ticks kept in the history. Defaults to DefaultHistorySize.
	HistorySize int
	// OnTick, if set, is called with every finalized tick.
	OnTick func(rec TickRecord)
}

// Driver schedules the simulation against real time. It finalizes ticks as real time passes them,
// predicts the next tick from the input received so far and produces a drawable world state for
// every input sample.
//
// A Driver must only be used from a single goroutine.
type Driver struct {
	env  Env
	opts Options
	log  *logrus.Logger

	started bool

	step     time.Duration
	interval time.Duration

	startTime    time.Time
	lastTickTime time.Time
	// precedingTickID is the ID of the last tick whose real time boundary has passed.
	precedingTickID uint64

	finalizedTickID uint64
	finalized       WorldState

	inputs []input.State
	ledger Ledger

	predicted WorldState

	drawable     WorldState
	drawableTime time.Time

	lastSampleTime time.Time

	history *History
}

// NewDriver returns a Driver advancing world states in the given environment. The Driver is inert
// until Start is called.
func NewDriver(env Env, opts Options) *Driver {
	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetOutput(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = WallClock{}
	}
	return &Driver{
		env:     env,
		opts:    opts,
		log:     opts.Logger,
		history: newHistory(opts.HistorySize),
	}
}

// Start starts, or restarts, the simulation from the initial world state. step is the simulated
// duration of one tick, and timescale is the ratio of simulated time to real time.
func (d *Driver) Start(step time.Duration, timescale float32, initial WorldState) {
	assert.IsTrue(step > 0, "step duration must be positive (got %v)", step)
	assert.IsTrue(!initial.IsInterpolated, "cannot start from an interpolated world state")

	now := d.opts.Clock.Now()
	d.step = step
	d.UpdateTimescale(timescale)

	d.startTime = now
	d.lastTickTime = now
	d.precedingTickID = 0
	d.finalizedTickID = 0
	d.finalized = initial.Clone()
	d.inputs = d.inputs[:0]
	d.ledger.Clear()
	d.lastSampleTime = now
	d.history = newHistory(d.opts.HistorySize)

	d.repredict()
	d.drawable = d.finalized.Clone()
	d.drawableTime = now
	d.started = true

	d.log.WithFields(logrus.Fields{
		"step":      step,
		"timescale": timescale,
		"interval":  d.interval,
	}).Info("simulation started")
}

// UpdateTimescale changes the ratio of simulated time to real time. It takes effect from the last
// tick boundary that has already passed.
func (d *Driver) UpdateTimescale(timescale float32) {
	assert.IsTrue(timescale > 0, "timescale must be positive (got %v)", timescale)
	d.interval = time.Duration(float64(d.step) / float64(timescale))
	assert.IsTrue(d.interval > 0, "tick interval rounds down to zero (step=%v timescale=%v)", d.step, timescale)
	if d.started {
		d.log.WithFields(logrus.Fields{"timescale": timescale, "interval": d.interval}).Debug("timescale updated")
	}
}

// HasBeenStarted returns whether Start has been called.
func (d *Driver) HasBeenStarted() bool {
	return d.started
}

// ProcessInput processes an input sample. Samples must be processed in chronological order. If
// subticked is true, the sample is attributed to its exact position within the tick, otherwise to the
// start of the tick.
func (d *Driver) ProcessInput(sample input.State, subticked bool) {
	assert.IsTrue(d.started, "input processed before the simulation was started")
	t := sample.SampleTime
	if t.Before(d.lastSampleTime) {
		assert.Unreachable("input sample out of order %s", utils.OrderedMapToString(utils.KeyValsToOrderedMap(
			"sample", t.Sub(d.startTime),
			"last", d.lastSampleTime.Sub(d.startTime),
			"tick", d.finalizedTickID,
		)))
	}
	d.lastSampleTime = t

	for d.lastTickTime.Add(d.interval).Before(t) {
		d.lastTickTime = d.lastTickTime.Add(d.interval)
		d.precedingTickID++
	}
	for d.finalizedTickID < d.precedingTickID {
		d.finalizeTick()
	}

	d.inputs = append(d.inputs, sample)
	d.recordSubtick(sample, subticked)

	if !subticked {
		d.repredict()
	}

	dbg := d.env.Dbg
	if d.opts.DisableInterpolation {
		if subticked {
			d.repredict()
		}
		d.drawable = d.finalized.Clone()
	} else if subticked {
		phase := d.tickPhase(t)
		d.drawable = d.finalized.Clone()
		d.drawable.Advance(d.env, d.step, d.inputs, d.ledger.Steps(), phase)
		d.predicted = d.drawable.Clone()
		dbg.Notify(debug.ModeDrawable, true, "subticked drawable at phase %.4f (tick %d)", phase, d.finalizedTickID+1)
	} else {
		nextTickTime := d.lastTickTime.Add(d.interval)
		rng := nextTickTime.Sub(d.drawableTime)
		if rng == 0 {
			d.drawable = d.predicted.Clone()
			dbg.Notify(debug.ModeDrawable, true, "zero interpolation range, drawing prediction")
		} else {
			phase := float32(float64(t.Sub(d.drawableTime)) / float64(rng))
			d.drawable = Interpolate(d.drawable, d.predicted, phase)
			dbg.Notify(debug.ModeDrawable, true, "interpolated drawable at phase %.4f (simtime=%v)", phase, d.drawable.SimTime)
		}
	}
	d.drawableTime = t
}

// recordSubtick appends the sample to the ledger if it changes the held buttons or jumps.
func (d *Driver) recordSubtick(sample input.State, subticked bool) {
	scrollJump := sample.Triggers.Has(input.TriggerScrollJump)
	if sample.Buttons == d.ledger.ActiveBitmask(d.finalized.PrevInput.Buttons) && !scrollJump {
		return
	}

	var when float32
	if subticked {
		when = d.tickPhase(sample.SampleTime)
	} else {
		when = d.clampToLedger(sample.SampleTime, 0)
	}
	step := SubtickStep{InputBitmask: sample.Buttons, Tick: d.finalizedTickID + 1, When: when}
	if scrollJump {
		step.InputBitmask |= input.InJump
	}
	d.appendSubtick(step)

	if scrollJump && subticked {
		// Release the scroll jump at the same instant it was pressed.
		step.InputBitmask = sample.Buttons
		d.appendSubtick(step)
	}
}

// tickPhase returns how far into the current tick t is, clamped by clampToLedger.
func (d *Driver) tickPhase(t time.Time) float32 {
	phase := float32(float64(t.Sub(d.lastTickTime)) / float64(d.interval))
	if phase > 1 {
		phase = 1
	}
	return d.clampToLedger(t, phase)
}

// clampToLedger keeps when from going back before the last ledger step. This happens after a
// timescale change within the tick, or when a non-subticked sample follows a subticked one.
// Every clamp is logged as a warning.
func (d *Driver) clampToLedger(t time.Time, when float32) float32 {
	last, ok := d.ledger.Last()
	if !ok || when >= last.When {
		return when
	}
	d.log.WithFields(logrus.Fields{
		"sample":  t.Sub(d.startTime),
		"when":    when,
		"clamped": last.When,
		"tick":    d.finalizedTickID + 1,
	}).Warn("subtick step went back in time, clamped to last step")
	return last.When
}

func (d *Driver) appendSubtick(step SubtickStep) {
	d.ledger.Append(step)
	d.env.Dbg.Notify(debug.ModeSubtick, true, "subtick step tick=%d when=%.4f buttons=%b", step.Tick, step.When, step.InputBitmask)
}

// finalizeTick advances the finalized world state by a full tick with the buffered input.
func (d *Driver) finalizeTick() {
	d.finalized.Advance(d.env, d.step, d.inputs, d.ledger.Steps(), 1)
	d.finalizedTickID++
	d.inputs = d.inputs[:0]
	d.ledger.Clear()

	rec := TickRecord{ID: d.finalizedTickID, SimTime: d.finalized.SimTime, Digest: d.finalized.Digest()}
	d.history.add(rec)
	if d.opts.OnTick != nil {
		d.opts.OnTick(rec)
	}
	d.env.Dbg.Notify(debug.ModeTicks, true, "finalized tick %d (simtime=%v digest=%016x)", rec.ID, rec.SimTime, rec.Digest)
}

// repredict predicts the next tick from the finalized state and the buffered input.
func (d *Driver) repredict() {
	d.predicted = d.finalized.Clone()
	d.predicted.Advance(d.env, d.step, d.inputs, d.ledger.Steps(), 1)
}

// ModifyWorldState applies f to the finalized world state, then predicts the next tick again and draws
// the modified state from the real time point of the finalized tick.
func (d *Driver) ModifyWorldState(f func(ws *WorldState)) {
	assert.IsTrue(d.started, "world state modified before the simulation was started")
	f(&d.finalized)
	assert.IsTrue(!d.finalized.IsInterpolated, "finalized world state marked as interpolated")

	d.repredict()
	d.drawable = d.finalized.Clone()
	d.drawableTime = d.GameTickRealTimePoint(d.finalizedTickID)
	d.log.WithField("tick", d.finalizedTickID).Debug("finalized world state modified")
}

// LatestActualWorldState returns a copy of the latest finalized world state.
func (d *Driver) LatestActualWorldState() WorldState {
	assert.IsTrue(d.started, "world state requested before the simulation was started")
	return d.finalized.Clone()
}

// LatestPredictedWorldState returns a copy of the prediction of the next tick.
func (d *Driver) LatestPredictedWorldState() WorldState {
	assert.IsTrue(d.started, "world state requested before the simulation was started")
	return d.predicted.Clone()
}

// LatestDrawableWorldState returns a copy of the world state to draw.
func (d *Driver) LatestDrawableWorldState() WorldState {
	assert.IsTrue(d.started, "world state requested before the simulation was started")
	return d.drawable.Clone()
}

// GameTickRealTimePoint returns the real time point of the given tick. The result assumes the current
// timescale has been in effect since the start, so it is off for ticks after a timescale change.
func (d *Driver) GameTickRealTimePoint(tick uint64) time.Time {
	assert.IsTrue(d.started, "tick time requested before the simulation was started")
	return d.startTime.Add(time.Duration(tick) * d.interval)
}

// FinalizedTickID returns the ID of the latest finalized tick.
func (d *Driver) FinalizedTickID() uint64 {
	return d.finalizedTickID
}

// BufferedInputs returns the number of input samples received since the latest finalized tick.
func (d *Driver) BufferedInputs() int {
	return len(d.inputs)
}

// StepDuration returns the simulated duration of a tick.
func (d *Driver) StepDuration() time.Duration {
	return d.step
}

// TickInterval returns the real duration of a tick.
func (d *Driver) TickInterval() time.Duration {
	return d.interval
}

// History returns the record of recently finalized ticks.
func (d *Driver) History() *History {
	return d.history
}
