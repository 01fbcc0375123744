package replay

import (
	"fmt"
	"io"

	"github.com/bumpmine-sim/subtick/input"
	"github.com/bumpmine-sim/subtick/simulation"
	"github.com/disgoorg/json"
	"github.com/sasha-s/go-deadlock"
)

// Recorder writes a session to a recording as it happens. It is safe for concurrent use.
type Recorder struct {
	w      io.Writer
	header Header
	events int
	mu     deadlock.Mutex
}

// NewRecorder writes the recording header to w and returns a Recorder appending events to it.
func NewRecorder(w io.Writer, header Header) (*Recorder, error) {
	r := &Recorder{w: w, header: header}
	if _, err := io.WriteString(w, CurrentRecordingVer+"\n"); err != nil {
		return nil, fmt.Errorf("unable to write recording version: %w", err)
	}
	if err := r.writeLine(header); err != nil {
		return nil, fmt.Errorf("unable to write recording header: %w", err)
	}
	return r, nil
}

// Input records an input sample passed to the driver.
func (r *Recorder) Input(sample input.State, subticked bool) error {
	return r.write(Event{
		Kind:      EventInput,
		Offset:    sample.SampleTime.Sub(r.header.StartTime()),
		Pitch:     sample.ViewAngles[0],
		Yaw:       sample.ViewAngles[1],
		Buttons:   sample.Buttons,
		Triggers:  sample.Triggers,
		Subticked: subticked,
	})
}

// Timescale records a timescale change that happened after the events recorded so far.
func (r *Recorder) Timescale(scale float32) error {
	return r.write(Event{Kind: EventTimescale, Timescale: scale})
}

// Tick records a finalized tick, so that replays can be checked against the live session.
func (r *Recorder) Tick(rec simulation.TickRecord) error {
	return r.write(Event{Kind: EventTick, Tick: rec.ID, SimTime: rec.SimTime, Digest: rec.Digest})
}

// Events returns the number of events recorded.
func (r *Recorder) Events() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events
}

func (r *Recorder) write(ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.writeLine(ev); err != nil {
		return fmt.Errorf("unable to write %s event: %w", ev.Kind, err)
	}
	r.events++
	return nil
}

func (r *Recorder) writeLine(v any) error {
	enc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	enc = append(enc, '\n')
	_, err = r.w.Write(enc)
	return err
}
