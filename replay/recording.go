// Package replay records input sessions and simulates them again to check that the simulation is
// deterministic.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bumpmine-sim/subtick/input"
	"github.com/bumpmine-sim/subtick/settings"
	"github.com/bumpmine-sim/subtick/simulation"
	"github.com/disgoorg/json"
	"github.com/go-gl/mathgl/mgl32"
)

const CurrentRecordingVer = "1"

// EventKind is the type of a recorded event.
type EventKind string

const (
	EventInput     EventKind = "input"
	EventTimescale EventKind = "timescale"
	EventTick      EventKind = "tick"
)

// Header describes the session a recording was made of.
type Header struct {
	Start     int64             `json:"start"`
	Step      time.Duration     `json:"step"`
	Timescale float32           `json:"timescale"`
	Origin    [3]float32        `json:"origin"`
	Settings  settings.Settings `json:"settings"`
}

// StartTime returns the real time point the session was started at.
func (h Header) StartTime() time.Time {
	return time.Unix(0, h.Start)
}

// Event is a single recorded event. Offset is the real time since the start of the session.
type Event struct {
	Kind   EventKind     `json:"kind"`
	Offset time.Duration `json:"offset"`

	// Input events.
	Pitch     float32        `json:"pitch,omitempty"`
	Yaw       float32        `json:"yaw,omitempty"`
	Buttons   input.Buttons  `json:"buttons,omitempty"`
	Triggers  input.Triggers `json:"triggers,omitempty"`
	Subticked bool           `json:"subticked,omitempty"`

	// Timescale events.
	Timescale float32 `json:"timescale,omitempty"`

	// Tick events.
	Tick    uint64        `json:"tick,omitempty"`
	SimTime time.Duration `json:"simtime,omitempty"`
	Digest  uint64        `json:"digest,omitempty"`
}

// Sample returns the input sample of an input event.
func (e Event) Sample(start time.Time) input.State {
	return input.State{
		SampleTime: start.Add(e.Offset),
		ViewAngles: mgl32.Vec2{e.Pitch, e.Yaw},
		Buttons:    e.Buttons,
		Triggers:   e.Triggers,
	}
}

// TickRecord returns the finalized tick of a tick event.
func (e Event) TickRecord() simulation.TickRecord {
	return simulation.TickRecord{ID: e.Tick, SimTime: e.SimTime, Digest: e.Digest}
}

// Recording is a decoded recording.
type Recording struct {
	Version string
	Header  Header
	Events  []Event
}

// Ticks returns the finalized ticks recorded during the session, if any were.
func (r *Recording) Ticks() []simulation.TickRecord {
	var ticks []simulation.TickRecord
	for _, ev := range r.Events {
		if ev.Kind == EventTick {
			ticks = append(ticks, ev.TickRecord())
		}
	}
	return ticks
}

// Load decodes a recording. It returns an error if the recording could not be parsed, or if the
// version of the recording is not supported.
func Load(r io.Reader) (*Recording, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	rec := &Recording{}
	var line int
	var headerRead bool
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		line++
		if text == "" {
			continue
		}

		switch {
		case rec.Version == "":
			if text != CurrentRecordingVer {
				return nil, fmt.Errorf("unsupported recording version %q (expected %q)", text, CurrentRecordingVer)
			}
			rec.Version = text
		case !headerRead:
			if err := json.Unmarshal([]byte(text), &rec.Header); err != nil {
				return nil, fmt.Errorf("unable to decode recording header: %w", err)
			}
			headerRead = true
		default:
			var ev Event
			if err := json.Unmarshal([]byte(text), &ev); err != nil {
				return nil, fmt.Errorf("unable to decode event on line %d: %w", line, err)
			}
			rec.Events = append(rec.Events, ev)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read recording: %w", err)
	}
	if !headerRead {
		return nil, fmt.Errorf("recording has no header")
	}
	if rec.Header.Step <= 0 || rec.Header.Timescale <= 0 {
		return nil, fmt.Errorf("recording header has invalid step %v or timescale %v", rec.Header.Step, rec.Header.Timescale)
	}
	return rec, nil
}
