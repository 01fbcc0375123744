// Package debug routes optional, per-mode trace output of the simulation to a logger.
package debug

import (
	"github.com/sirupsen/logrus"
)

// Mode is a category of debug output.
type Mode uint8

const (
	// ModeTicks traces tick catch-up and finalization.
	ModeTicks Mode = iota
	// ModeSubtick traces subtick ledger updates.
	ModeSubtick
	// ModeDrawable traces drawable state phases and interpolation.
	ModeDrawable
	// ModeMovement traces every movement integration segment.
	ModeMovement

	modeCount
)

// String ...
func (m Mode) String() string {
	switch m {
	case ModeTicks:
		return "ticks"
	case ModeSubtick:
		return "subtick"
	case ModeDrawable:
		return "drawable"
	case ModeMovement:
		return "movement"
	default:
		return "unknown"
	}
}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, bool) {
	for m := Mode(0); m < modeCount; m++ {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// Debugger sends notifications of enabled modes to a logger at debug level. A nil *Debugger is valid
// and discards everything.
type Debugger struct {
	log     *logrus.Logger
	enabled [modeCount]bool
}

// New returns a Debugger with every mode disabled.
func New(log *logrus.Logger) *Debugger {
	return &Debugger{log: log}
}

// Toggle flips the given mode.
func (d *Debugger) Toggle(m Mode) {
	d.enabled[m] = !d.enabled[m]
}

// Enable turns the given modes on.
func (d *Debugger) Enable(modes ...Mode) {
	for _, m := range modes {
		d.enabled[m] = true
	}
}

// Enabled returns whether the mode is enabled.
func (d *Debugger) Enabled(m Mode) bool {
	return d != nil && d.log != nil && d.enabled[m]
}

// Notify logs the message if the mode is enabled and cond is true.
func (d *Debugger) Notify(m Mode, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(m) {
		return
	}
	d.log.WithField("mode", m.String()).Debugf(format, args...)
}
