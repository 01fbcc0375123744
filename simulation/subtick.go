package simulation

import (
	"github.com/bumpmine-sim/subtick/assert"
	"github.com/bumpmine-sim/subtick/input"
)

// SubtickStep is an input change attributed to a fractional position within a tick.
type SubtickStep struct {
	// InputBitmask is the button state from When onwards.
	InputBitmask input.Buttons
	// Tick is the ID of the tick the step belongs to.
	Tick uint64
	// When is the offset into the tick, in [0, 1].
	When float32
}

// Ledger is the ordered list of subtick steps of the tick being built.
type Ledger struct {
	steps []SubtickStep
}

// Append adds a step to the ledger. Steps must be appended in non-decreasing order of When.
func (l *Ledger) Append(step SubtickStep) {
	assert.IsTrue(step.When >= 0 && step.When <= 1, "subtick step at %v outside of [0, 1]", step.When)
	if last, ok := l.Last(); ok {
		assert.IsTrue(step.When >= last.When, "subtick step at %v appended after step at %v", step.When, last.When)
	}
	l.steps = append(l.steps, step)
}

// Last returns the most recently appended step.
func (l *Ledger) Last() (SubtickStep, bool) {
	if len(l.steps) == 0 {
		return SubtickStep{}, false
	}
	return l.steps[len(l.steps)-1], true
}

// ActiveBitmask returns the bitmask of the last step, or fallback if the ledger is empty.
func (l *Ledger) ActiveBitmask(fallback input.Buttons) input.Buttons {
	if last, ok := l.Last(); ok {
		return last.InputBitmask
	}
	return fallback
}

// Steps returns the steps of the ledger. The slice is only valid until the next call to Append or
// Clear.
func (l *Ledger) Steps() []SubtickStep {
	return l.steps
}

// Len ...
func (l *Ledger) Len() int {
	return len(l.steps)
}

// Clear removes every step.
func (l *Ledger) Clear() {
	l.steps = l.steps[:0]
}

func checkSteps(steps []SubtickStep, fraction float32) {
	for i := 1; i < len(steps); i++ {
		assert.IsTrue(steps[i].When >= steps[i-1].When, "subtick steps out of order at index %d (%v < %v)", i, steps[i].When, steps[i-1].When)
	}
	if len(steps) > 0 {
		last := steps[len(steps)-1].When
		assert.IsTrue(last <= fraction, "last subtick step at %v is past advance fraction %v", last, fraction)
	}
}
