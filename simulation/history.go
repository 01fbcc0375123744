package simulation

import (
	"time"

	"github.com/bumpmine-sim/subtick/utils"
)

// DefaultHistorySize is the number of finalized ticks remembered by a Driver unless configured
// otherwise.
const DefaultHistorySize = 256

// TickRecord describes a finalized tick.
type TickRecord struct {
	ID      uint64
	SimTime time.Duration
	Digest  uint64
}

// History is a bounded record of the most recently finalized ticks.
type History struct {
	queue *utils.CircularQueue[TickRecord]
}

func newHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{queue: utils.NewCircularQueue[TickRecord](size)}
}

func (h *History) add(rec TickRecord) {
	// The queue always has a non-zero capacity.
	_ = h.queue.Append(rec)
}

// Records returns the remembered ticks, oldest first.
func (h *History) Records() []TickRecord {
	records := make([]TickRecord, 0, h.queue.Len())
	for rec := range h.queue.Iter() {
		records = append(records, rec)
	}
	return records
}

// Latest returns the most recently finalized tick.
func (h *History) Latest() (TickRecord, bool) {
	return h.queue.Last()
}

// Len ...
func (h *History) Len() int {
	return h.queue.Len()
}
