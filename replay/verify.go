package replay

import (
	"fmt"
	"strings"

	"github.com/bumpmine-sim/subtick/simulation"
	"github.com/bumpmine-sim/subtick/utils"
	"github.com/bumpmine-sim/subtick/worker"
	"github.com/bumpmine-sim/subtick/world"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Mismatch is a tick whose digest differs from the reference.
type Mismatch struct {
	Run  int
	Tick uint64
	Want uint64
	// Got is zero if the run did not finalize the tick at all.
	Got uint64
}

// Report is the outcome of Verify.
type Report struct {
	Runs int
	// Reference is where the expected digests came from: "recording" or "run 0".
	Reference  string
	Ticks      int
	Checked    int64
	Mismatches []Mismatch
	Errors     []error
}

// OK returns whether every run reproduced the reference exactly.
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0 && len(r.Errors) == 0
}

// String ...
func (r *Report) String() string {
	var sb strings.Builder
	sb.WriteString(utils.OrderedMapToString(utils.KeyValsToOrderedMap(
		"runs", r.Runs,
		"reference", r.Reference,
		"ticks", r.Ticks,
		"checked", r.Checked,
		"mismatches", len(r.Mismatches),
		"errors", len(r.Errors),
	)))
	for _, m := range r.Mismatches {
		sb.WriteString("\n  mismatch ")
		sb.WriteString(utils.OrderedMapToString(utils.KeyValsToOrderedMap(
			"run", m.Run,
			"tick", m.Tick,
			"want", fmt.Sprintf("%016x", m.Want),
			"got", fmt.Sprintf("%016x", m.Got),
		)))
	}
	for _, err := range r.Errors {
		sb.WriteString("\n  error ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Verify simulates the recording runs times in parallel and compares the digest of every finalized
// tick. If the recording holds the ticks of the live session they are the reference, otherwise the
// first run is.
func Verify(rec *Recording, w world.Provider, runs int, log *logrus.Logger) (*Report, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("verify needs at least one run (got %d)", runs)
	}

	results := make([]Result, runs)
	errs := make([]error, runs)
	var g worker.Group
	for i := 0; i < runs; i++ {
		i := i
		g.Go(func() {
			results[i], errs[i] = Run(rec, w, log)
		})
	}
	if panicked := g.Wait(); panicked > 0 {
		return nil, fmt.Errorf("%d replay runs panicked", panicked)
	}

	report := &Report{Runs: runs, Reference: "recording"}
	for i, err := range errs {
		if err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("run %d: %w", i, err))
		}
	}

	want := rec.Ticks()
	if len(want) == 0 {
		report.Reference = "run 0"
		want = results[0].Ticks
	}
	report.Ticks = len(want)

	var (
		checked    atomic.Int64
		mismatches = make([][]Mismatch, runs)
		cmp        worker.Group
	)
	for i := range results {
		if errs[i] != nil {
			continue
		}
		i := i
		cmp.Go(func() {
			mismatches[i] = compare(i, want, results[i].Ticks, &checked)
		})
	}
	cmp.Wait()
	for _, m := range mismatches {
		report.Mismatches = append(report.Mismatches, m...)
	}
	report.Checked = checked.Load()
	return report, nil
}

func compare(run int, want, got []simulation.TickRecord, checked *atomic.Int64) []Mismatch {
	var mismatches []Mismatch
	for i, w := range want {
		checked.Inc()
		if i >= len(got) {
			mismatches = append(mismatches, Mismatch{Run: run, Tick: w.ID, Want: w.Digest})
			continue
		}
		if got[i].ID != w.ID || got[i].Digest != w.Digest {
			mismatches = append(mismatches, Mismatch{Run: run, Tick: w.ID, Want: w.Digest, Got: got[i].Digest})
		}
	}
	return mismatches
}
