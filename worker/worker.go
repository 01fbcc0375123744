// Package worker runs CPU intensive work on a fixed set of goroutines.
package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
	"go.uber.org/atomic"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	defer sentry.Recover()

	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		f()
	}
}

// To be used by a function that may be CPU intensive.
func Submit(f func()) {
	workerQueue <- f
}

// Group is a set of functions submitted to the pool that can be waited on together. A panic in one of
// the functions is reported to Sentry and counted instead of killing the worker.
type Group struct {
	wg       sync.WaitGroup
	pending  atomic.Int64
	panicked atomic.Int64
}

// Go submits f to the pool as part of the group.
func (g *Group) Go(f func()) {
	g.wg.Add(1)
	g.pending.Inc()
	Submit(func() {
		defer g.wg.Done()
		defer g.pending.Dec()
		defer func() {
			if r := recover(); r != nil {
				g.panicked.Inc()
				sentry.CurrentHub().Recover(r)
			}
		}()
		f()
	})
}

// Pending returns the number of functions that have not finished yet.
func (g *Group) Pending() int64 {
	return g.pending.Load()
}

// Wait blocks until every function of the group has finished and returns how many of them panicked.
func (g *Group) Wait() int64 {
	g.wg.Wait()
	return g.panicked.Load()
}
