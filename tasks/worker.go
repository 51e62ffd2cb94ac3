package tasks

import (
	"sync"
	"time"

	"github.com/gridpix/go-filter/profiler"
)

// Worker runs filter requests in isolated goroutines.
//
// Each request owns private decoded surfaces for the duration of its run, so
// there is no shared mutable state between invocations and the engine needs
// no locking discipline. A running filter cannot be cancelled; it always
// scans to completion before its result is posted. Callers wanting timeouts
// enforce them around the worker, not inside it.
type Worker struct {
	responses chan Response
	timer     *profiler.OperationTimer
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewWorker creates a worker. buffer sizes the response channel; dispatching
// blocks when the caller stops draining it.
func NewWorker(buffer int) *Worker {
	return &Worker{
		responses: make(chan Response, buffer),
		timer:     profiler.NewOperationTimer(),
	}
}

// Responses is the stream of progress, log and result messages from every
// submitted request, in per-request order (messages of concurrent requests
// interleave).
func (w *Worker) Responses() <-chan Response {
	return w.responses
}

// Submit runs the request on its own goroutine and returns immediately.
// The final Result (or Error) response for the request's tag marks its
// completion.
func (w *Worker) Submit(req Request) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		start := time.Now()
		Dispatch(req, func(r Response) { w.responses <- r })
		w.timer.Track(string(req.Cmd), time.Since(start))
	}()
}

// Timing returns the accumulated per-command timing statistics.
func (w *Worker) Timing() []profiler.Stats {
	return w.timer.Snapshot()
}

// Close waits for all in-flight requests and closes the response stream.
func (w *Worker) Close() {
	w.closeOnce.Do(func() {
		w.wg.Wait()
		close(w.responses)
	})
}
