package search

import (
	"context"
	"runtime"
	"sync/atomic"
)

// Result is delivered once, on Handle's Done channel, when a cooperative
// search concludes (successfully or with an error).
type Result[Node any] struct {
	Path []Node
	Err  error
}

// Handle controls a cooperative A* search started by Async. The search runs
// in bursts of Options.AsyncBlockSize iterations, yielding the goroutine
// scheduler between bursts so it shares a thread pool cooperatively with
// other work.
type Handle[Node any, K comparable] struct {
	done      chan Result[Node]
	resumeSig chan struct{}
	paused    atomic.Bool
	cancel    context.CancelFunc
}

// Async starts a cooperative A* search and returns immediately with a
// Handle. The result (path or error, including ErrNoPathFound) is delivered
// exactly once on Handle.Done().
func Async[Node any, K comparable](
	ctx context.Context,
	start Node,
	isEnd func(Node) bool,
	neighbors func(Node) []Node,
	distance func(a, b Node) float64,
	opts Options[Node, K],
) *Handle[Node, K] {
	blockSize := opts.AsyncBlockSize
	if blockSize <= 0 {
		blockSize = defaultAsyncBlockSize
	}

	runCtx, cancel := context.WithCancel(ctx)

	h := &Handle[Node, K]{
		done:      make(chan Result[Node], 1),
		resumeSig: make(chan struct{}, 1),
		cancel:    cancel,
	}

	go h.run(runCtx, start, isEnd, neighbors, distance, opts, blockSize)

	return h
}

func (h *Handle[Node, K]) run(
	ctx context.Context,
	start Node,
	isEnd func(Node) bool,
	neighbors func(Node) []Node,
	distance func(a, b Node) float64,
	opts Options[Node, K],
	blockSize int,
) {
	r := newRunner(start, isEnd, neighbors, distance, opts)

	for {
		for i := 0; i < blockSize; i++ {
			path, done, err := r.step()
			if done {
				h.done <- Result[Node]{Path: path, Err: err}
				return
			}
		}

		if ctx.Err() != nil {
			return
		}

		if h.paused.Load() {
			select {
			case <-ctx.Done():
				return
			case <-h.resumeSig:
			}
		}

		runtime.Gosched()
	}
}

// Done returns the channel the final Result is delivered on.
func (h *Handle[Node, K]) Done() <-chan Result[Node] {
	return h.done
}

// Pause causes the next scheduled burst boundary to block before starting
// its next burst, until Resume is called (or the search's context is
// canceled).
func (h *Handle[Node, K]) Pause() {
	h.paused.Store(true)
}

// Resume un-pauses a paused search. Idempotent if the search was not
// paused.
func (h *Handle[Node, K]) Resume() {
	if h.paused.CompareAndSwap(true, false) {
		select {
		case h.resumeSig <- struct{}{}:
		default:
		}
	}
}

// Cancel stops the search at its next burst boundary; no Result is
// delivered. Go has no implicit GC-driven cleanup for a paused goroutine,
// so callers that abandon a paused search must call Cancel explicitly.
func (h *Handle[Node, K]) Cancel() {
	h.cancel()
}
