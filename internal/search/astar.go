// Package search implements a generic A* over arbitrary graphs: an
// admissible-heuristic mode, a non-admissible weighted mode (by passing a
// heuristic that overestimates), a per-step fast-solver shortcut, an
// f-cost ceiling, and a cooperative/incremental execution driver (Async).
package search

import (
	"github.com/foldedgrid/flooditsolver/internal/errs"
	"github.com/foldedgrid/flooditsolver/internal/heapq"
	"github.com/pkg/errors"
)

// fastSolverEpsilon is the slack the fast-solver shortcut is allowed: its
// path cost may exceed the current node's heuristic estimate by this much
// and still be accepted, to absorb floating-point noise.
const fastSolverEpsilon = 1e-5

// defaultAsyncBlockSize is the number of iterations run per cooperative
// burst when Options.AsyncBlockSize is left at zero.
const defaultAsyncBlockSize = 100

// FastSolverResult is returned by an Options.FastSolver hook: a claimed
// total cost from the probed node to a terminal node, plus the path that
// achieves it (starting at the probed node).
type FastSolverResult[Node any] struct {
	Cost float64
	Path []Node
}

// Options configures an A* search over graphs of Node, identified for
// map/set bookkeeping by the comparable key type K.
type Options[Node any, K comparable] struct {
	// Heuristic estimates the remaining cost from a node to a terminal
	// node. Must be non-negative. Defaults to the zero heuristic (making
	// the search behave like plain Dijkstra).
	Heuristic func(Node) float64

	// GetKey derives the bookkeeping identity of a node. Required: Node
	// itself need not be comparable, so there is no sound default.
	GetKey func(Node) K

	// MaxFCost, if non-nil, prunes any node whose tentative f-cost exceeds
	// it.
	MaxFCost *float64

	// FastSolver, if set, is consulted on every expansion. If it reports a
	// path whose cost is within fastSolverEpsilon of the current node's
	// heuristic estimate, that path is spliced onto the path reconstructed
	// so far and returned immediately.
	FastSolver func(Node) (FastSolverResult[Node], bool)

	// AsyncBlockSize is the number of iterations run per cooperative burst
	// in Async. Defaults to 100.
	AsyncBlockSize int

	// OnHeapPush and OnHeapPop, if set, are invoked after every push/pop the
	// search frontier performs, letting a caller record heap traffic.
	OnHeapPush func()
	OnHeapPop  func()
}

// Run performs a blocking A* search from start until isEnd holds for the
// expanded node, using neighbors to expand nodes and distance as the edge
// cost between a node and one of its neighbors. Returns ErrNoPathFound if
// the open set is exhausted first.
func Run[Node any, K comparable](
	start Node,
	isEnd func(Node) bool,
	neighbors func(Node) []Node,
	distance func(a, b Node) float64,
	opts Options[Node, K],
) ([]Node, error) {
	r := newRunner(start, isEnd, neighbors, distance, opts)
	for {
		path, done, err := r.step()
		if err != nil {
			return nil, err
		}
		if done {
			return path, nil
		}
	}
}

// runner holds one A* search's bookkeeping, so both the blocking Run and
// the cooperative Async driver can share a single stepping implementation.
type runner[Node any, K comparable] struct {
	isEnd     func(Node) bool
	neighbors func(Node) []Node
	distance  func(a, b Node) float64
	opts      Options[Node, K]

	heap     *heapq.Min[K]
	open     map[K]Node
	closed   map[K]bool
	cameFrom map[K]Node
	gCost    map[K]float64
}

func newRunner[Node any, K comparable](
	start Node,
	isEnd func(Node) bool,
	neighbors func(Node) []Node,
	distance func(a, b Node) float64,
	opts Options[Node, K],
) *runner[Node, K] {
	if opts.Heuristic == nil {
		opts.Heuristic = func(Node) float64 { return 0 }
	}

	startKey := opts.GetKey(start)

	r := &runner[Node, K]{
		isEnd:     isEnd,
		neighbors: neighbors,
		distance:  distance,
		opts:      opts,
		heap:      heapq.New[K](),
		open:      map[K]Node{startKey: start},
		closed:    make(map[K]bool),
		cameFrom:  make(map[K]Node),
		gCost:     map[K]float64{startKey: 0},
	}
	r.heap.SetHooks(opts.OnHeapPush, opts.OnHeapPop)
	r.heap.Push(float32(opts.Heuristic(start)), startKey)
	return r
}

// step performs one pop-and-expand iteration. done reports whether the
// search has concluded, either successfully (path non-nil, err nil) or with
// err set; err is ErrNoPathFound if the open set was exhausted, or
// ErrEmptyHeap if internal bookkeeping is broken (a bug, not a normal
// outcome).
func (r *runner[Node, K]) step() (path []Node, done bool, err error) {
	for {
		if r.heap.Len() == 0 {
			return nil, true, errors.Wrap(errs.ErrNoPathFound, "search.Run: open set exhausted")
		}

		fCost, key, popErr := r.heap.Pop()
		if popErr != nil {
			return nil, true, errors.Wrap(popErr, "search.Run")
		}

		node, stillOpen := r.open[key]
		if !stillOpen {
			continue // stale entry superseded by a better g-cost re-push
		}

		if r.isEnd(node) {
			return r.reconstructPath(key), true, nil
		}

		if r.opts.FastSolver != nil {
			if fs, ok := r.opts.FastSolver(node); ok {
				allowance := float64(fCost) - r.gCost[key]
				if fs.Cost <= allowance+fastSolverEpsilon {
					return r.splicePath(key, fs.Path), true, nil
				}
			}
		}

		delete(r.open, key)
		r.closed[key] = true

		for _, neighbor := range r.neighbors(node) {
			nKey := r.opts.GetKey(neighbor)
			if r.closed[nKey] {
				continue
			}

			tentativeG := r.gCost[key] + r.distance(node, neighbor)

			existingG, visited := r.gCost[nKey]
			if visited && tentativeG > existingG {
				continue
			}

			fPrime := tentativeG + r.opts.Heuristic(neighbor)
			if r.opts.MaxFCost != nil && fPrime > *r.opts.MaxFCost {
				continue
			}

			r.cameFrom[nKey] = node
			r.gCost[nKey] = tentativeG
			r.open[nKey] = neighbor
			r.heap.Push(float32(fPrime), nKey)
		}

		return nil, false, nil
	}
}

func (r *runner[Node, K]) reconstructPath(endKey K) []Node {
	node := r.open[endKey]
	path := []Node{node}

	key := endKey
	for {
		prev, ok := r.cameFrom[key]
		if !ok {
			break
		}
		path = append(path, prev)
		key = r.opts.GetKey(prev)
	}

	reverse(path)
	return path
}

func (r *runner[Node, K]) splicePath(atKey K, tail []Node) []Node {
	prefix := r.reconstructPath(atKey)
	if len(tail) > 0 {
		tail = tail[1:] // tail[0] duplicates the spliced-from node
	}
	out := make([]Node, 0, len(prefix)+len(tail))
	out = append(out, prefix...)
	out = append(out, tail...)
	return out
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
