// Package heapq implements the binary min-heap shared by the A* frontier
// and the navigation-mesh Dijkstra pass. It holds (key, value) pairs with
// duplicate keys permitted; staleness (a key that no longer reflects a
// caller's current bookkeeping) is the caller's responsibility to detect on
// pop, same as a textbook "lazy deletion" priority queue.
package heapq

import (
	"github.com/foldedgrid/flooditsolver/internal/errs"
	"github.com/pkg/errors"
)

// Min is a binary min-heap of (key, value) pairs. It is not safe for
// concurrent use.
type Min[V any] struct {
	keys   []float32
	values []V
	onPush func()
	onPop  func()
}

// New creates an empty min-heap.
func New[V any]() *Min[V] {
	return &Min[V]{}
}

// SetHooks installs optional callbacks invoked after every Push and
// successful Pop, so a caller can record heap traffic (e.g. Prometheus
// counters) without heapq itself depending on a metrics package. Either hook
// may be nil.
func (h *Min[V]) SetHooks(onPush, onPop func()) {
	h.onPush = onPush
	h.onPop = onPop
}

// Len reports the number of entries currently in the heap.
func (h *Min[V]) Len() int {
	return len(h.keys)
}

// Push inserts value with priority key. O(log n).
func (h *Min[V]) Push(key float32, value V) {
	h.keys = append(h.keys, key)
	h.values = append(h.values, value)
	h.siftUp(len(h.keys) - 1)
	if h.onPush != nil {
		h.onPush()
	}
}

// Pop removes and returns the entry with the smallest key. O(log n).
// Returns ErrEmptyHeap if the heap has no entries.
func (h *Min[V]) Pop() (float32, V, error) {
	n := len(h.keys)
	if n == 0 {
		var zero V
		return 0, zero, errors.Wrap(errs.ErrEmptyHeap, "heapq.Pop")
	}

	key, value := h.keys[0], h.values[0]

	last := n - 1
	h.keys[0] = h.keys[last]
	h.values[0] = h.values[last]
	h.keys = h.keys[:last]
	h.values = h.values[:last]

	if last > 0 {
		h.siftDown(0)
	}

	if h.onPop != nil {
		h.onPop()
	}

	return key, value, nil
}

func (h *Min[V]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.keys[i] >= h.keys[parent] {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Min[V]) siftDown(i int) {
	n := len(h.keys)
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i

		// Tie-break: prefer the left child when both children are equal to
		// the current smallest candidate.
		if left < n && h.keys[left] <= h.keys[smallest] {
			smallest = left
		}
		if right < n && h.keys[right] < h.keys[smallest] {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *Min[V]) swap(i, j int) {
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	h.values[i], h.values[j] = h.values[j], h.values[i]
}
