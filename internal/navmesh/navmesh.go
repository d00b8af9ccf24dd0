// Package navmesh precomputes single-source shortest paths on a graph and
// hands back a reusable path-to-target closure. It backs the Flood-It
// heuristic's three hard-corner blob-graph traversals.
package navmesh

import (
	"time"

	"github.com/foldedgrid/flooditsolver/internal/heapq"
)

// Recorder observes how long a Dijkstra pass took to build. buildCornerMeshes
// builds three meshes concurrently, so implementations must tolerate
// concurrent calls.
type Recorder interface {
	RecordMeshBuild(time.Duration)
}

// Mesh is the result of a single-source Dijkstra pass: a predecessor map
// and distance map covering every node reachable from the source.
type Mesh[Node comparable] struct {
	source   Node
	cameFrom map[Node]Node
	minDist  map[Node]float64
}

// Build enumerates the component reachable from source via neighbors, runs
// Dijkstra against it using distance as the edge-cost function, and returns
// a Mesh whose PathTo closure reconstructs shortest paths to any reachable
// target. rec, if non-nil, is given the wall time the build took.
//
// Time is O(V*(V+E)) worst case, acceptable because V is the number of
// blobs, far smaller than the number of board cells.
func Build[Node comparable](source Node, neighbors func(Node) []Node, distance func(a, b Node) float64, rec Recorder) *Mesh[Node] {
	started := time.Now()
	if rec != nil {
		defer func() { rec.RecordMeshBuild(time.Since(started)) }()
	}

	m := &Mesh[Node]{
		source:   source,
		cameFrom: make(map[Node]Node),
		minDist:  map[Node]float64{source: 0},
	}

	h := heapq.New[Node]()
	h.Push(0, source)

	for h.Len() > 0 {
		dist, node, err := h.Pop()
		if err != nil {
			break // heap exhausted; unreachable in practice since Len() > 0 was checked
		}

		// Stale entry: a better distance was already recorded for this node
		// since this entry was pushed.
		if best, ok := m.minDist[node]; ok && float64(dist) > best {
			continue
		}

		for _, n := range neighbors(node) {
			candidate := m.minDist[node] + distance(node, n)
			best, seen := m.minDist[n]
			if !seen || candidate < best {
				m.minDist[n] = candidate
				m.cameFrom[n] = node
				h.Push(float32(candidate), n)
			}
		}
	}

	return m
}

// PathTo reconstructs the shortest path from the mesh's source to target by
// walking predecessors backward. Returns (nil, false) if target is
// unreachable. Returns ([source], true) when target equals source.
func (m *Mesh[Node]) PathTo(target Node) ([]Node, bool) {
	if target == m.source {
		return []Node{m.source}, true
	}

	if _, ok := m.minDist[target]; !ok {
		return nil, false
	}

	path := []Node{target}
	cur := target
	for cur != m.source {
		prev, ok := m.cameFrom[cur]
		if !ok {
			return nil, false
		}
		path = append(path, prev)
		cur = prev
	}

	// Reverse into source-to-target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// DistanceTo returns the shortest-path distance from the mesh's source to
// target, and whether target is reachable.
func (m *Mesh[Node]) DistanceTo(target Node) (float64, bool) {
	d, ok := m.minDist[target]
	return d, ok
}
