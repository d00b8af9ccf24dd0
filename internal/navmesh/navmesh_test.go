package navmesh

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	calls int
}

func (f *fakeRecorder) RecordMeshBuild(time.Duration) {
	f.calls++
}

// Graph:
//
//	0 --1--> 1 --1--> 3
//	0 --4--> 2 --1--> 3
//
// Shortest path 0->3 should go via 1 (cost 2), not via 2 (cost 5).
func graph() (func(int) []int, func(a, b int) float64) {
	edges := map[int][]struct {
		to   int
		cost float64
	}{
		0: {{1, 1}, {2, 4}},
		1: {{3, 1}},
		2: {{3, 1}},
	}

	neighbors := func(n int) []int {
		out := make([]int, 0, len(edges[n]))
		for _, e := range edges[n] {
			out = append(out, e.to)
		}
		return out
	}
	distance := func(a, b int) float64 {
		for _, e := range edges[a] {
			if e.to == b {
				return e.cost
			}
		}
		panic("no such edge")
	}
	return neighbors, distance
}

func TestPathToSourceIsSingleton(t *testing.T) {
	neighbors, distance := graph()
	m := Build(0, neighbors, distance, nil)

	path, ok := m.PathTo(0)
	require.True(t, ok)
	require.Equal(t, []int{0}, path)
}

func TestPathToPrefersShortestRoute(t *testing.T) {
	neighbors, distance := graph()
	m := Build(0, neighbors, distance, nil)

	path, ok := m.PathTo(3)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 3}, path)

	d, ok := m.DistanceTo(3)
	require.True(t, ok)
	require.Equal(t, 2.0, d)
}

func TestPathToUnreachableTarget(t *testing.T) {
	neighbors, distance := graph()
	m := Build(0, neighbors, distance, nil)

	_, ok := m.PathTo(99)
	require.False(t, ok)
}

func TestBuildReportsOneCallToRecorder(t *testing.T) {
	neighbors, distance := graph()
	rec := &fakeRecorder{}
	Build(0, neighbors, distance, rec)

	require.Equal(t, 1, rec.calls)
}
