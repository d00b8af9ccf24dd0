package search

import (
	"context"
	"testing"
	"time"

	"github.com/foldedgrid/flooditsolver/internal/errs"
	"github.com/stretchr/testify/require"
)

// gridNeighbors builds a small weighted grid for exercising the search:
//
//	0 - 1 - 2
//	|   |   |
//	3 - 4 - 5
//
// All edges cost 1, except 1-4 which costs 5, so the shortest path from 0
// to 5 goes 0,1,2,5 (cost 3) rather than 0,3,4,5 or through the expensive
// 1-4 edge.
type edge struct {
	to   int
	cost float64
}

func smallGrid() map[int][]edge {
	return map[int][]edge{
		0: {{1, 1}, {3, 1}},
		1: {{0, 1}, {2, 1}, {4, 5}},
		2: {{1, 1}, {5, 1}},
		3: {{0, 1}, {4, 1}},
		4: {{1, 5}, {3, 1}, {5, 1}},
		5: {{2, 1}, {4, 1}},
	}
}

func gridFuncs(g map[int][]edge) (func(int) []int, func(a, b int) float64) {
	neighbors := func(n int) []int {
		out := make([]int, 0, len(g[n]))
		for _, e := range g[n] {
			out = append(out, e.to)
		}
		return out
	}
	distance := func(a, b int) float64 {
		for _, e := range g[a] {
			if e.to == b {
				return e.cost
			}
		}
		panic("no edge")
	}
	return neighbors, distance
}

func manhattanOnGrid(goal int) func(int) float64 {
	coords := map[int][2]int{0: {0, 0}, 1: {1, 0}, 2: {2, 0}, 3: {0, 1}, 4: {1, 1}, 5: {2, 1}}
	gc := coords[goal]
	return func(n int) float64 {
		c := coords[n]
		dx, dy := c[0]-gc[0], c[1]-gc[1]
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		return float64(dx + dy)
	}
}

func TestRunFindsShortestPath(t *testing.T) {
	neighbors, distance := gridFuncs(smallGrid())
	path, err := Run(0, func(n int) bool { return n == 5 }, neighbors, distance, Options[int, int]{
		Heuristic: manhattanOnGrid(5),
		GetKey:    func(n int) int { return n },
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 5}, path)
}

func TestRunZeroHeuristicStillOptimal(t *testing.T) {
	neighbors, distance := gridFuncs(smallGrid())
	path, err := Run(0, func(n int) bool { return n == 5 }, neighbors, distance, Options[int, int]{
		GetKey: func(n int) int { return n },
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 5}, path)
}

func TestRunNoPathFound(t *testing.T) {
	neighbors := func(n int) []int { return nil }
	distance := func(a, b int) float64 { return 1 }

	_, err := Run(0, func(n int) bool { return n == 99 }, neighbors, distance, Options[int, int]{
		GetKey: func(n int) int { return n },
	})
	require.ErrorIs(t, err, errs.ErrNoPathFound)
}

func TestRunMaxFCostPrunesExpensivePaths(t *testing.T) {
	neighbors, distance := gridFuncs(smallGrid())
	ceiling := 2.0 // strictly less than the true optimal cost of 3
	_, err := Run(0, func(n int) bool { return n == 5 }, neighbors, distance, Options[int, int]{
		GetKey:   func(n int) int { return n },
		MaxFCost: &ceiling,
	})
	require.ErrorIs(t, err, errs.ErrNoPathFound)
}

func TestRunFastSolverShortCircuits(t *testing.T) {
	neighbors, distance := gridFuncs(smallGrid())

	fastSolverCalls := 0
	path, err := Run(0, func(n int) bool { return n == 5 }, neighbors, distance, Options[int, int]{
		Heuristic: manhattanOnGrid(5),
		GetKey:    func(n int) int { return n },
		FastSolver: func(n int) (FastSolverResult[int], bool) {
			fastSolverCalls++
			if n == 0 {
				return FastSolverResult[int]{Cost: 3, Path: []int{0, 1, 2, 5}}, true
			}
			return FastSolverResult[int]{}, false
		},
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 5}, path)
	require.Equal(t, 1, fastSolverCalls)
}

func TestRunOnHeapHooksCountFrontierTraffic(t *testing.T) {
	neighbors, distance := gridFuncs(smallGrid())

	var pushes, pops int
	_, err := Run(0, func(n int) bool { return n == 5 }, neighbors, distance, Options[int, int]{
		Heuristic:  manhattanOnGrid(5),
		GetKey:     func(n int) int { return n },
		OnHeapPush: func() { pushes++ },
		OnHeapPop:  func() { pops++ },
	})
	require.NoError(t, err)
	require.Positive(t, pushes)
	require.Positive(t, pops)
}

func TestAsyncDeliversSameResultAsRun(t *testing.T) {
	neighbors, distance := gridFuncs(smallGrid())

	h := Async(context.Background(), 0, func(n int) bool { return n == 5 }, neighbors, distance, Options[int, int]{
		Heuristic:      manhattanOnGrid(5),
		GetKey:         func(n int) int { return n },
		AsyncBlockSize: 1,
	})

	select {
	case res := <-h.Done():
		require.NoError(t, res.Err)
		require.Equal(t, []int{0, 1, 2, 5}, res.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("async search did not complete in time")
	}
}

func TestAsyncPauseResume(t *testing.T) {
	neighbors, distance := gridFuncs(smallGrid())

	h := Async(context.Background(), 0, func(n int) bool { return n == 5 }, neighbors, distance, Options[int, int]{
		Heuristic:      manhattanOnGrid(5),
		GetKey:         func(n int) int { return n },
		AsyncBlockSize: 1,
	})

	h.Pause()
	time.Sleep(20 * time.Millisecond)

	select {
	case <-h.Done():
		t.Fatal("paused search should not have completed")
	default:
	}

	h.Resume()

	select {
	case res := <-h.Done():
		require.NoError(t, res.Err)
		require.Equal(t, []int{0, 1, 2, 5}, res.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("resumed search did not complete in time")
	}
}

func TestAsyncCancelStopsDelivery(t *testing.T) {
	neighbors := func(n int) []int { return []int{n + 1} } // infinite chain, never ends
	distance := func(a, b int) float64 { return 1 }

	ctx, cancel := context.WithCancel(context.Background())
	h := Async(ctx, 0, func(n int) bool { return false }, neighbors, distance, Options[int, int]{
		GetKey:         func(n int) int { return n },
		AsyncBlockSize: 1,
	})

	cancel()

	select {
	case <-h.Done():
		t.Fatal("canceled search should not deliver a result")
	case <-time.After(100 * time.Millisecond):
	}
}
