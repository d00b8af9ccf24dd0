package walker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A simple line graph 0 -> 1 -> 2 -> ... -> n, where greedily preferring the
// highest neighbor always marches straight to the end.
func lineNeighbors(n int) func(int) []int {
	return func(cur int) []int {
		if cur >= n {
			return nil
		}
		return []int{cur + 1}
	}
}

func TestWalkReachesEnd(t *testing.T) {
	w := New[int]()
	path := w.Walk(0, func(n int) bool { return n == 5 }, lineNeighbors(5), Options[int]{})
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, path)
}

func TestWalkPrefersHigherScoreByDefault(t *testing.T) {
	w := New[int]()
	neighbors := func(cur int) []int {
		switch cur {
		case 0:
			return []int{1, 2}
		case 1, 2:
			return []int{3}
		}
		return nil
	}
	path := w.Walk(0, func(n int) bool { return n == 3 }, neighbors, Options[int]{
		Score: func(n int) float64 { return float64(n) },
	})
	require.Equal(t, []int{0, 2, 3}, path)
}

func TestWalkPreferLower(t *testing.T) {
	w := New[int]()
	neighbors := func(cur int) []int {
		switch cur {
		case 0:
			return []int{1, 2}
		case 1, 2:
			return []int{3}
		}
		return nil
	}
	path := w.Walk(0, func(n int) bool { return n == 3 }, neighbors, Options[int]{
		Score:       func(n int) float64 { return float64(n) },
		PreferLower: true,
	})
	require.Equal(t, []int{0, 1, 3}, path)
}

func TestWalkMemoizesRepeatedStarts(t *testing.T) {
	w := New[int]()
	calls := 0
	neighbors := func(cur int) []int {
		calls++
		if cur >= 3 {
			return nil
		}
		return []int{cur + 1}
	}

	first := w.Walk(0, func(n int) bool { return n == 3 }, neighbors, Options[int]{})
	callsAfterFirst := calls

	second := w.Walk(0, func(n int) bool { return n == 3 }, neighbors, Options[int]{})
	require.Equal(t, first, second)
	require.Equal(t, callsAfterFirst, calls, "second identical walk should hit the memo, not re-expand neighbors")
}
