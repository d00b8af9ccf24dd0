// Package walker implements a generic greedy best-neighbor walk with an LRU
// memo over sub-walks, so it can double as a fast, reusable heuristic
// inside A*.
package walker

import "github.com/foldedgrid/flooditsolver/internal/cache"

// subWalkCacheCapacity bounds the sub-walk memo at 1000 entries.
const subWalkCacheCapacity = 1000

// Options configures a Walker.
type Options[Node any] struct {
	// Score ranks a candidate neighbor; the walk picks the neighbor with
	// the highest score (or lowest, if PreferLower is set). Defaults to a
	// constant 0 for every node.
	Score func(Node) float64
	// PreferLower reverses the comparison so the walk favors the
	// lowest-scoring neighbor.
	PreferLower bool
	// GetKey derives the memo key for a node; defaults to using the node
	// itself as the key (Node must then be comparable).
	GetKey func(Node) any
}

// Walker runs greedy best-neighbor walks and memoizes whole sub-walks keyed
// by GetKey(start), so overlapping calls (as happen when this is reused as
// an A* heuristic) reuse prior work instead of re-walking.
type Walker[Node any] struct {
	memo *cache.LRU[any, []Node]
}

// New creates a Walker with its own sub-walk memo.
func New[Node any]() *Walker[Node] {
	return &Walker[Node]{memo: cache.NewLRU[any, []Node](subWalkCacheCapacity)}
}

// Walk produces the sequence [start, next, next, ..., end] by repeatedly
// moving to the best-scoring neighbor (per opts.Score) until isEnd holds.
// Every non-terminal node is assumed to have at least one neighbor;
// violating that is a caller bug and the behavior is then undefined,
// manifesting here as an index panic.
func (w *Walker[Node]) Walk(start Node, isEnd func(Node) bool, neighbors func(Node) []Node, opts Options[Node]) []Node {
	score := opts.Score
	if score == nil {
		score = func(Node) float64 { return 0 }
	}
	getKey := opts.GetKey
	if getKey == nil {
		getKey = func(n Node) any { return n }
	}

	key := getKey(start)
	if cached, ok := w.memo.Get(key); ok {
		return cached
	}

	if isEnd(start) {
		result := []Node{start}
		w.memo.Put(key, result)
		return result
	}

	best := bestNeighbor(start, neighbors(start), score, opts.PreferLower)
	rest := w.Walk(best, isEnd, neighbors, opts)

	result := make([]Node, 0, len(rest)+1)
	result = append(result, start)
	result = append(result, rest...)

	w.memo.Put(key, result)
	return result
}

func bestNeighbor[Node any](current Node, candidates []Node, score func(Node) float64, preferLower bool) Node {
	best := candidates[0]
	bestScore := score(best)

	for _, c := range candidates[1:] {
		s := score(c)
		if (preferLower && s < bestScore) || (!preferLower && s > bestScore) {
			best = c
			bestScore = s
		}
	}
	return best
}

// WalkOnePlyLookahead is a variant of Walk that, at each step, picks the
// neighbor whose own best successor score is best (lowest when
// opts.PreferLower is set, otherwise highest: a one-ply search over neighbor
// scores), rather than scoring the immediate neighbor alone. It is used by
// floodit.SolveBoardGreedy's lookAhead option.
func (w *Walker[Node]) WalkOnePlyLookahead(start Node, isEnd func(Node) bool, neighbors func(Node) []Node, opts Options[Node]) []Node {
	score := opts.Score
	if score == nil {
		score = func(Node) float64 { return 0 }
	}
	getKey := opts.GetKey
	if getKey == nil {
		getKey = func(n Node) any { return n }
	}

	lookaheadScore := func(n Node) float64 {
		if isEnd(n) {
			return score(n)
		}
		children := neighbors(n)
		if len(children) == 0 {
			return score(n)
		}
		best := score(children[0])
		for _, c := range children[1:] {
			s := score(c)
			if (opts.PreferLower && s < best) || (!opts.PreferLower && s > best) {
				best = s
			}
		}
		return best
	}

	var walked []Node
	cur := start
	for {
		walked = append(walked, cur)
		if isEnd(cur) {
			return walked
		}
		cur = bestNeighbor(cur, neighbors(cur), lookaheadScore, opts.PreferLower)
	}
}
