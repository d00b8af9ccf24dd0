package floodit

import (
	"context"
	"time"

	"github.com/foldedgrid/flooditsolver/internal/board"
	"github.com/foldedgrid/flooditsolver/internal/metrics"
	"github.com/foldedgrid/flooditsolver/internal/search"
	"github.com/foldedgrid/flooditsolver/internal/walker"
)

const (
	modeAdmissible = "admissible"
	modeWeighted   = "weighted"
)

// defaultBottomRightMultiplier scales the admissible heuristic when no
// caller-supplied multiplier is given.
const defaultBottomRightMultiplier = 0.5

func isUniform(memo *board.Memo) func(board.Board) bool {
	return func(b board.Board) bool {
		return len(memo.Colors(b)) == 1
	}
}

func boardDistance(a, b board.Board) float64 {
	return 1
}

// SolveOptions configures SolveBoard.
type SolveOptions struct {
	// Admissible selects the color-aware, optimality-guaranteeing heuristic
	// over the faster, non-admissible weighted heuristic. Defaults to false
	// (weighted).
	Admissible bool
	// MaxFCost, if non-nil, is forwarded to the underlying A* search as an
	// f-cost pruning ceiling.
	MaxFCost *float64
	// Metrics, if non-nil, records this call's search duration, node
	// expansions, heap push/pop traffic, board-query cache hit/miss counts
	// and mesh build times. A nil Metrics is a no-op (see
	// metrics.SearchMetrics's nil-receiver methods).
	Metrics *metrics.SearchMetrics
}

func (o SolveOptions) mode() string {
	if o.Admissible {
		return modeAdmissible
	}
	return modeWeighted
}

// SolveBoard searches for a shortest (admissible mode) or fast, near-optimal
// (weighted mode, the default) sequence of moves from start to a uniform
// board. Returns the sequence of boards start..terminal inclusive; the move
// played at each step is the successor's b[0].
//
// A single *board.Memo is shared by the heuristic and the neighbor function
// for the life of this call, so the expensive board queries A* repeats at
// every node (Colors, Hash, PerimeterBlocks/Perimeter/PerimeterColors,
// BlobSize) are not recomputed when the same board is queried again right
// away. Each of those caches keeps only the last board, except BlobSize,
// which keeps the last 100 board/position pairs.
func SolveBoard(start board.Board, opts SolveOptions) ([]board.Board, error) {
	started := time.Now()

	memo := board.NewMemoWithRecorder(opts.Metrics)
	heuristic := opts.instrumentedHeuristic(start, memo)

	path, err := search.Run(start, isUniform(memo), memo.NeighborBoards, boardDistance, search.Options[board.Board, string]{
		Heuristic:  heuristic,
		GetKey:     memo.Hash,
		MaxFCost:   opts.MaxFCost,
		OnHeapPush: opts.onHeapPush(),
		OnHeapPop:  opts.onHeapPop(),
	})

	opts.Metrics.RecordSearch(opts.mode(), time.Since(started))
	return path, err
}

// instrumentedHeuristic builds the heuristic opts selects, backed by memo,
// and, if a Metrics recorder is set, counts every evaluation as one node
// expansion.
func (o SolveOptions) instrumentedHeuristic(start board.Board, memo *board.Memo) func(board.Board) float64 {
	var heuristic func(board.Board) float64
	if o.Admissible {
		heuristic = NewAdmissibleHeuristic(start, memo, o.Metrics).Evaluate
	} else {
		heuristic = NewWeightedHeuristic(start, memo, o.Metrics).Evaluate
	}

	if o.Metrics == nil {
		return heuristic
	}

	mode := o.mode()
	return func(b board.Board) float64 {
		o.Metrics.RecordNodeExpanded(mode)
		return heuristic(b)
	}
}

// onHeapPush and onHeapPop build the hooks threaded into search.Options, so
// every A* frontier push/pop is counted under this call's heuristic mode.
// Both return nil when no Metrics recorder is set.
func (o SolveOptions) onHeapPush() func() {
	if o.Metrics == nil {
		return nil
	}
	mode := o.mode()
	return func() { o.Metrics.RecordHeapPush(mode) }
}

func (o SolveOptions) onHeapPop() func() {
	if o.Metrics == nil {
		return nil
	}
	mode := o.mode()
	return func() { o.Metrics.RecordHeapPop(mode) }
}

// SolveBoardAsync is the cooperative counterpart to SolveBoard, yielding
// between bursts of the underlying A* search so a caller can pause, resume
// or cancel a long-running solve.
func SolveBoardAsync(start board.Board, opts SolveOptions, asyncBlockSize int) *search.Handle[board.Board, string] {
	memo := board.NewMemoWithRecorder(opts.Metrics)
	heuristic := opts.instrumentedHeuristic(start, memo)

	return search.Async(context.Background(), start, isUniform(memo), memo.NeighborBoards, boardDistance, search.Options[board.Board, string]{
		Heuristic:      heuristic,
		GetKey:         memo.Hash,
		MaxFCost:       opts.MaxFCost,
		AsyncBlockSize: asyncBlockSize,
		OnHeapPush:     opts.onHeapPush(),
		OnHeapPop:      opts.onHeapPop(),
	})
}

// SolveBoardGreedy walks the greedy best-neighbor path, scoring candidates
// by the admissible heuristic (preferring lower estimates). When lookAhead
// is greater than zero, each step instead minimizes over its neighbors'
// own best successor score (one-ply lookahead), trading some speed for a
// shorter path in practice.
func SolveBoardGreedy(start board.Board, lookAhead int) []board.Board {
	memo := board.NewMemo()
	h := NewAdmissibleHeuristic(start, memo, nil)
	w := walker.New[board.Board]()

	opts := walker.Options[board.Board]{
		Score:       h.Evaluate,
		PreferLower: true,
		GetKey:      func(b board.Board) any { return memo.Hash(b) },
	}

	if lookAhead > 0 {
		return w.WalkOnePlyLookahead(start, isUniform(memo), memo.NeighborBoards, opts)
	}
	return w.Walk(start, isUniform(memo), memo.NeighborBoards, opts)
}

// SolveBottomRight solves only far enough to bring the bottom-right corner
// into the top-left blob, used to bound the full solve. multiplier scales
// the admissible heuristic used to drive this partial search; zero selects
// defaultBottomRightMultiplier.
func SolveBottomRight(start board.Board, multiplier float64) ([]board.Board, error) {
	if multiplier == 0 {
		multiplier = defaultBottomRightMultiplier
	}

	size := board.Size(start)
	bottomRight := size*size - 1

	isEnd := func(b board.Board) bool {
		for _, p := range board.BlobPositions(b, 0) {
			if p == bottomRight {
				return true
			}
		}
		return false
	}

	memo := board.NewMemo()
	h := NewAdmissibleHeuristic(start, memo, nil)
	heuristic := func(b board.Board) float64 { return multiplier * h.Evaluate(b) }

	return search.Run(start, isEnd, memo.NeighborBoards, boardDistance, search.Options[board.Board, string]{
		Heuristic: heuristic,
		GetKey:    memo.Hash,
	})
}
