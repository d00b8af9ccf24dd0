package floodit

import (
	"github.com/foldedgrid/flooditsolver/internal/board"
	"github.com/foldedgrid/flooditsolver/internal/navmesh"
)

// AdmissibleHeuristic composes three hard-corner navigation meshes over the
// starting board's blob graph with a distinct-color lower bound. It never
// overestimates the true remaining move count.
type AdmissibleHeuristic struct {
	meshes *cornerMeshes
	memo   *board.Memo
}

// NewAdmissibleHeuristic builds the three hard-corner meshes against start.
// The returned heuristic may then be evaluated against start itself or any
// board reachable from it by repeated PlayColor. memo caches the board
// queries Evaluate repeats across every node a search visits. rec, if
// non-nil, observes how long each corner mesh took to build.
func NewAdmissibleHeuristic(start board.Board, memo *board.Memo, rec navmesh.Recorder) *AdmissibleHeuristic {
	return &AdmissibleHeuristic{meshes: buildCornerMeshes(start, memo, rec), memo: memo}
}

// Evaluate returns the admissible remaining-move estimate for current.
func (h *AdmissibleHeuristic) Evaluate(current board.Board) float64 {
	colors := h.memo.Colors(current)
	whole := h.memo.IsWhole(current, 0)

	baseline := float64(len(colors))
	if whole {
		baseline--
	}

	testFrom := canonicalPerimeterBlobs(h.memo, current, 0)
	if len(testFrom) == 0 {
		return 0 // board is filled: no perimeter left to traverse
	}

	inTopLeft := make(map[int]bool, len(board.BlobPositions(current, 0)))
	for _, p := range board.BlobPositions(current, 0) {
		inTopLeft[p] = true
	}

	var longest float64
	for _, corner := range h.meshes.corners {
		if inTopLeft[corner] {
			continue // already absorbed into the top-left blob
		}

		mesh, ok := h.meshes.targets[corner]
		if !ok {
			continue
		}

		best, found := bestPathCost(h.memo, mesh, testFrom, current, whole)
		if !found {
			continue // unreachable from every testFrom node; skip this corner
		}
		if best > longest {
			longest = best
		}
	}

	if baseline > longest {
		return baseline
	}
	return longest
}

func bestPathCost(memo *board.Memo, mesh *navmesh.Mesh[int], testFrom []int, current board.Board, topLeftWhole bool) (float64, bool) {
	best := 0.0
	found := false
	for _, f := range testFrom {
		path, ok := mesh.PathTo(f)
		if !ok {
			continue
		}
		cost := float64(len(path)) + 1 + unhandledColors(memo, current, path, topLeftWhole)
		if !found || cost < best {
			best = cost
			found = true
		}
	}
	return best, found
}

// unhandledColors counts the colors present on current that appear neither
// among the colors of the blobs visited by path nor, if the top-left blob is
// whole, as current[0].
func unhandledColors(memo *board.Memo, current board.Board, path []int, topLeftWhole bool) float64 {
	handled := make(map[byte]bool, len(path)+1)
	for _, pos := range path {
		handled[current[pos]] = true
	}
	if topLeftWhole {
		handled[current[0]] = true
	}

	count := 0
	for _, c := range memo.Colors(current) {
		if !handled[c] {
			count++
		}
	}
	return float64(count)
}

// WeightedHeuristic is the default, non-admissible heuristic: it scales the
// admissible estimate up and tie-breaks toward boards whose top-left blob
// has absorbed more cells, trading optimality guarantees for materially
// faster, near-optimal solutions.
type WeightedHeuristic struct {
	admissible *AdmissibleHeuristic
	memo       *board.Memo
	length     int
}

// NewWeightedHeuristic builds the underlying admissible heuristic against
// start, sharing memo and rec with it.
func NewWeightedHeuristic(start board.Board, memo *board.Memo, rec navmesh.Recorder) *WeightedHeuristic {
	return &WeightedHeuristic{admissible: NewAdmissibleHeuristic(start, memo, rec), memo: memo, length: len(start)}
}

// Evaluate returns the weighted estimate for current.
func (h *WeightedHeuristic) Evaluate(current board.Board) float64 {
	return 10*h.admissible.Evaluate(current) + 0.01*float64(h.length-h.memo.BlobSize(current, 0))
}

// AlternateHeuristic is a simpler variant: rather than the color-aware
// composition above, it takes the largest of the three corner-mesh
// distances, scaled by multiplier. It is not the default heuristic (see
// DESIGN.md); it is retained as an optional alternate.
type AlternateHeuristic struct {
	meshes     *cornerMeshes
	memo       *board.Memo
	multiplier float64
}

// NewAlternateHeuristic builds the three hard-corner meshes against start.
// multiplier defaults to 0.5 when zero.
func NewAlternateHeuristic(start board.Board, memo *board.Memo, rec navmesh.Recorder, multiplier float64) *AlternateHeuristic {
	if multiplier == 0 {
		multiplier = 0.5
	}
	return &AlternateHeuristic{meshes: buildCornerMeshes(start, memo, rec), memo: memo, multiplier: multiplier}
}

// Evaluate returns multiplier times the farthest of the three corner-mesh
// distances from current's top-left-blob perimeter.
func (h *AlternateHeuristic) Evaluate(current board.Board) float64 {
	testFrom := canonicalPerimeterBlobs(h.memo, current, 0)
	if len(testFrom) == 0 {
		return 0
	}

	inTopLeft := make(map[int]bool, len(board.BlobPositions(current, 0)))
	for _, p := range board.BlobPositions(current, 0) {
		inTopLeft[p] = true
	}

	var longest float64
	for _, corner := range h.meshes.corners {
		if inTopLeft[corner] {
			continue
		}
		mesh, ok := h.meshes.targets[corner]
		if !ok {
			continue
		}
		for _, f := range testFrom {
			if d, ok := mesh.DistanceTo(f); ok && d > longest {
				longest = d
			}
		}
	}

	return h.multiplier * longest
}
