// Package floodit composes the board model, navigation meshes, the greedy
// walker and the A* engine into the Flood-It solvers: admissible and
// weighted heuristics, and the solveBoard/solveBoardGreedy/solveBottomRight
// family of entry points.
package floodit

import (
	"sync"

	"github.com/foldedgrid/flooditsolver/internal/board"
	"github.com/foldedgrid/flooditsolver/internal/navmesh"
	"golang.org/x/sync/errgroup"
)

// constDistance is the edge cost between adjacent blobs in the blob-adjacency
// graph: every move absorbs one ply of the frontier, so every edge costs 1.
func constDistance(a, b int) float64 { return 1 }

// canonicalPosition returns the smallest position contained in the blob at
// p, a blob's canonical representative position. Using this instead of a
// scan-order blobified id as a navigation-mesh node key keeps node identity
// stable across board evolution: a blob not yet absorbed into the top-left
// blob occupies the exact same cells (and therefore has the same canonical
// position) on the current board as it did on the board the mesh was built
// from, whereas scan-order blob ids shift as earlier blobs merge away. See
// DESIGN.md's Open Question log.
func canonicalPosition(b board.Board, p int) int {
	positions := board.BlobPositions(b, p)
	min := positions[0]
	for _, q := range positions[1:] {
		if q < min {
			min = q
		}
	}
	return min
}

// canonicalPerimeterBlobs returns the distinct canonical positions of the
// blobs adjacent to (but outside) the blob at p. memo's PerimeterBlocks cache
// is shared across every call this search makes against the same board.
func canonicalPerimeterBlobs(memo *board.Memo, b board.Board, p int) []int {
	blocks := memo.PerimeterBlocks(b, p)
	seen := make(map[int]bool, len(blocks))
	out := make([]int, 0, len(blocks))
	for _, q := range blocks {
		c := canonicalPosition(b, q)
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// blobGraphNeighbors returns the blob-adjacency-graph neighbor function over
// b: a node is a blob's canonical position, and its neighbors are the
// canonical positions of the blobs along its perimeter.
func blobGraphNeighbors(memo *board.Memo, b board.Board) func(int) []int {
	return func(canon int) []int {
		return canonicalPerimeterBlobs(memo, b, canon)
	}
}

// cornerMeshes holds one navigation mesh per distinct hard corner, rooted at
// that corner's canonical blob position on the board the meshes were built
// from.
type cornerMeshes struct {
	targets map[int]*navmesh.Mesh[int]
	corners []int
}

// hardCorners returns the top-right, bottom-left and bottom-right positions
// of an N*N board, in that order.
func hardCorners(size int) [3]int {
	return [3]int{size - 1, size * (size - 1), size*size - 1}
}

// buildCornerMeshes builds the three hard-corner navigation meshes over
// start's blob-adjacency graph. The three meshes are independent Dijkstra
// passes over the same immutable graph, so they build concurrently via
// errgroup, the one place this engine parallelizes. Their neighbor lookups
// share memo, which is not safe for concurrent use, so those lookups are
// serialized by a mutex. rec, if non-nil, observes each mesh's build time.
func buildCornerMeshes(start board.Board, memo *board.Memo, rec navmesh.Recorder) *cornerMeshes {
	size := board.Size(start)
	corners := hardCorners(size)
	shared := blobGraphNeighbors(memo, start)
	var mu sync.Mutex
	neighbors := func(canon int) []int {
		mu.Lock()
		defer mu.Unlock()
		return shared(canon)
	}

	canon := make([]int, 0, 3)
	seen := make(map[int]bool, 3)
	for _, corner := range corners {
		c := canonicalPosition(start, corner)
		if seen[c] {
			continue // two hard corners share a blob on small/degenerate boards
		}
		seen[c] = true
		canon = append(canon, c)
	}

	meshes := make([]*navmesh.Mesh[int], len(canon))
	var g errgroup.Group
	for i, c := range canon {
		i, c := i, c
		g.Go(func() error {
			meshes[i] = navmesh.Build(c, neighbors, constDistance, rec)
			return nil
		})
	}
	_ = g.Wait() // mesh construction never errors; Wait only for the barrier

	targets := make(map[int]*navmesh.Mesh[int], len(canon))
	for i, c := range canon {
		targets[c] = meshes[i]
	}

	return &cornerMeshes{targets: targets, corners: canon}
}

// GetPositionMesh builds a navigation mesh over start's blob graph rooted at
// target's blob, exposing the same PathTo/DistanceTo closure the hard-corner
// meshes use internally. Retained as a public entry point for callers that
// need distances to an arbitrary blob rather than just the hard corners. rec
// may be nil.
func GetPositionMesh(start board.Board, target int, memo *board.Memo, rec navmesh.Recorder) *navmesh.Mesh[int] {
	neighbors := blobGraphNeighbors(memo, start)
	source := canonicalPosition(start, target)
	return navmesh.Build(source, neighbors, constDistance, rec)
}
