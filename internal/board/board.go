// Package board implements the Flood-It board model: a packed byte grid and
// the pure queries over it (flood fill, neighbor-board enumeration, blob
// counting/segmentation, perimeter analysis, distances).
//
// Every operation here is a pure function of its arguments. Board is a value
// type: PlayColor and NeighborBoards always return a new Board, never
// mutating the receiver.
package board

import (
	"math"
	"math/rand"
	"strings"

	"github.com/foldedgrid/flooditsolver/internal/errs"
	"github.com/pkg/errors"
)

// Board is a packed N*N grid of color labels, stored row-major: position p
// encodes (x = p % N, y = p / N).
type Board []byte

// Size returns N, recovered as the integer square root of the board length.
func Size(b Board) int {
	return int(math.Sqrt(float64(len(b))))
}

// Position encodes (x, y) into a flat index for a board of the given size.
func Position(size, x, y int) int {
	return x + y*size
}

// Hash returns a deterministic, collision-free fingerprint of b: character i
// of the returned string has code-unit value b[i]. Go strings are already
// byte sequences, so this bijection is just a type conversion.
func Hash(b Board) string {
	return string(b)
}

// String renders b as N lines of N decimal digit characters separated by
// '\n', with no trailing newline. Colors must be in 0..9 to round-trip
// through Parse.
func String(b Board) string {
	size := Size(b)
	var sb strings.Builder
	sb.Grow(len(b) + size)
	for y := 0; y < size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < size; x++ {
			sb.WriteByte('0' + b[Position(size, x, y)])
		}
	}
	return sb.String()
}

// Parse strips every non-digit character from s and interprets each
// remaining character as a single-digit color. Returns ErrInvalidBoardString
// if the resulting digit count is not a perfect square.
func Parse(s string) (Board, error) {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits = append(digits, c-'0')
		}
	}

	n := len(digits)
	size := int(math.Sqrt(float64(n)))
	if size*size != n {
		return nil, errors.Wrapf(errs.ErrInvalidBoardString, "board.Parse: %d digits is not a perfect square", n)
	}

	return Board(digits), nil
}

// Colors returns the distinct colors present in b, in first-seen scan order.
func Colors(b Board) []byte {
	seen := make(map[byte]bool, 16)
	colors := make([]byte, 0, 16)
	for _, c := range b {
		if !seen[c] {
			seen[c] = true
			colors = append(colors, c)
		}
	}
	return colors
}

// RandomOptions configures Random.
type RandomOptions struct {
	// Size is the board edge length N. Defaults to 14 if zero.
	Size int
	// ColorCount is the number of distinct colors to guarantee. Defaults to
	// 6 if zero.
	ColorCount int
	// Rand, if non-nil, is used instead of a freshly seeded source. Tests
	// pass a seeded *rand.Rand for determinism.
	Rand *rand.Rand
}

// Random builds a board of opts.Size x opts.Size cells with opts.ColorCount
// distinct colors, guaranteeing at least one cell of every color. Returns
// ErrBoardTooSmall if size*size < colorCount.
//
// The tail of the board (positions colorCount..size*size-1) is filled via an
// INCLUSIVE random draw in [0, colorCount]: this occasionally produces one
// color value beyond the requested range. This is a documented quirk, not a
// bug.
func Random(opts RandomOptions) (Board, error) {
	size := opts.Size
	if size == 0 {
		size = 14
	}
	colorCount := opts.ColorCount
	if colorCount == 0 {
		colorCount = 6
	}

	length := size * size
	if length < colorCount {
		return nil, errors.Wrapf(errs.ErrBoardTooSmall, "board.Random: size=%d colorCount=%d", size, colorCount)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	b := make(Board, length)
	for i := 0; i < colorCount; i++ {
		b[i] = byte(i)
	}
	for i := colorCount; i < length; i++ {
		b[i] = byte(rng.Intn(colorCount + 1)) // inclusive upper bound, preserved quirk
	}

	rng.Shuffle(length, func(i, j int) { b[i], b[j] = b[j], b[i] })

	return b, nil
}

// AdjacentPositions returns the up-to-four orthogonal neighbors of p (left,
// right, up, down), omitting any that would fall off the board's edges.
func AdjacentPositions(b Board, p int) []int {
	size := Size(b)
	x, y := p%size, p/size

	adj := make([]int, 0, 4)
	if x > 0 {
		adj = append(adj, p-1)
	}
	if x < size-1 {
		adj = append(adj, p+1)
	}
	if y > 0 {
		adj = append(adj, p-size)
	}
	if y < size-1 {
		adj = append(adj, p+size)
	}
	return adj
}

// BlobPositions returns every position 4-connected to p that shares b[p]'s
// color, via an iterative flood fill (explicit stack, no recursion).
func BlobPositions(b Board, p int) []int {
	color := b[p]
	visited := make(map[int]bool, 64)
	visited[p] = true

	stack := []int{p}
	positions := []int{p}

	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		for _, adj := range AdjacentPositions(b, cur) {
			if visited[adj] || b[adj] != color {
				continue
			}
			visited[adj] = true
			positions = append(positions, adj)
			stack = append(stack, adj)
		}
	}

	return positions
}

// BlobSize returns the number of cells in the blob at p.
func BlobSize(b Board, p int) int {
	return len(BlobPositions(b, p))
}

// PlayColor floods the blob at position 0 with color c, returning a new
// board. If b[0] already equals c, b is returned unchanged (no clone, no
// mutation either way; b is never written to).
func PlayColor(b Board, c byte) Board {
	if b[0] == c {
		return b
	}

	out := make(Board, len(b))
	copy(out, b)
	for _, p := range BlobPositions(b, 0) {
		out[p] = c
	}
	return out
}

// NeighborBoards enumerates, for each distinct perimeter color of the blob
// at position 0, the board produced by playing that color. If any candidate
// makes the top-left blob whole (a color fully absorbed), only that single
// candidate is returned.
func NeighborBoards(b Board) []Board {
	colors := PerimeterColors(b, 0)
	candidates := make([]Board, 0, len(colors))

	for _, c := range colors {
		next := PlayColor(b, c)
		if IsWhole(next, 0) {
			return []Board{next}
		}
		candidates = append(candidates, next)
	}

	return candidates
}

// Distance returns the Manhattan distance between positions a and q.
func Distance(b Board, a, q int) int {
	size := Size(b)
	ax, ay := a%size, a/size
	qx, qy := q%size, q/size
	return absInt(ax-qx) + absInt(ay-qy)
}

// BlobDistance returns the minimum Manhattan distance between any cell of
// the blob at a and any cell of the blob at q, or 0 if a and q share a blob.
func BlobDistance(b Board, a, q int) int {
	blobA := BlobPositions(b, a)

	inBlobA := make(map[int]bool, len(blobA))
	for _, p := range blobA {
		inBlobA[p] = true
	}
	if inBlobA[q] {
		return 0
	}

	blobQ := BlobPositions(b, q)

	best := math.MaxInt32
	for _, pa := range blobA {
		for _, pq := range blobQ {
			if d := Distance(b, pa, pq); d < best {
				best = d
			}
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
