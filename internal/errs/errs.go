// Package errs defines the sentinel errors surfaced by the solver engine.
package errs

import "errors"

// Sentinel errors. Callers should compare with errors.Is; call sites wrap
// these with context via github.com/pkg/errors.Wrap, which preserves the
// sentinel for errors.Is.
var (
	// ErrBoardTooSmall is returned by board.Random when size*size < colorCount.
	ErrBoardTooSmall = errors.New("floodit: board too small for requested color count")

	// ErrNoPathFound is returned by an A* search that exhausted its open set.
	ErrNoPathFound = errors.New("floodit: no path found")

	// ErrEmptyHeap is returned by popping an empty heap. Seeing this escape
	// a search indicates a bug in the caller's bookkeeping, not a data error.
	ErrEmptyHeap = errors.New("floodit: pop on empty heap")

	// ErrInvalidBoardString is returned by board.Parse when the digit count
	// left after stripping non-digits is not a perfect square.
	ErrInvalidBoardString = errors.New("floodit: board string is not a perfect square")
)
