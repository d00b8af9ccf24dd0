package board

import (
	"strconv"

	"github.com/foldedgrid/flooditsolver/internal/cache"
)

// CacheRecorder observes Memo's cache hit/miss outcomes, keyed by cache
// name. Implementations must tolerate a nil receiver the way
// internal/metrics.SearchMetrics does, since callers thread a possibly-nil
// *SearchMetrics through unconditionally.
type CacheRecorder interface {
	RecordCacheAccess(cache string, hit bool)
}

// Memo bundles caches around expensive, pure board queries. It is owned by
// the caller (typically one per search) so cache state never leaks between
// unrelated searches.
type Memo struct {
	hash            *cache.Single[string, string]
	colors          *cache.Single[string, []byte]
	perimeterBlocks *cache.Single[string, []int]
	perimeter       *cache.Single[string, int]
	perimeterColors *cache.Single[string, []byte]
	blobSize        *cache.LRU[string, int]
	rec             CacheRecorder
}

// blobSizeCacheCapacity bounds the BlobSize memo at 100 entries.
const blobSizeCacheCapacity = 100

// NewMemo creates an empty set of board-query caches with no cache-access
// recording.
func NewMemo() *Memo {
	return NewMemoWithRecorder(nil)
}

// NewMemoWithRecorder creates an empty set of board-query caches that report
// every hit and miss to rec. rec may be nil.
func NewMemoWithRecorder(rec CacheRecorder) *Memo {
	return &Memo{
		hash:            cache.NewSingle[string, string](),
		colors:          cache.NewSingle[string, []byte](),
		perimeterBlocks: cache.NewSingle[string, []int](),
		perimeter:       cache.NewSingle[string, int](),
		perimeterColors: cache.NewSingle[string, []byte](),
		blobSize:        cache.NewLRU[string, int](blobSizeCacheCapacity),
		rec:             rec,
	}
}

func (m *Memo) record(cache string, hit bool) {
	if m.rec == nil {
		return
	}
	m.rec.RecordCacheAccess(cache, hit)
}

// Hash is a memoized Hash, eliding repeated hashing of the same board.
func (m *Memo) Hash(b Board) string {
	if v, ok := m.hash.Get(Hash(b)); ok {
		m.record("hash", true)
		return v
	}
	m.record("hash", false)
	v := Hash(b)
	m.hash.Set(v, v)
	return v
}

// Colors is a memoized Colors.
func (m *Memo) Colors(b Board) []byte {
	key := Hash(b)
	if v, ok := m.colors.Get(key); ok {
		m.record("colors", true)
		return v
	}
	m.record("colors", false)
	v := Colors(b)
	m.colors.Set(key, v)
	return v
}

// PerimeterBlocks is a memoized PerimeterBlocks, keyed by both the board and
// p (callers pass positions other than 0, e.g. when walking the blob graph).
func (m *Memo) PerimeterBlocks(b Board, p int) []int {
	key := memoKeyWithPos(b, p)
	if v, ok := m.perimeterBlocks.Get(key); ok {
		m.record("perimeter_blocks", true)
		return v
	}
	m.record("perimeter_blocks", false)
	v := PerimeterBlocks(b, p)
	m.perimeterBlocks.Set(key, v)
	return v
}

// Perimeter is a memoized Perimeter.
func (m *Memo) Perimeter(b Board, p int) int {
	key := memoKeyWithPos(b, p)
	if v, ok := m.perimeter.Get(key); ok {
		m.record("perimeter", true)
		return v
	}
	m.record("perimeter", false)
	v := Perimeter(b, p)
	m.perimeter.Set(key, v)
	return v
}

// PerimeterColors is a memoized PerimeterColors.
func (m *Memo) PerimeterColors(b Board, p int) []byte {
	key := memoKeyWithPos(b, p)
	if v, ok := m.perimeterColors.Get(key); ok {
		m.record("perimeter_colors", true)
		return v
	}
	m.record("perimeter_colors", false)
	v := PerimeterColors(b, p)
	m.perimeterColors.Set(key, v)
	return v
}

// BlobSize is a 100-entry-LRU-memoized BlobSize, keyed by Hash(b)
// concatenated with the position. This hashes the board on every call even
// on a cache hit; a production variant would hash once and reuse the
// digest as part of a composite key.
func (m *Memo) BlobSize(b Board, p int) int {
	key := memoKeyWithPos(b, p)
	if v, ok := m.blobSize.Get(key); ok {
		m.record("blob_size", true)
		return v
	}
	m.record("blob_size", false)
	v := BlobSize(b, p)
	m.blobSize.Put(key, v)
	return v
}

// IsWhole is a memoized IsWhole, sharing this Memo's BlobSize cache for its
// flood fill.
func (m *Memo) IsWhole(b Board, p int) bool {
	color := b[p]
	blobSize := m.BlobSize(b, p)

	count := 0
	for _, c := range b {
		if c == color {
			count++
			if count > blobSize {
				return false
			}
		}
	}
	return count == blobSize
}

// NeighborBoards is NeighborBoards backed by this Memo's PerimeterColors and
// BlobSize caches, so a query repeated on the board PerimeterColors saw last,
// or on a board/position pair still in the BlobSize LRU, skips the re-flood.
func (m *Memo) NeighborBoards(b Board) []Board {
	colors := m.PerimeterColors(b, 0)
	candidates := make([]Board, 0, len(colors))

	for _, c := range colors {
		next := PlayColor(b, c)
		if m.IsWhole(next, 0) {
			return []Board{next}
		}
		candidates = append(candidates, next)
	}

	return candidates
}

func memoKeyWithPos(b Board, p int) string {
	return Hash(b) + "#" + strconv.Itoa(p)
}
