package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoHashMatchesUnmemoized(t *testing.T) {
	b := Board{0, 1, 2, 3}
	m := NewMemo()
	require.Equal(t, Hash(b), m.Hash(b))
	require.Equal(t, Hash(b), m.Hash(b)) // second call exercises the cache hit path
}

func TestMemoPerimeterMatchesUnmemoized(t *testing.T) {
	b, err := Parse("0011\n0011\n2233\n2233")
	require.NoError(t, err)
	m := NewMemo()

	require.Equal(t, Perimeter(b, 0), m.Perimeter(b, 0))
	require.Equal(t, PerimeterBlocks(b, 0), m.PerimeterBlocks(b, 0))
	require.Equal(t, PerimeterColors(b, 0), m.PerimeterColors(b, 0))
}

func TestMemoBlobSizeMatchesUnmemoized(t *testing.T) {
	b, err := Parse("0011\n0011\n2233\n2233")
	require.NoError(t, err)
	m := NewMemo()

	require.Equal(t, BlobSize(b, 0), m.BlobSize(b, 0))
	require.Equal(t, BlobSize(b, 0), m.BlobSize(b, 0))
}

func TestMemoColorsMatchesUnmemoized(t *testing.T) {
	b, err := Parse("012\n012\n012")
	require.NoError(t, err)
	m := NewMemo()
	require.Equal(t, Colors(b), m.Colors(b))
}

func TestMemoIsWholeMatchesUnmemoized(t *testing.T) {
	whole, err := Parse("0011\n0011\n2233\n2233")
	require.NoError(t, err)
	m := NewMemo()
	require.Equal(t, IsWhole(whole, 0), m.IsWhole(whole, 0))

	split, err := Parse("0101\n1111\n1111\n1111")
	require.NoError(t, err)
	require.Equal(t, IsWhole(split, 0), m.IsWhole(split, 0))
}

func TestMemoNeighborBoardsMatchesUnmemoized(t *testing.T) {
	b, err := Parse("0011\n0011\n2233\n2233")
	require.NoError(t, err)
	m := NewMemo()
	require.Equal(t, NeighborBoards(b), m.NeighborBoards(b))
}

type recordedAccess struct {
	cache string
	hit   bool
}

type fakeCacheRecorder struct {
	accesses []recordedAccess
}

func (f *fakeCacheRecorder) RecordCacheAccess(cache string, hit bool) {
	f.accesses = append(f.accesses, recordedAccess{cache: cache, hit: hit})
}

func TestMemoReportsCacheMissThenHit(t *testing.T) {
	b := Board{0, 1, 2, 3}
	rec := &fakeCacheRecorder{}
	m := NewMemoWithRecorder(rec)

	m.Hash(b)
	m.Hash(b)

	require.Len(t, rec.accesses, 2)
	require.Equal(t, recordedAccess{cache: "hash", hit: false}, rec.accesses[0])
	require.Equal(t, recordedAccess{cache: "hash", hit: true}, rec.accesses[1])
}
