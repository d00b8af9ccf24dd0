package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlobifiedBoardAssignsOnePerBlob(t *testing.T) {
	b, err := Parse("0011\n0011\n2233\n2233")
	require.NoError(t, err)

	labels := BlobifiedBoard(b)
	require.Equal(t, labels[0], labels[Position(4, 1, 1)])
	require.NotEqual(t, labels[0], labels[Position(4, 2, 0)])
	require.Equal(t, 4, NetBlobCount(b))
}

func TestBlobCountsPerColor(t *testing.T) {
	// Color 0 appears as two separate blobs; color 1 as one.
	b, err := Parse("0110\n0110\n1111\n1111")
	require.NoError(t, err)

	counts := BlobCounts(b)
	require.Equal(t, 2, counts[0])
	require.Equal(t, 1, counts[1])
}

func TestIsWholeDetectsFullAbsorption(t *testing.T) {
	whole, err := Parse("0011\n0011\n2233\n2233")
	require.NoError(t, err)
	require.True(t, IsWhole(whole, 0))

	split, err := Parse("0101\n1111\n1111\n1111")
	require.NoError(t, err)
	require.False(t, IsWhole(split, 0))
}

func TestPerimeterBlobsDistinctIdentifiers(t *testing.T) {
	b, err := Parse("212221\n222321\n002220\n000111\n111111\n222222")
	require.NoError(t, err)

	ids := PerimeterBlobs(b, 0)
	seen := map[uint16]bool{}
	for _, id := range ids {
		require.False(t, seen[id], "duplicate blob id %d", id)
		seen[id] = true
	}
	require.NotEmpty(t, ids)
}

func TestColorsSegmented(t *testing.T) {
	b, err := Parse("0110\n1001\n1001\n0110")
	require.NoError(t, err)

	require.True(t, ColorsSegmented(b, []byte{0}))
}
