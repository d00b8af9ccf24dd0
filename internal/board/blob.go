package board

// PerimeterBlocks returns the deduplicated positions adjacent to the blob at
// p that are NOT part of that blob (i.e. do not carry b[p]'s color).
func PerimeterBlocks(b Board, p int) []int {
	blob := BlobPositions(b, p)
	inBlob := make(map[int]bool, len(blob))
	for _, q := range blob {
		inBlob[q] = true
	}

	seen := make(map[int]bool, 16)
	perimeter := make([]int, 0, 16)
	for _, q := range blob {
		for _, adj := range AdjacentPositions(b, q) {
			if inBlob[adj] || seen[adj] {
				continue
			}
			seen[adj] = true
			perimeter = append(perimeter, adj)
		}
	}
	return perimeter
}

// Perimeter returns the number of distinct perimeter blocks of the blob at
// p.
func Perimeter(b Board, p int) int {
	return len(PerimeterBlocks(b, p))
}

// PerimeterColors returns the distinct colors present among the perimeter
// blocks of the blob at p, in first-encountered order.
func PerimeterColors(b Board, p int) []byte {
	blocks := PerimeterBlocks(b, p)
	seen := make(map[byte]bool, 8)
	colors := make([]byte, 0, 8)
	for _, q := range blocks {
		c := b[q]
		if !seen[c] {
			seen[c] = true
			colors = append(colors, c)
		}
	}
	return colors
}

// PerimeterBlobs returns the distinct blob identifiers (from the blobified
// board) present among the perimeter blocks of the blob at p.
func PerimeterBlobs(b Board, p int) []uint16 {
	blobs := BlobifiedBoard(b)
	blocks := PerimeterBlocks(b, p)

	seen := make(map[uint16]bool, 8)
	ids := make([]uint16, 0, 8)
	for _, q := range blocks {
		id := blobs[q]
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// IsWhole reports whether no cell outside the blob at p carries b[p]'s
// color, i.e. that color has been fully absorbed into a single blob.
func IsWhole(b Board, p int) bool {
	color := b[p]
	blobSize := BlobSize(b, p)

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

// BlobifiedBoard labels every cell with its 1-based blob identifier,
// assigned in scanning order: positions 0..len(b)-1 are swept, and whenever
// an unlabeled position is reached its entire blob is flooded with the next
// unused identifier.
func BlobifiedBoard(b Board) []uint16 {
	labels := make([]uint16, len(b))
	var next uint16 = 1

	for p := range b {
		if labels[p] != 0 {
			continue
		}
		for _, q := range BlobPositions(b, p) {
			labels[q] = next
		}
		next++
	}

	return labels
}

// BlobCounts maps each color present on the board to the number of
// distinct blobs of that color.
func BlobCounts(b Board) map[byte]int {
	labels := BlobifiedBoard(b)

	blobsByColor := make(map[byte]map[uint16]bool, 16)
	for p, c := range b {
		set, ok := blobsByColor[c]
		if !ok {
			set = make(map[uint16]bool, 4)
			blobsByColor[c] = set
		}
		set[labels[p]] = true
	}

	counts := make(map[byte]int, len(blobsByColor))
	for c, set := range blobsByColor {
		counts[c] = len(set)
	}
	return counts
}

// NetBlobCount returns the total number of distinct blobs on the board.
func NetBlobCount(b Board) int {
	labels := BlobifiedBoard(b)
	var maxLabel uint16
	for _, l := range labels {
		if l > maxLabel {
			maxLabel = l
		}
	}
	return int(maxLabel)
}

// ColorsSegmented reports whether every color in colors is split across two
// or more distinct blobs.
func ColorsSegmented(b Board, colors []byte) bool {
	counts := BlobCounts(b)
	for _, c := range colors {
		if counts[c] < 2 {
			return false
		}
	}
	return true
}

// AllSegmented reports whether every color currently present on the board
// is segmented (split across two or more blobs).
func AllSegmented(b Board) bool {
	return ColorsSegmented(b, Colors(b))
}
