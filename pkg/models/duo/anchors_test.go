package duo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCornerAnchorsFirstMove(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, []Cell{{4, 4}}, CornerAnchors(b, Blue))
	assert.Equal(t, []Cell{{9, 9}}, CornerAnchors(b, Orange))
}

func TestCornerAnchorsAfterFirstPlacement(t *testing.T) {
	b := NewBoard().Place(Shape{{4, 4}}, Blue)

	assert.Equal(t, []Cell{{3, 3}, {3, 5}, {5, 3}, {5, 5}}, CornerAnchors(b, Blue))
}

func TestCornerAnchorsExcludeEdgeTouch(t *testing.T) {
	b := NewBoard().
		Place(Shape{{4, 4}}, Blue).
		Place(Shape{{3, 5}}, Orange)

	// (3, 5) is now occupied; the other three corners remain.
	assert.Equal(t, []Cell{{3, 3}, {5, 3}, {5, 5}}, CornerAnchors(b, Blue))

	// A cell that is both corner- and edge-adjacent to blue is no anchor.
	b2 := NewBoard().Place(Shape{{4, 4}, {4, 5}}, Blue)
	for _, anchor := range CornerAnchors(b2, Blue) {
		for _, n := range anchor.OrthogonalNeighbors() {
			assert.NotEqual(t, Blue, b2.Owner(n), "anchor %v touches blue edge-on", anchor)
		}
	}
}

func TestSecondPlayerFirstMoveStillGated(t *testing.T) {
	b := NewBoard().Place(Shape{{4, 4}}, Blue)

	// Orange has no pieces yet, so the first-move rule applies, not the
	// corner rule; (4, 5) is not orange's start cell.
	assert.False(t, IsValidPlacement(b, Shape{{4, 5}}, Orange))
	assert.True(t, IsValidPlacement(b, Shape{{9, 9}}, Orange))
}

func TestPlacementsAtAnchorFirstMove(t *testing.T) {
	b := NewBoard()

	// The 2x2 square has one orientation and four cells to pin; all four
	// land legally over the start.
	placements := PlacementsAtAnchor(b, 5, NewCell(4, 4), Blue)
	require.Len(t, placements, 4)
	for _, placement := range placements {
		assert.Equal(t, 0, placement.OrientationIndex)
		assert.True(t, placement.Cells.Contains(NewCell(4, 4)))
		assert.True(t, IsValidPlacement(b, placement.Cells, Blue))
	}

	// The domino: two orientations, two pins each.
	assert.Len(t, PlacementsAtAnchor(b, 1, NewCell(4, 4), Blue), 4)
}

func TestAllValidPlacementsDeduplicates(t *testing.T) {
	b := NewBoard().Place(Shape{{4, 4}, {4, 8}}, Blue)

	// An I3 along row 3 from (3, 5) to (3, 7) covers an anchor of each blue
	// cell, so the raw per-anchor enumeration counts it twice.
	raw := 0
	for _, anchor := range CornerAnchors(b, Blue) {
		raw += len(PlacementsAtAnchor(b, 2, anchor, Blue))
	}

	deduplicated := AllValidPlacements(b, 2, Blue)
	assert.Less(t, len(deduplicated), raw)

	seen := make(map[string]struct{})
	for _, placement := range deduplicated {
		key := placement.Cells.Key()
		_, duplicate := seen[key]
		assert.False(t, duplicate, "duplicate placement %s", key)
		seen[key] = struct{}{}

		assert.True(t, IsValidPlacement(b, placement.Cells, Blue))
	}
}

func TestCanPlacePieceCornerPockets(t *testing.T) {
	// Fill everything except the four corners; blue holds the cells
	// diagonally inside each corner, orange everything else.
	var b Board
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			b[i][j] = Orange
		}
	}
	for _, corner := range []Cell{{0, 0}, {0, 13}, {13, 0}, {13, 13}} {
		b[corner.R][corner.C] = Nobody
	}
	for _, inner := range []Cell{{1, 1}, {1, 12}, {12, 1}, {12, 12}} {
		b[inner.R][inner.C] = Blue
	}

	assert.True(t, CanPlacePiece(b, 0, Blue), "monomino should fit a corner pocket")
	assert.False(t, CanPlacePiece(b, 1, Blue), "domino cannot fit a one-cell pocket")

	assert.Equal(t, []Cell{{0, 0}, {0, 13}, {13, 0}, {13, 13}}, CornerAnchors(b, Blue))
}

func TestHasValidMoves(t *testing.T) {
	b := NewBoard()
	assert.True(t, HasValidMoves(b, []int{0}, Blue))
	assert.False(t, HasValidMoves(b, nil, Blue))

	full := b.Place(Shape{{4, 4}}, Orange)
	// Blue's start is taken before blue ever moved; no first move exists.
	assert.False(t, HasValidMoves(full, []int{0, 1, 2}, Blue))
}

func TestAnchorsForPiece(t *testing.T) {
	b := NewBoard().Place(Shape{{4, 4}}, Blue)

	all := CornerAnchors(b, Blue)
	narrowed := AnchorsForPiece(b, 10, Blue)

	assert.Subset(t, all, narrowed)
	assert.NotEmpty(t, narrowed)
}
