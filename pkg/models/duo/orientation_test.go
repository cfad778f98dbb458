package duo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextValidOrientationFirstMove(t *testing.T) {
	b := NewBoard()
	current := Shape{{4, 2}, {4, 3}, {4, 4}} // horizontal I3 over the start

	next, ok := NextValidOrientation(b, 2, current, Blue, Forward)
	require.True(t, ok)
	assert.Equal(t, 1, next.OrientationIndex)
	assert.True(t, next.Cells.Contains(NewCell(4, 4)), "rotation abandoned the start cell")
	assert.True(t, IsValidPlacement(b, next.Cells, Blue))
}

func TestNextValidOrientationKeepsAnchor(t *testing.T) {
	b := NewBoard().Place(Shape{{4, 4}}, Blue)
	current := Shape{{1, 3}, {2, 3}, {3, 3}} // vertical I3 cornering (4, 4)

	next, ok := NextValidOrientation(b, 2, current, Blue, Forward)
	require.True(t, ok)
	assert.Equal(t, 0, next.OrientationIndex)
	assert.Equal(t, Shape{{3, 1}, {3, 2}, {3, 3}}, next.Cells)
	assert.True(t, IsValidPlacement(b, next.Cells, Blue))
}

func TestNextValidOrientationWraps(t *testing.T) {
	b := NewBoard()
	current := Shape{{4, 2}, {4, 3}, {4, 4}}

	forward, okForward := NextValidOrientation(b, 2, current, Blue, Forward)
	backward, okBackward := NextValidOrientation(b, 2, current, Blue, Backward)

	require.True(t, okForward)
	require.True(t, okBackward)

	// The I3 has two orientations, so both directions land on the other one.
	assert.Equal(t, 1, forward.OrientationIndex)
	assert.Equal(t, 1, backward.OrientationIndex)
}

func TestNextValidOrientationSingleOrientationPiece(t *testing.T) {
	b := NewBoard()
	placements := PlacementsAtAnchor(b, 18, NewCell(4, 4), Blue) // the X pentomino
	require.NotEmpty(t, placements)

	_, ok := NextValidOrientation(b, 18, placements[0].Cells, Blue, Forward)
	assert.False(t, ok, "one orientation leaves nothing to cycle to")
}

func TestNextValidOrientationRawFallback(t *testing.T) {
	b := NewBoard()

	// An S4 cell set previewed under the L4 piece id matches no canonical
	// L4 orientation; a single raw rotation step is searched instead.
	current := Shape{{4, 4}, {4, 5}, {5, 3}, {5, 4}}

	next, ok := NextValidOrientation(b, 8, current, Blue, Forward)
	require.True(t, ok)
	assert.Equal(t, -1, next.OrientationIndex)
	assert.True(t, next.Cells.Contains(NewCell(4, 4)))
	assert.True(t, IsValidPlacement(b, next.Cells, Blue))
	assert.True(t, next.Cells.Normalize().Equal(current.RotateCW()))
}

func TestFlippedOrientation(t *testing.T) {
	b := NewBoard().Place(Shape{{4, 4}}, Blue)
	current := Shape{{1, 3}, {2, 3}, {3, 3}, {3, 4}} // an L4 preview near (4, 4)

	flipped, ok := FlippedOrientation(b, 8, current, Blue)
	require.True(t, ok)
	assert.Equal(t, orientationIndex(OrientationsOf(8), current.Reflect()), flipped.OrientationIndex)
	assert.True(t, IsValidPlacement(b, flipped.Cells, Blue))

	// Still connected through (4, 4).
	touches := false
	for _, c := range flipped.Cells {
		for _, n := range c.DiagonalNeighbors() {
			if n == NewCell(4, 4) {
				touches = true
			}
		}
	}
	assert.True(t, touches)
}

func TestFlippedOrientationNoRoom(t *testing.T) {
	// Orange is boxed in so the reflected shape has nowhere legal nearby.
	var b Board
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			b[i][j] = Blue
		}
	}
	b[9][9] = Nobody

	_, ok := FlippedOrientation(b, 1, Shape{{9, 9}, {9, 10}}, Orange)
	assert.False(t, ok)
}
