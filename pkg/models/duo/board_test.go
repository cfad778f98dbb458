package duo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInBounds(t *testing.T) {
	assert.True(t, NewCell(0, 0).InBounds())
	assert.True(t, NewCell(13, 13).InBounds())
	assert.False(t, NewCell(-1, 0).InBounds())
	assert.False(t, NewCell(0, 14).InBounds())
	assert.False(t, NewCell(14, 0).InBounds())
}

func TestEmptyOutOfBoundsIsNotEmpty(t *testing.T) {
	b := NewBoard()
	assert.True(t, b.Empty(NewCell(0, 0)))
	assert.False(t, b.Empty(NewCell(-1, 0)))
	assert.False(t, b.Empty(NewCell(0, 14)))
}

func TestNeighborEnumeration(t *testing.T) {
	orth := NewCell(5, 5).OrthogonalNeighbors()
	assert.ElementsMatch(t, []Cell{{4, 5}, {6, 5}, {5, 4}, {5, 6}}, orth[:])

	diag := NewCell(5, 5).DiagonalNeighbors()
	assert.ElementsMatch(t, []Cell{{4, 4}, {4, 6}, {6, 4}, {6, 6}}, diag[:])

	// No bounds filtering; the caller checks.
	corner := NewCell(0, 0).OrthogonalNeighbors()
	assert.Contains(t, corner[:], NewCell(-1, 0))
}

func TestPlaceIsASnapshot(t *testing.T) {
	b := NewBoard()
	placed := b.Place(Shape{{4, 4}}, Blue)

	assert.Equal(t, Nobody, b.Owner(NewCell(4, 4)))
	assert.Equal(t, Blue, placed.Owner(NewCell(4, 4)))

	assert.False(t, b.HasPieceOn(Blue))
	assert.True(t, placed.HasPieceOn(Blue))
	assert.False(t, placed.HasPieceOn(Orange))
}

func TestCellCount(t *testing.T) {
	b := NewBoard().
		Place(Shape{{4, 4}, {5, 5}}, Blue).
		Place(Shape{{9, 9}}, Orange)

	assert.Equal(t, 2, b.CellCount(Blue))
	assert.Equal(t, 1, b.CellCount(Orange))
	assert.Equal(t, 0, NewBoard().CellCount(Blue))
}

func TestBoardString(t *testing.T) {
	b := NewBoard().
		Place(Shape{{4, 4}}, Blue).
		Place(Shape{{9, 9}}, Orange)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	assert.Len(t, lines, BoardSize)
	assert.Equal(t, byte('B'), lines[4][4])
	assert.Equal(t, byte('O'), lines[9][9])
	assert.Equal(t, byte('.'), lines[0][0])
}
