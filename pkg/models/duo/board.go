package duo

import "strings"

const BoardSize = 14

// Board is a 14x14 owner grid. It is a value type: passing a Board copies
// it, so every call operates on a snapshot and Place leaves the receiver
// untouched.
type Board [BoardSize][BoardSize]Player

func NewBoard() Board {
	return Board{}
}

func (b Board) Owner(c Cell) Player {
	if !c.InBounds() {
		return Nobody
	}
	return b[c.R][c.C]
}

// Empty reports an in-bounds unowned cell. Out of bounds is never empty.
func (b Board) Empty(c Cell) bool {
	return c.InBounds() && b[c.R][c.C] == Nobody
}

func (b Board) HasPieceOn(p Player) bool {
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			if b[i][j] == p {
				return true
			}
		}
	}
	return false
}

func (b Board) CellCount(p Player) (count int) {
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			if b[i][j] == p {
				count++
			}
		}
	}
	return
}

// Place returns a new board with the cells stamped for the player.
// It does not validate; gate on IsValidPlacement first.
func (b Board) Place(cells Shape, p Player) Board {
	for _, c := range cells {
		b[c.R][c.C] = p
	}
	return b
}

// Stamp is the in-place variant of Place, used by Game.Add.
func (b *Board) Stamp(cells Shape, p Player) {
	for _, c := range cells {
		b[c.R][c.C] = p
	}
}

func (b Board) String() string {
	var builder strings.Builder
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			switch b[i][j] {
			case Blue:
				builder.WriteByte('B')
			case Orange:
				builder.WriteByte('O')
			default:
				builder.WriteByte('.')
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
