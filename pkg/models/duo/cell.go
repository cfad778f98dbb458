package duo

import "fmt"

type Cell struct {
	R int
	C int
}

func NewCell(r, c int) Cell {
	return Cell{R: r, C: c}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.R, c.C)
}

func (c Cell) Translate(dr, dc int) Cell {
	return NewCell(c.R+dr, c.C+dc)
}

func (c Cell) InBounds() bool {
	return c.R >= 0 && c.R < BoardSize && c.C >= 0 && c.C < BoardSize
}

// OrthogonalNeighbors are the 4 edge-sharing cells, without bounds filtering.
func (c Cell) OrthogonalNeighbors() [4]Cell {
	return [...]Cell{
		NewCell(c.R-1, c.C),
		NewCell(c.R+1, c.C),
		NewCell(c.R, c.C-1),
		NewCell(c.R, c.C+1),
	}
}

// DiagonalNeighbors are the 4 corner-sharing cells, without bounds filtering.
func (c Cell) DiagonalNeighbors() [4]Cell {
	return [...]Cell{
		NewCell(c.R-1, c.C-1),
		NewCell(c.R-1, c.C+1),
		NewCell(c.R+1, c.C-1),
		NewCell(c.R+1, c.C+1),
	}
}
