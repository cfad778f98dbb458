package duo

// Placement is one way a piece can land on the board, tagged with which of
// the piece's orientations it represents.
type Placement struct {
	Cells            Shape
	OrientationIndex int
}

// IsValidPlacement is the single legality predicate. Both the authoritative
// mutation path and the speculative client preview must gate on this exact
// function; the two call sites desync otherwise.
//
// A placement is legal when every cell is in bounds and empty, no cell
// touches a same-player cell edge-on, and it connects: the first placement
// must cover the player's start cell, every later one must touch a
// same-player cell corner-on.
func IsValidPlacement(b Board, cells Shape, p Player) bool {
	if len(cells) == 0 {
		return false
	}

	for _, c := range cells {
		if !b.Empty(c) {
			return false
		}
	}

	for _, c := range cells {
		for _, n := range c.OrthogonalNeighbors() {
			if b.Owner(n) == p {
				return false
			}
		}
	}

	if !b.HasPieceOn(p) {
		return cells.Contains(p.StartCell())
	}

	for _, c := range cells {
		for _, n := range c.DiagonalNeighbors() {
			if b.Owner(n) == p {
				return true
			}
		}
	}

	return false
}
