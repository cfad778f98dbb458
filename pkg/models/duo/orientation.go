package duo

// Direction selects which way NextValidOrientation walks the orientation
// list.
type Direction int8

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// searchRadius bounds the ring search around the previewed placement. Four
// cells always covers re-anchoring a five-cell shape on the same anchor.
const searchRadius = 4

// NextValidOrientation finds the next orientation of the piece (walking the
// orientation list from the one the current preview matches, wrapping) that
// has a legal placement near the current position and still connected
// through one of the anchor cells the current placement uses. Returns false
// when no orientation in the cycle fits.
//
// If the current cells match no canonical orientation, a single raw rotation
// step is taken and searched instead.
func NextValidOrientation(b Board, pieceID int, currentCells Shape, p Player, direction Direction) (Placement, bool) {
	orientations := OrientationsOf(pieceID)
	index := orientationIndex(orientations, currentCells)

	anchors := anchorCellsOf(b, currentCells, p)
	firstMove := !b.HasPieceOn(p)
	centerR, centerC := boardCenterOf(currentCells)

	if index < 0 {
		var rotated Shape
		if direction == Backward {
			rotated = currentCells.RotateCCW()
		} else {
			rotated = currentCells.RotateCW()
		}

		cells, ok := searchNear(b, rotated, centerR, centerC, p, anchors, firstMove)
		if !ok {
			return Placement{}, false
		}
		return Placement{Cells: cells, OrientationIndex: orientationIndex(orientations, rotated)}, true
	}

	n := len(orientations)
	for step := 1; step < n; step++ {
		next := ((index+step*int(direction))%n + n) % n
		if cells, ok := searchNear(b, orientations[next], centerR, centerC, p, anchors, firstMove); ok {
			return Placement{Cells: cells, OrientationIndex: next}, true
		}
	}

	return Placement{}, false
}

// FlippedOrientation reflects the current preview and re-places it near its
// own center, keeping the same anchor connection, so the flip does not jump
// across the board.
func FlippedOrientation(b Board, pieceID int, currentCells Shape, p Player) (Placement, bool) {
	orientations := OrientationsOf(pieceID)
	reflected := currentCells.Reflect()

	anchors := anchorCellsOf(b, currentCells, p)
	firstMove := !b.HasPieceOn(p)
	centerR, centerC := boardCenterOf(currentCells)

	cells, ok := searchNear(b, reflected, centerR, centerC, p, anchors, firstMove)
	if !ok {
		return Placement{}, false
	}

	return Placement{Cells: cells, OrientationIndex: orientationIndex(orientations, reflected)}, true
}

func orientationIndex(orientations []Shape, cells Shape) int {
	normalized := cells.Normalize()
	for i, orientation := range orientations {
		if orientation.Equal(normalized) {
			return i
		}
	}
	return -1
}

// anchorCellsOf collects the board cells the placement is connected
// through: the start cell before the first move, otherwise the same-player
// cells the placement touches corner-on.
func anchorCellsOf(b Board, cells Shape, p Player) map[Cell]struct{} {
	anchors := make(map[Cell]struct{})

	if !b.HasPieceOn(p) {
		anchors[p.StartCell()] = struct{}{}
		return anchors
	}

	for _, c := range cells {
		for _, n := range c.DiagonalNeighbors() {
			if b.Owner(n) == p {
				anchors[n] = struct{}{}
			}
		}
	}

	return anchors
}

func sharesAnchorCell(cells Shape, anchors map[Cell]struct{}, firstMove bool) bool {
	if firstMove {
		for _, c := range cells {
			if _, ok := anchors[c]; ok {
				return true
			}
		}
		return false
	}

	for _, c := range cells {
		for _, n := range c.DiagonalNeighbors() {
			if _, ok := anchors[n]; ok {
				return true
			}
		}
	}
	return false
}

func boardCenterOf(cells Shape) (centerR, centerC int) {
	minR, minC := cells[0].R, cells[0].C
	maxR, maxC := minR, minC
	for _, c := range cells[1:] {
		if c.R < minR {
			minR = c.R
		}
		if c.R > maxR {
			maxR = c.R
		}
		if c.C < minC {
			minC = c.C
		}
		if c.C > maxC {
			maxC = c.C
		}
	}
	return (minR + maxR) / 2, (minC + maxC) / 2
}

// searchNear scans expanding rings around the target center for a spot where
// the normalized shape is both legal and still connected through the given
// anchors. Ring order is fixed so repeated calls land on the same placement.
func searchNear(b Board, shape Shape, centerR, centerC int, p Player, anchors map[Cell]struct{}, firstMove bool) (Shape, bool) {
	rows, cols := shape.BoundingBox()
	baseR := centerR - rows/2
	baseC := centerC - cols/2

	for radius := 0; radius <= searchRadius; radius++ {
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				if max(abs(dr), abs(dc)) != radius {
					continue
				}

				cells := shape.Translate(baseR+dr, baseC+dc)
				if IsValidPlacement(b, cells, p) && sharesAnchorCell(cells, anchors, firstMove) {
					return cells, true
				}
			}
		}
	}

	return nil, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
