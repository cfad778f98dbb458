package duo

// CornerAnchors scans the board for the empty cells that touch the player's
// territory corner-on without touching it edge-on. Before the player's first
// move the only anchor is the start cell.
func CornerAnchors(b Board, p Player) []Cell {
	if !b.HasPieceOn(p) {
		return []Cell{p.StartCell()}
	}

	var anchors []Cell
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			c := NewCell(i, j)
			if !b.Empty(c) {
				continue
			}

			orthTouch := false
			for _, n := range c.OrthogonalNeighbors() {
				if b.Owner(n) == p {
					orthTouch = true
					break
				}
			}
			if orthTouch {
				continue
			}

			for _, n := range c.DiagonalNeighbors() {
				if b.Owner(n) == p {
					anchors = append(anchors, c)
					break
				}
			}
		}
	}

	return anchors
}

// PlacementsAtAnchor enumerates every legal placement of the piece that
// covers the anchor: each orientation, pinning each of its cells to the
// anchor in turn. Cell-set duplicates reached through different orientation
// indices stay separate entries; orientation identity matters to callers
// that cycle orientations in place.
func PlacementsAtAnchor(b Board, pieceID int, anchor Cell, p Player) (placements []Placement) {
	for index, orientation := range OrientationsOf(pieceID) {
		for _, pin := range orientation {
			cells := orientation.Translate(anchor.R-pin.R, anchor.C-pin.C)
			if IsValidPlacement(b, cells, p) {
				placements = append(placements, Placement{
					Cells:            cells,
					OrientationIndex: index,
				})
			}
		}
	}
	return
}

func CanPlacePiece(b Board, pieceID int, p Player) bool {
	for _, anchor := range CornerAnchors(b, p) {
		if len(PlacementsAtAnchor(b, pieceID, anchor, p)) > 0 {
			return true
		}
	}
	return false
}

// HasValidMoves reports whether any remaining piece can land anywhere.
// False means the player must pass.
func HasValidMoves(b Board, remainingPieceIDs []int, p Player) bool {
	for _, id := range remainingPieceIDs {
		if CanPlacePiece(b, id, p) {
			return true
		}
	}
	return false
}

// AnchorsForPiece narrows CornerAnchors to the anchors this piece can
// actually use, for highlighting once a piece is selected.
func AnchorsForPiece(b Board, pieceID int, p Player) (anchors []Cell) {
	for _, anchor := range CornerAnchors(b, p) {
		if len(PlacementsAtAnchor(b, pieceID, anchor, p)) > 0 {
			anchors = append(anchors, anchor)
		}
	}
	return
}

// AllValidPlacements enumerates every distinct physical placement of the
// piece once, collapsed by cell set, in row-major anchor order then the
// per-anchor enumeration order. Used for exhaustive browsing rather than
// orientation-preserving cycling.
func AllValidPlacements(b Board, pieceID int, p Player) (placements []Placement) {
	seen := make(map[string]struct{})
	for _, anchor := range CornerAnchors(b, p) {
		for _, placement := range PlacementsAtAnchor(b, pieceID, anchor, p) {
			key := placement.Cells.Key()
			if _, c := seen[key]; c {
				continue
			}
			seen[key] = struct{}{}
			placements = append(placements, placement)
		}
	}
	return
}
