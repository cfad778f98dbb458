package duo

import "fmt"

type Piece struct {
	ID    int
	Name  string
	Shape Shape
}

func (p Piece) Size() int {
	return len(p.Shape)
}

// Pieces is the fixed 21-piece set, one of each polyomino up to five cells.
var Pieces = [21]Piece{
	{0, "I1", Shape{{0, 0}}},
	{1, "I2", Shape{{0, 0}, {0, 1}}},
	{2, "I3", Shape{{0, 0}, {0, 1}, {0, 2}}},
	{3, "V3", Shape{{0, 0}, {0, 1}, {1, 0}}},
	{4, "I4", Shape{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
	{5, "O4", Shape{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	{6, "T4", Shape{{0, 0}, {0, 1}, {0, 2}, {1, 1}}},
	{7, "S4", Shape{{0, 1}, {0, 2}, {1, 0}, {1, 1}}},
	{8, "L4", Shape{{0, 0}, {1, 0}, {2, 0}, {2, 1}}},
	{9, "F5", Shape{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}}},
	{10, "I5", Shape{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}}},
	{11, "L5", Shape{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}}},
	{12, "N5", Shape{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}}},
	{13, "P5", Shape{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}}},
	{14, "T5", Shape{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 1}}},
	{15, "U5", Shape{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}},
	{16, "V5", Shape{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}},
	{17, "W5", Shape{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}}},
	{18, "X5", Shape{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}}},
	{19, "Y5", Shape{{0, 1}, {1, 0}, {1, 1}, {2, 1}, {3, 1}}},
	{20, "Z5", Shape{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}}},
}

var pieceOrientations [len(Pieces)][]Shape

func init() {
	for i, p := range Pieces {
		pieceOrientations[i] = p.Shape.Orientations()
	}
}

func PieceByID(id int) Piece {
	if id < 0 || id >= len(Pieces) {
		panic(fmt.Sprintf("duo: unknown piece id %d", id))
	}
	return Pieces[id]
}

// OrientationsOf returns the memoized orientation list for a piece.
// Callers must not mutate the returned shapes.
func OrientationsOf(pieceID int) []Shape {
	if pieceID < 0 || pieceID >= len(Pieces) {
		panic(fmt.Sprintf("duo: unknown piece id %d", pieceID))
	}
	return pieceOrientations[pieceID]
}
