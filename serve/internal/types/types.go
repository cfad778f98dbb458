package types

import "github.com/HuXin0817/blokus-duo/pkg/models/duo"

type PlacementRequest struct {
	GameUid         string
	StepCount       int
	Board           duo.Board
	Player          duo.Player
	PieceID         int
	Cells           duo.Shape
	BlueRemaining   []int
	OrangeRemaining []int
	GameOver        bool
}

type PlacementResponse struct {
	Valid            bool
	OpponentMustPass bool
	AnchorCount      int
}

type AnchorsRequest struct {
	Board   duo.Board
	Player  duo.Player
	PieceID int
}

type AnchorsResponse struct {
	Anchors []duo.Cell
}

type PlacementsRequest struct {
	Board   duo.Board
	Player  duo.Player
	PieceID int
}

type PlacementsResponse struct {
	Placements []duo.Placement
}
