package message

import (
	"github.com/HuXin0817/blokus-duo/pkg/models/duo"
	"github.com/bytedance/sonic"
)

// PlacementMessage carries one validated placement plus the post-placement
// board snapshot to the referee workers.
type PlacementMessage struct {
	TimeStamp
	GameUid
	StepCount       int
	Board           duo.Board
	Player          duo.Player
	PieceID         int
	Cells           duo.Shape
	BlueRemaining   []int
	OrangeRemaining []int
}

func NewPlacementMessage(str string) (newPlacementMessage PlacementMessage, err error) {
	err = sonic.UnmarshalString(str, &newPlacementMessage)
	return
}

func (m PlacementMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
