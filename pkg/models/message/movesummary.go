package message

import (
	"github.com/HuXin0817/blokus-duo/pkg/models/duo"
	"github.com/bytedance/sonic"
)

// MoveSummaryKey addresses the redis set holding the per-player summaries
// computed for one step of one game.
type MoveSummaryKey struct {
	GameUid
	Step int
}

func (k MoveSummaryKey) String() string {
	str, _ := sonic.MarshalString(k)
	return str
}

// MoveSummaryValue is what the referee publishes for one player after a
// placement: whether any move is left, how many anchors the territory has,
// and the remaining-cell score.
type MoveSummaryValue struct {
	Player        duo.Player
	HasValidMoves bool
	AnchorCount   int
	Score         int
}

func NewMoveSummaryValue(s string) (newMoveSummaryValue MoveSummaryValue) {
	_ = sonic.UnmarshalString(s, &newMoveSummaryValue)
	return newMoveSummaryValue
}

func (v MoveSummaryValue) String() string {
	str, _ := sonic.MarshalString(v)
	return str
}

type StepHasBeenSummarizedKey struct {
	GameUid
	Step   int
	Player duo.Player
}

func (k *StepHasBeenSummarizedKey) String() string {
	s, _ := sonic.MarshalString(k)
	return s
}
