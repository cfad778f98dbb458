package logic

import (
	"context"
	"strconv"

	"github.com/HuXin0817/blokus-duo/pkg/models/duo"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/HuXin0817/blokus-duo/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type PostPlacementLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewPostPlacementLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PostPlacementLogic {
	return &PostPlacementLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// PostPlacement is the authoritative mutation path: it re-validates the
// placement with the same engine the client previews with, records the move,
// and fans the post-placement snapshot out to the referee workers.
func (l *PostPlacementLogic) PostPlacement(in *types.PlacementRequest) (*types.PlacementResponse, error) {
	if in.Player != duo.Blue && in.Player != duo.Orange {
		return nil, UnknownPlayerErr
	}

	if in.GameOver {
		if err := l.RecordInMongo(in); err != nil {
			return nil, err
		}

		if _, err := l.svcCtx.RedisClient.Del(in.GameUid); err != nil {
			return nil, err
		}

		return &types.PlacementResponse{Valid: true}, nil
	}

	if in.PieceID < 0 || in.PieceID >= len(duo.Pieces) {
		return nil, UnknownPieceErr
	}

	if !duo.IsValidPlacement(in.Board, in.Cells, in.Player) {
		l.Infof("rejected placement: game %s step %d piece %d", in.GameUid, in.StepCount, in.PieceID)
		return &types.PlacementResponse{Valid: false}, nil
	}

	if err := l.RecordInMongo(in); err != nil {
		return nil, err
	}

	if err := l.svcCtx.RedisClient.Setex(in.GameUid, strconv.Itoa(in.StepCount), 120); err != nil {
		return nil, err
	}

	board := in.Board.Place(in.Cells, in.Player)

	if err := SendMessageToRedisLists(l.svcCtx.RedisClient, l.svcCtx.PartitionPusher, message.PlacementMessage{
		GameUid:         message.GameUid(in.GameUid),
		StepCount:       in.StepCount,
		Board:           board,
		Player:          in.Player,
		PieceID:         in.PieceID,
		Cells:           in.Cells,
		BlueRemaining:   in.BlueRemaining,
		OrangeRemaining: in.OrangeRemaining,
	}); err != nil {
		return nil, err
	}

	opponent := in.Player.Opponent()
	opponentRemaining := in.BlueRemaining
	if opponent == duo.Orange {
		opponentRemaining = in.OrangeRemaining
	}

	return &types.PlacementResponse{
		Valid:            true,
		OpponentMustPass: !duo.HasValidMoves(board, opponentRemaining, opponent),
		AnchorCount:      len(duo.CornerAnchors(board, opponent)),
	}, nil
}
