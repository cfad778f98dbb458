package logic

import (
	"context"

	"github.com/HuXin0817/blokus-duo/pkg/models/duo"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/HuXin0817/blokus-duo/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type InquireAnchorsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewInquireAnchorsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *InquireAnchorsLogic {
	return &InquireAnchorsLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// InquireAnchors returns the corner anchors for a player. A PieceID of -1
// asks for the raw anchor set; a real piece id narrows it to the anchors
// that piece can use.
func (l *InquireAnchorsLogic) InquireAnchors(in *types.AnchorsRequest) (*types.AnchorsResponse, error) {
	if in.Player != duo.Blue && in.Player != duo.Orange {
		return nil, UnknownPlayerErr
	}

	if in.PieceID < 0 {
		return &types.AnchorsResponse{Anchors: duo.CornerAnchors(in.Board, in.Player)}, nil
	}

	if in.PieceID >= len(duo.Pieces) {
		return nil, UnknownPieceErr
	}

	return &types.AnchorsResponse{Anchors: duo.AnchorsForPiece(in.Board, in.PieceID, in.Player)}, nil
}
