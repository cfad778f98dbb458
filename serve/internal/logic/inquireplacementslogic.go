package logic

import (
	"context"

	"github.com/HuXin0817/blokus-duo/pkg/models/duo"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/HuXin0817/blokus-duo/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type InquirePlacementsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewInquirePlacementsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *InquirePlacementsLogic {
	return &InquirePlacementsLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// InquirePlacements returns every distinct placement of the piece, for
// exhaustive browsing on the client.
func (l *InquirePlacementsLogic) InquirePlacements(in *types.PlacementsRequest) (*types.PlacementsResponse, error) {
	if in.Player != duo.Blue && in.Player != duo.Orange {
		return nil, UnknownPlayerErr
	}

	if in.PieceID < 0 || in.PieceID >= len(duo.Pieces) {
		return nil, UnknownPieceErr
	}

	return &types.PlacementsResponse{
		Placements: duo.AllValidPlacements(in.Board, in.PieceID, in.Player),
	}, nil
}
