package logic

import (
	"github.com/HuXin0817/blokus-duo/pkg/models/duo"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/pkg/models/message/gamerecord"
	"github.com/HuXin0817/blokus-duo/serve/internal/types"
)

// RecordInMongo writes one document per move into a collection named after
// the game uid: a start record for step zero, an end record when the game is
// over, a placement record otherwise.
func (l *PostPlacementLogic) RecordInMongo(in *types.PlacementRequest) (err error) {
	ctx := l.ctx
	MongoUrl := l.svcCtx.Config.MongoConf.Url
	MongoDataBaseName := l.svcCtx.Config.MongoConf.DataBaseName

	if in.GameOver {
		record := &gamerecord.GameEndRecord{
			Winner:      duo.Winner(in.BlueRemaining, in.OrangeRemaining),
			BlueScore:   duo.Score(in.BlueRemaining),
			OrangeScore: duo.Score(in.OrangeRemaining),
		}

		mongoConn := gamerecord.NewGameEndRecordModel(MongoUrl, MongoDataBaseName, in.GameUid)
		return mongoConn.Insert(ctx, record)
	}

	if in.StepCount == 0 {
		record := &gamerecord.GameStartRecord{
			GameUid:   message.GameUid(in.GameUid),
			BoardSize: duo.BoardSize,
		}

		mongoConn := gamerecord.NewGameStartRecordModel(MongoUrl, MongoDataBaseName, in.GameUid)
		if err = mongoConn.Insert(ctx, record); err != nil {
			return err
		}
	}

	record := &gamerecord.PlacementRecord{
		StepCount:   in.StepCount,
		Player:      in.Player.String(),
		PieceName:   duo.PieceByID(in.PieceID).Name,
		Cells:       in.Cells.Key(),
		BlueScore:   duo.Score(in.BlueRemaining),
		OrangeScore: duo.Score(in.OrangeRemaining),
	}

	mongoConn := gamerecord.NewPlacementRecordModel(MongoUrl, MongoDataBaseName, in.GameUid)
	return mongoConn.Insert(ctx, record)
}
