package gamerecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ GameStartRecordModel = (*customGameStartRecordModel)(nil)

type (
	// GameStartRecordModel is an interface to be customized, add more methods here,
	// and implement the added methods in customGameStartRecordModel.
	GameStartRecordModel interface {
		gameStartRecordModel
	}

	gameStartRecordModel interface {
		Insert(ctx context.Context, data *GameStartRecord) error
		FindOne(ctx context.Context, id string) (*GameStartRecord, error)
	}

	customGameStartRecordModel struct {
		*defaultGameStartRecordModel
	}

	defaultGameStartRecordModel struct {
		conn *mon.Model
	}
)

// NewGameStartRecordModel returns a model for the mongo.
func NewGameStartRecordModel(url, db, collection string) GameStartRecordModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customGameStartRecordModel{
		defaultGameStartRecordModel: &defaultGameStartRecordModel{conn: conn},
	}
}

func (m *defaultGameStartRecordModel) Insert(ctx context.Context, data *GameStartRecord) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *defaultGameStartRecordModel) FindOne(ctx context.Context, id string) (*GameStartRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	var data GameStartRecord
	err = m.conn.FindOne(ctx, &data, bson.M{"_id": oid})
	switch err {
	case nil:
		return &data, nil
	case mon.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
