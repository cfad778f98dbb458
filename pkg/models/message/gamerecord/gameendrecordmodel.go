package gamerecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ GameEndRecordModel = (*customGameEndRecordModel)(nil)

type (
	// GameEndRecordModel is an interface to be customized, add more methods here,
	// and implement the added methods in customGameEndRecordModel.
	GameEndRecordModel interface {
		gameEndRecordModel
	}

	gameEndRecordModel interface {
		Insert(ctx context.Context, data *GameEndRecord) error
		FindOne(ctx context.Context, id string) (*GameEndRecord, error)
	}

	customGameEndRecordModel struct {
		*defaultGameEndRecordModel
	}

	defaultGameEndRecordModel struct {
		conn *mon.Model
	}
)

// NewGameEndRecordModel returns a model for the mongo.
func NewGameEndRecordModel(url, db, collection string) GameEndRecordModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customGameEndRecordModel{
		defaultGameEndRecordModel: &defaultGameEndRecordModel{conn: conn},
	}
}

func (m *defaultGameEndRecordModel) Insert(ctx context.Context, data *GameEndRecord) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *defaultGameEndRecordModel) FindOne(ctx context.Context, id string) (*GameEndRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	var data GameEndRecord
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
