package gamerecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ PlacementRecordModel = (*customPlacementRecordModel)(nil)

type (
	// PlacementRecordModel is an interface to be customized, add more methods here,
	// and implement the added methods in customPlacementRecordModel.
	PlacementRecordModel interface {
		placementRecordModel
	}

	placementRecordModel interface {
		Insert(ctx context.Context, data *PlacementRecord) error
		FindOne(ctx context.Context, id string) (*PlacementRecord, error)
	}

	customPlacementRecordModel struct {
		*defaultPlacementRecordModel
	}

	defaultPlacementRecordModel struct {
		conn *mon.Model
	}
)

// NewPlacementRecordModel returns a model for the mongo.
func NewPlacementRecordModel(url, db, collection string) PlacementRecordModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customPlacementRecordModel{
		defaultPlacementRecordModel: &defaultPlacementRecordModel{conn: conn},
	}
}

func (m *defaultPlacementRecordModel) Insert(ctx context.Context, data *PlacementRecord) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *defaultPlacementRecordModel) FindOne(ctx context.Context, id string) (*PlacementRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	var data PlacementRecord
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
