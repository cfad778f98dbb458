package gamerecord

import (
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameStartRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid
	BoardSize int
}
