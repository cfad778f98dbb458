package logic

import (
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// FreestPartition picks the partition with the shortest backlog so the
// referee workers stay evenly loaded.
func FreestPartition(RedisClient *redis.Redis) (part message.RedisPartition, err error) {
	part = message.RedisPartition(-1)
	minLen := 0

	for _, t := range message.RedisPartitions {
		length, err := RedisClient.Llen(t.ListKey())
		if err != nil {
			return -1, err
		}

		if part == -1 || length < minLen {
			minLen = length
			part = t
		}
	}

	return part, nil
}

func SendMessageToRedisLists(RedisClient *redis.Redis, PartitionPusher map[message.RedisPartition]*pusher.Pusher[string], m message.PlacementMessage) error {
	m.TimeStamp = message.NewTimeStamp(time.Now())

	part, err := FreestPartition(RedisClient)
	if err != nil {
		return err
	}

	PartitionPusher[part].AddMessages(m.String())
	return nil
}
