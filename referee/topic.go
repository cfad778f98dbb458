package main

import (
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// GetFreePartition blocks until a partition with pending messages and no
// owner can be claimed.
func GetFreePartition(RedisClient *redis.Redis) (partition message.RedisPartition, err error) {
	for {
		for _, t := range message.RedisPartitions {
			owner, err := RedisClient.Get(t.OwnerKey())
			if err != nil {
				return -1, err
			}

			length, err := RedisClient.Llen(t.ListKey())
			if err != nil {
				return -1, err
			}

			if owner == "" && length > 0 {
				if err = RedisClient.Setex(t.OwnerKey(), string(message.NewTimeStamp(time.Now())), 600); err != nil {
					return -1, err
				}
				return t, nil
			}
		}

		time.Sleep(time.Second)
	}
}
