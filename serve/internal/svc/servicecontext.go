package svc

import (
	"fmt"

	"github.com/HuXin0817/blokus-duo/pkg/env"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/pkg/models/model"
	"github.com/HuXin0817/blokus-duo/pkg/models/pusher"
	"github.com/HuXin0817/blokus-duo/serve/internal/config"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config          config.Config
	RedisClient     *redis.Redis
	PartitionPusher map[message.RedisPartition]*pusher.Pusher[string]
}

func NewServiceContext(c config.Config) *ServiceContext {
	if c.Redis.Pass == "" {
		c.Redis.Pass = env.RedisPassWord
	}

	if c.MongoConf.PassWord == "" {
		c.MongoConf.PassWord = env.MongoPassWord
	}

	c.MongoConf.Url = fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord)

	svcCtx := &ServiceContext{
		Config:          c,
		RedisClient:     redis.MustNewRedis(c.Redis),
		PartitionPusher: make(map[message.RedisPartition]*pusher.Pusher[string]),
	}

	partitionPushLock := make(map[message.RedisPartition]*model.RedisLock)

	for _, partition := range message.RedisPartitions {
		partitionPushLock[partition] = model.NewLock(svcCtx.RedisClient, partition.LockName())

		svcCtx.PartitionPusher[partition] = pusher.NewPusher(pusher.WithPushLogic(func(pushMessages ...string) error {
			if len(pushMessages) == 0 {
				return nil
			}

			return partitionPushLock[partition].Do(func() (err error) {
				var messages []any
				for _, m := range pushMessages {
					messages = append(messages, m)
				}

				if _, err = svcCtx.RedisClient.Lpush(partition.ListKey(), messages...); err != nil {
					return err
				}

				partitionLength, err := svcCtx.RedisClient.Llen(partition.ListKey())
				if err != nil {
					return err
				}

				return svcCtx.RedisClient.Expire(partition.ListKey(), 120*partitionLength)
			})
		}))

		svcCtx.PartitionPusher[partition].Start()
	}

	return svcCtx
}
