package main

import (
	"fmt"
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/pkg/models/model"
	"github.com/HuXin0817/blokus-duo/pkg/models/pusher"
)

type SummaryMessage struct {
	message.MoveSummaryKey
	message.MoveSummaryValue
	RollBackFunc func()
}

var MessagePushLockMap = make(map[string]*model.RedisLock)

var Pusher = pusher.NewPusher(pusher.WithPushInterval[SummaryMessage](time.Second), pusher.WithPushLogic(func(summaryMessages ...SummaryMessage) error {
	for _, summaryMessage := range summaryMessages {
		keyStr := summaryMessage.MoveSummaryKey.String()

		if MessagePushLockMap[keyStr] == nil {
			MessagePushLockMap[keyStr] = model.NewLock(RedisClient, fmt.Sprintf("%s-Lock", keyStr))
			go func() {
				time.Sleep(time.Minute * 2)
				delete(MessagePushLockMap, keyStr)
			}()
		}

		err := MessagePushLockMap[keyStr].Do(func() error {
			if _, err := RedisClient.Sadd(keyStr, summaryMessage.MoveSummaryValue.String()); err != nil {
				return err
			}

			if err := RedisClient.Expire(keyStr, SetExpireTime); err != nil {
				summaryMessage.RollBackFunc()
				return err
			}

			return nil
		})

		if err != nil {
			return err
		}
	}

	return nil
}))
