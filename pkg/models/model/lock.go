package model

import (
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, LockName string) *RedisLock {
	return &RedisLock{
		RedisLock: redis.NewRedisLock(rds, LockName),
	}
}

// Do runs f while holding the lock.
func (l *RedisLock) Do(f func() error) error {
	if err := l.Lock(); err != nil {
		return err
	}

	if err := f(); err != nil {
		return err
	}

	return l.UnLock()
}

func (l *RedisLock) Lock() error {
	for {
		acquire, err := l.Acquire()
		if err != nil {
			return err
		}

		if acquire {
			return nil
		}

		time.Sleep(time.Second / 5)
	}
}

func (l *RedisLock) UnLock() error {
	for {
		release, err := l.Release()
		if err != nil {
			return err
		}

		if release {
			return nil
		}

		time.Sleep(time.Second / 5)
	}
}
