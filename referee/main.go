package main

import (
	"log"
	"time"

	_ "github.com/HuXin0817/blokus-duo/pkg/pprof"
)

const (
	OnceWorkingTime = 180                 // second
	SetExpireTime   = OnceWorkingTime * 3 // second
)

func main() {
	initConfig()
	Pusher.Start()

	for {
		NowPartition, err := GetFreePartition(RedisClient)
		if err != nil {
			log.Fatalln(err)
		}

		if err = OnceIntervalWorking(NowPartition); err != nil {
			log.Fatalln(err)
		}

		time.Sleep(time.Second)
	}
}
