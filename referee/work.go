package main

import (
	"log"
	"strconv"
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/duo"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
)

func RollBack(listKey, m string) {
	for i := 0; i < 20; i++ {
		if _, err := RedisClient.Lpush(listKey, m); err != nil {
			time.Sleep(time.Second / 2)
			continue
		}
		return
	}
}

// Summarize recomputes both players' aggregate state after a placement.
func Summarize(m message.PlacementMessage) (summaries []message.MoveSummaryValue) {
	remaining := map[duo.Player][]int{
		duo.Blue:   m.BlueRemaining,
		duo.Orange: m.OrangeRemaining,
	}

	for _, p := range []duo.Player{duo.Blue, duo.Orange} {
		summaries = append(summaries, message.MoveSummaryValue{
			Player:        p,
			HasValidMoves: duo.HasValidMoves(m.Board, remaining[p], p),
			AnchorCount:   len(duo.CornerAnchors(m.Board, p)),
			Score:         duo.Score(remaining[p]),
		})
	}

	return
}

// OnceIntervalWorking drains the claimed partition, computing and publishing
// move summaries for every fresh placement message.
func OnceIntervalWorking(NowPartition message.RedisPartition) (err error) {
	log.Printf("Start Working At Partition: %d\n", NowPartition)

	defer func() {
		if _, err = RedisClient.Del(NowPartition.OwnerKey()); err != nil {
			log.Panicf("Release Partition Error: %s\n", err)
		}
	}()

	for {
		if err = RedisClient.Expire(NowPartition.OwnerKey(), OnceWorkingTime); err != nil {
			return err
		}

		l, err := RedisClient.Llen(NowPartition.ListKey())
		if err != nil {
			return err
		}

		if l == 0 {
			return nil
		}

		m, err := RedisClient.Rpop(NowPartition.ListKey())
		if err != nil {
			return err
		}

		if m == "" {
			continue
		}

		mess, err := message.NewPlacementMessage(m)
		if err != nil {
			return err
		}

		nowStep, err := RedisClient.Get(string(mess.GameUid))
		if err != nil {
			RollBack(NowPartition.ListKey(), m)
			return err
		}

		if nowStep == "" {
			continue
		}

		// The game has moved on; this snapshot is stale.
		if step, _ := strconv.Atoi(nowStep); step != mess.StepCount {
			continue
		}

		summaryKey := message.MoveSummaryKey{
			GameUid: mess.GameUid,
			Step:    mess.StepCount,
		}

		for _, summary := range Summarize(mess) {
			summarizedKey := message.StepHasBeenSummarizedKey{
				GameUid: mess.GameUid,
				Step:    mess.StepCount,
				Player:  summary.Player,
			}

			done, err := RedisClient.Get(summarizedKey.String())
			if err != nil {
				return err
			}

			if done != "" {
				continue
			}

			Pusher.AddMessages(SummaryMessage{
				MoveSummaryKey:   summaryKey,
				MoveSummaryValue: summary,
				RollBackFunc: func() {
					RollBack(NowPartition.ListKey(), m)
				},
			})

			if err = RedisClient.Setex(summarizedKey.String(), summary.String(), 240); err != nil {
				return err
			}
		}

		if err = RedisClient.Expire(summaryKey.String(), SetExpireTime); err != nil {
			return err
		}
	}
}
