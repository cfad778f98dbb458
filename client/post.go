package main

import (
	"context"
	"log"

	"github.com/HuXin0817/blokus-duo/pkg/models/duo"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/serve/serveclient"
)

var ServeClient serveclient.Serve

// postPlacement reports the move it is about to commit; the serve side
// re-validates with the same engine, so a rejection here means the two call
// sites disagree and the client state can no longer be trusted.
func postPlacement(GameUid message.GameUid, g *duo.Game, pieceID int, cells duo.Shape) {
	r := &serveclient.PlacementRequest{
		GameUid:         string(GameUid),
		StepCount:       g.Steps,
		Board:           g.Board,
		Player:          g.NowPlayer,
		PieceID:         pieceID,
		Cells:           cells,
		BlueRemaining:   g.RemainingIDs(duo.Blue),
		OrangeRemaining: g.RemainingIDs(duo.Orange),
	}

	resp, err := ServeClient.PostPlacement(context.Background(), r)
	if err != nil {
		log.Panicln(err)
	}

	if !resp.Valid {
		log.Panicf("serve rejected a locally validated placement: game %s step %d", GameUid, g.Steps)
	}
}

func postGameOver(GameUid message.GameUid, g *duo.Game) {
	r := &serveclient.PlacementRequest{
		GameUid:         string(GameUid),
		StepCount:       g.Steps,
		Board:           g.Board,
		Player:          g.NowPlayer,
		BlueRemaining:   g.RemainingIDs(duo.Blue),
		OrangeRemaining: g.RemainingIDs(duo.Orange),
		GameOver:        true,
	}

	if _, err := ServeClient.PostPlacement(context.Background(), r); err != nil {
		log.Panicln(err)
	}
}
