package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/duo"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/pkg/models/model"
	"github.com/HuXin0817/blokus-duo/serve/serveclient"
)

func main() {
	initConfig()
	ServeClient = serveclient.NewServe(*ServerAddrConf)

	seed := *SeedConf
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	bar := model.NewBar(Games, "Playing...")
	defer bar.Close()

	for i := 0; i < Games; i++ {
		g := playGame(rnd)
		bar.Add(1)

		if Render {
			fmt.Println()
			fmt.Print(renderBoard(g.Board))
			fmt.Println(renderResult(g))
		}
	}
}

// playGame runs one full selfplay match, previewing every move the way an
// interactive client would before committing it.
func playGame(rnd *rand.Rand) *duo.Game {
	GameUid := message.NewGameUid()
	g := duo.NewGame()

	for !g.Over() {
		if g.MustPass() {
			g.Pass()
			continue
		}

		pieceID, placement, ok := pickPlacement(g, rnd)
		if !ok {
			g.Pass()
			continue
		}

		cells := preview(g, pieceID, placement, rnd)

		postPlacement(GameUid, g, pieceID, cells)

		if !g.Add(pieceID, cells) {
			log.Panicf("game %s: engine rejected its own enumeration at step %d", GameUid, g.Steps)
		}
	}

	postGameOver(GameUid, g)
	return g
}

// pickPlacement chooses a random remaining piece with at least one legal
// placement, preferring larger pieces the way human play tends to.
func pickPlacement(g *duo.Game, rnd *rand.Rand) (pieceID int, placement duo.Placement, ok bool) {
	ids := g.RemainingIDs(g.NowPlayer)
	rnd.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	best := -1
	for _, id := range ids {
		if best >= 0 && duo.PieceByID(id).Size() <= duo.PieceByID(best).Size() {
			continue
		}
		if duo.CanPlacePiece(g.Board, id, g.NowPlayer) {
			best = id
		}
	}

	if best < 0 {
		return 0, duo.Placement{}, false
	}

	placements := duo.AllValidPlacements(g.Board, best, g.NowPlayer)
	return best, placements[rnd.Intn(len(placements))], true
}

// preview cycles the chosen placement through a few rotations and a flip,
// exactly as the interactive layer does, and commits wherever it lands.
func preview(g *duo.Game, pieceID int, placement duo.Placement, rnd *rand.Rand) duo.Shape {
	cells := placement.Cells

	for k, n := 0, rnd.Intn(3); k < n; k++ {
		direction := duo.Forward
		if rnd.Intn(2) == 0 {
			direction = duo.Backward
		}

		if next, ok := duo.NextValidOrientation(g.Board, pieceID, cells, g.NowPlayer, direction); ok {
			cells = next.Cells
		}
	}

	if rnd.Intn(4) == 0 {
		if flipped, ok := duo.FlippedOrientation(g.Board, pieceID, cells, g.NowPlayer); ok {
			cells = flipped.Cells
		}
	}

	return cells
}
