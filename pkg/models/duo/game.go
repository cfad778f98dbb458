package duo

import "sort"

// Game tracks one match: the board, both players' piece trays, whose turn it
// is and the consecutive-pass count. Unlike the rest of the package, Add and
// Pass mutate the receiver.
type Game struct {
	Board
	Remaining map[Player]map[int]struct{}
	NowPlayer Player
	Passes    int
	Steps     int
}

func NewGame() *Game {
	remaining := map[Player]map[int]struct{}{
		Blue:   make(map[int]struct{}),
		Orange: make(map[int]struct{}),
	}
	for _, p := range Pieces {
		remaining[Blue][p.ID] = struct{}{}
		remaining[Orange][p.ID] = struct{}{}
	}

	return &Game{
		Board:     NewBoard(),
		Remaining: remaining,
		NowPlayer: Blue,
	}
}

func (g *Game) RemainingIDs(p Player) (ids []int) {
	for id := range g.Remaining[p] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return
}

// Add plays the current player's piece. It refuses pieces already spent,
// cell counts that do not match the piece, and anything IsValidPlacement
// rejects; the game state is untouched on refusal.
func (g *Game) Add(pieceID int, cells Shape) bool {
	if pieceID < 0 || pieceID >= len(Pieces) {
		return false
	}

	if _, c := g.Remaining[g.NowPlayer][pieceID]; !c {
		return false
	}

	if len(cells) != Pieces[pieceID].Size() {
		return false
	}

	if !IsValidPlacement(g.Board, cells, g.NowPlayer) {
		return false
	}

	g.Board.Stamp(cells, g.NowPlayer)
	delete(g.Remaining[g.NowPlayer], pieceID)
	g.Passes = 0
	g.Steps++
	g.NowPlayer = g.NowPlayer.Opponent()
	return true
}

func (g *Game) Pass() {
	g.Passes++
	g.Steps++
	g.NowPlayer = g.NowPlayer.Opponent()
}

func (g *Game) MustPass() bool {
	return !HasValidMoves(g.Board, g.RemainingIDs(g.NowPlayer), g.NowPlayer)
}

// Over reports the end condition: two consecutive passes, or no legal move
// left for either player.
func (g *Game) Over() bool {
	if g.Passes >= 2 {
		return true
	}

	return !HasValidMoves(g.Board, g.RemainingIDs(Blue), Blue) &&
		!HasValidMoves(g.Board, g.RemainingIDs(Orange), Orange)
}

func (g *Game) Winner() string {
	return Winner(g.RemainingIDs(Blue), g.RemainingIDs(Orange))
}

func (g *Game) ScoreOf(p Player) int {
	return Score(g.RemainingIDs(p))
}
