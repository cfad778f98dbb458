package duo

const DrawResult = "draw"

// Score sums the cell counts of the remaining pieces. Lower is better;
// zero is a perfect game.
func Score(remainingPieceIDs []int) (score int) {
	for _, id := range remainingPieceIDs {
		score += PieceByID(id).Size()
	}
	return
}

// Winner compares remaining scores once both players are done.
func Winner(blueRemaining, orangeRemaining []int) string {
	blueScore := Score(blueRemaining)
	orangeScore := Score(orangeRemaining)

	switch {
	case blueScore < orangeScore:
		return Blue.String()
	case orangeScore < blueScore:
		return Orange.String()
	}
	return DrawResult
}
