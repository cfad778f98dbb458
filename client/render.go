package main

import (
	"fmt"
	"strings"

	"github.com/HuXin0817/blokus-duo/pkg/models/duo"
	"github.com/logrusorgru/aurora"
)

func renderBoard(b duo.Board) string {
	var builder strings.Builder
	for i := 0; i < duo.BoardSize; i++ {
		for j := 0; j < duo.BoardSize; j++ {
			switch b[i][j] {
			case duo.Blue:
				builder.WriteString(aurora.Blue("■ ").String())
			case duo.Orange:
				builder.WriteString(aurora.Yellow("■ ").String())
			default:
				builder.WriteString(". ")
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func renderResult(g *duo.Game) string {
	return fmt.Sprintf("winner: %s (blue %d - orange %d)",
		g.Winner(), g.ScoreOf(duo.Blue), g.ScoreOf(duo.Orange))
}
