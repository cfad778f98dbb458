package logic

import "errors"

var (
	UnknownPlayerErr = errors.New("player must be blue (1) or orange (2)")
	UnknownPieceErr  = errors.New("piece id out of range")
)
