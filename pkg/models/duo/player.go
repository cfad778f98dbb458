package duo

type Player uint8

const (
	Nobody Player = 0
	Blue   Player = 1
	Orange Player = 2
)

func (p Player) String() string {
	switch p {
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	}
	return ""
}

func (p Player) Opponent() Player {
	switch p {
	case Blue:
		return Orange
	case Orange:
		return Blue
	}
	return Nobody
}

// StartCell is the fixed first-move cell of the 14x14 variant.
func (p Player) StartCell() Cell {
	if p == Orange {
		return NewCell(9, 9)
	}
	return NewCell(4, 4)
}
