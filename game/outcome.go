package game

type Outcome int

const (
	Ongoing Outcome = iota
	RedWins
	BlueWins
)

func (o Outcome) String() string {
	switch o {
	case RedWins:
		return "Red wins"
	case BlueWins:
		return "Blue wins"
	default:
		return "Ongoing"
	}
}

// Winner returns the winning side when the outcome is decided.
func (o Outcome) Winner() (Color, bool) {
	switch o {
	case RedWins:
		return Red, true
	case BlueWins:
		return Blue, true
	default:
		return Red, false
	}
}

// WinFor is the outcome in which color wins.
func WinFor(color Color) Outcome {
	if color == Red {
		return RedWins
	}
	return BlueWins
}

// HasNoPieces reports whether color has been eliminated.
func (gs *GameState) HasNoPieces(color Color) bool {
	for _, cell := range gs.cells {
		if cell.Holds(color) {
			return false
		}
	}
	return true
}

// IsGameOver decides the game by elimination only. Red's absence is checked
// first, so a board with no pieces at all reports BlueWins.
func (gs *GameState) IsGameOver() Outcome {
	if gs.HasNoPieces(Red) {
		return BlueWins
	}
	if gs.HasNoPieces(Blue) {
		return RedWins
	}
	return Ongoing
}
