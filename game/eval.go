package game

// Value is the material worth of the kind from Red's side; Blue pieces count
// the negation.
func (k Kind) Value() int {
	switch k {
	case Sphinx:
		return 10
	case Centaur:
		return 5
	case Yeti:
		return 4
	case Gnome:
		return 2
	default:
		return 0
	}
}

// EvaluateMaterial sums piece values, Red positive and Blue negative. There is
// no positional term and the side to move does not count.
func EvaluateMaterial(gs *GameState) int {
	score := 0
	for _, cell := range gs.cells {
		piece, ok := cell.Piece()
		if !ok {
			continue
		}
		if piece.Color == Red {
			score += piece.Kind.Value()
		} else {
			score -= piece.Kind.Value()
		}
	}
	return score
}
