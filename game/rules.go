package game

// IsLegal reports whether the side to move may move the piece on from to to.
// Off-board positions and impossible geometry are simply illegal.
func (gs *GameState) IsLegal(from, to Position) bool {
	if from == to || !gs.board.Contains(from) || !gs.board.Contains(to) {
		return false
	}

	mover, ok := gs.cells[from].Piece()
	if !ok || mover.Color != gs.toMove {
		return false
	}
	// Same-color capture is forbidden; an enemy piece is a target.
	if gs.cells[to].Holds(mover.Color) {
		return false
	}

	fromRow, fromCol := gs.board.Coords(from)
	toRow, toCol := gs.board.Coords(to)
	dr := abs(toRow - fromRow)
	dc := abs(toCol - fromCol)

	switch mover.Kind {
	case Sphinx:
		// One step in any direction, diagonals included.
		return dr <= 1 && dc <= 1
	case Centaur:
		// Jumps over anything in between.
		return (dr == 2 && dc == 0) || (dr == 0 && dc == 2)
	case Yeti:
		if dr != dc || dr > 2 {
			return false
		}
		return gs.diagonalClear(fromRow, fromCol, toRow, toCol)
	case Gnome:
		return dr == 1 && dc == 1
	default:
		return false
	}
}

// diagonalClear reports whether every cell strictly between the two ends of a
// diagonal is empty.
func (gs *GameState) diagonalClear(fromRow, fromCol, toRow, toCol int) bool {
	rowStep := sign(toRow - fromRow)
	colStep := sign(toCol - fromCol)
	for r, c := fromRow+rowStep, fromCol+colStep; r != toRow && c != toCol; r, c = r+rowStep, c+colStep {
		if !gs.cells[gs.board.Index(r, c)].IsEmpty() {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
