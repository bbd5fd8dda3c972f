package game

// LegalMoves returns every legal move for the side to move, ordered by
// ascending From and then ascending To. The search relies on this order to
// break ties deterministically.
func (gs *GameState) LegalMoves() []Move {
	var moves []Move
	for from, cell := range gs.cells {
		if !cell.Holds(gs.toMove) {
			continue
		}
		for to := range gs.cells {
			if gs.IsLegal(from, to) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// HasLegalMove reports whether LegalMoves would be non-empty without building
// the list.
func (gs *GameState) HasLegalMove() bool {
	for from, cell := range gs.cells {
		if !cell.Holds(gs.toMove) {
			continue
		}
		for to := range gs.cells {
			if gs.IsLegal(from, to) {
				return true
			}
		}
	}
	return false
}
