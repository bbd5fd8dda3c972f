package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

type StateHash uint64

// GameState is the board plus the side to move. It is immutable: Play returns
// a new state and leaves the receiver untouched.
type GameState struct {
	board  Board
	cells  []Cell
	toMove Color
}

var backRank = [...]Kind{Centaur, Yeti, Sphinx, Yeti, Centaur}

// NewGameState returns the starting layout on the given board: each side's
// back rank holds Centaur, Yeti, Sphinx, Yeti, Centaur and the rank in front
// of it three Gnomes, both centred. Red occupies the top rows.
func NewGameState(board Board, toMove Color) (*GameState, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}
	cells := make([]Cell, board.Cells())
	offset := (board.Columns - len(backRank)) / 2
	for i, kind := range backRank {
		col := offset + i
		cells[board.Index(0, col)] = Occupied(Piece{Kind: kind, Color: Red})
		cells[board.Index(board.Rows-1, col)] = Occupied(Piece{Kind: kind, Color: Blue})
	}
	for col := offset + 1; col <= offset+3; col++ {
		cells[board.Index(1, col)] = Occupied(Piece{Kind: Gnome, Color: Red})
		cells[board.Index(board.Rows-2, col)] = Occupied(Piece{Kind: Gnome, Color: Blue})
	}
	return &GameState{board: board, cells: cells, toMove: toMove}, nil
}

// Initial is the standard 6x5 starting position with Red to move.
func Initial() *GameState {
	gs, err := NewGameState(Standard, Red)
	if err != nil {
		panic(err)
	}
	return gs
}

// FromCells builds a state from an explicit cell layout. The slice is copied.
func FromCells(board Board, cells []Cell, toMove Color) (*GameState, error) {
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	if len(cells) != board.Cells() {
		return nil, fmt.Errorf("%w: %d cells for a %s board", ErrMalformedState, len(cells), board)
	}
	if toMove != Red && toMove != Blue {
		return nil, fmt.Errorf("%w: unknown side %d", ErrMalformedState, toMove)
	}
	own := make([]Cell, len(cells))
	copy(own, cells)
	return &GameState{board: board, cells: own, toMove: toMove}, nil
}

func (gs *GameState) Board() Board {
	return gs.board
}

// Player returns the side to move.
func (gs *GameState) Player() Color {
	return gs.toMove
}

// Cell returns the content of pos, Empty when pos is off the board.
func (gs *GameState) Cell(pos Position) Cell {
	if !gs.board.Contains(pos) {
		return Empty
	}
	return gs.cells[pos]
}

// Cells returns a copy of the cell layout.
func (gs *GameState) Cells() []Cell {
	out := make([]Cell, len(gs.cells))
	copy(out, gs.cells)
	return out
}

// Play applies a move and flips the side to move. The move must be legal;
// anything else is a caller bug and panics with ErrIllegalMove. Use TryPlay
// for moves coming from outside the engine.
func (gs *GameState) Play(move Move) *GameState {
	if !gs.IsLegal(move.From, move.To) {
		panic(fmt.Errorf("%w: %s for %s", ErrIllegalMove, move, gs.toMove))
	}
	return gs.play(move)
}

// TryPlay validates from/to and applies the move.
func (gs *GameState) TryPlay(from, to Position) (*GameState, error) {
	if !gs.IsLegal(from, to) {
		return nil, fmt.Errorf("%w: %d->%d for %s", ErrIllegalMove, from, to, gs.toMove)
	}
	return gs.play(Move{From: from, To: to}), nil
}

func (gs *GameState) play(move Move) *GameState {
	cells := make([]Cell, len(gs.cells))
	copy(cells, gs.cells)
	cells[move.To] = cells[move.From]
	cells[move.From] = Empty
	return &GameState{board: gs.board, cells: cells, toMove: gs.toMove.Opponent()}
}

// IsCapture reports whether the move lands on an enemy piece in this state.
func (gs *GameState) IsCapture(move Move) bool {
	return gs.Cell(move.To).Holds(gs.toMove.Opponent())
}

func (gs *GameState) Equal(other *GameState) bool {
	if gs.board != other.board || gs.toMove != other.toMove || len(gs.cells) != len(other.cells) {
		return false
	}
	for i := range gs.cells {
		if gs.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.board.Rows))
	binary.Write(hasher, binary.LittleEndian, int64(gs.board.Columns))
	for _, cell := range gs.cells {
		hasher.Write([]byte{cell.Symbol()})
	}
	hasher.Write([]byte{gs.toMove.Marker()})

	return StateHash(hasher.Sum64())
}

// Grid renders the board one row per line with column and row indices, for
// line-based front ends.
func (gs *GameState) Grid() string {
	var sb strings.Builder
	for row := 0; row < gs.board.Rows; row++ {
		for col := 0; col < gs.board.Columns; col++ {
			pos := gs.board.Index(row, col)
			fmt.Fprintf(&sb, " %c%-3d", gs.cells[pos].Symbol(), pos)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%s to move\n", gs.toMove)
	return sb.String()
}
