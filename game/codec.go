package game

import (
	"fmt"
	"strings"
)

// Encode writes one character per cell ('.' or a piece letter, upper case for
// Red) followed by the side-to-move marker 'R' or 'B'.
func Encode(gs *GameState) string {
	return gs.String()
}

func (gs *GameState) String() string {
	var sb strings.Builder
	sb.Grow(len(gs.cells) + 1)
	for _, cell := range gs.cells {
		sb.WriteByte(cell.Symbol())
	}
	sb.WriteByte(gs.toMove.Marker())
	return sb.String()
}

// Decode parses an encoded state for the standard board.
func Decode(s string) (*GameState, error) {
	return Standard.Decode(s)
}

// Decode parses an encoded state for this board. Any structural problem is
// reported as ErrMalformedState; nothing is repaired.
func (b Board) Decode(s string) (*GameState, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	if len(s) != b.Cells()+1 {
		return nil, fmt.Errorf("%w: length %d, want %d for a %s board", ErrMalformedState, len(s), b.Cells()+1, b)
	}

	var toMove Color
	switch marker := s[len(s)-1]; marker {
	case 'R':
		toMove = Red
	case 'B':
		toMove = Blue
	default:
		return nil, fmt.Errorf("%w: side marker %q", ErrMalformedState, marker)
	}

	cells := make([]Cell, b.Cells())
	for i := 0; i < b.Cells(); i++ {
		cell, ok := parseCell(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: symbol %q at %d", ErrMalformedState, s[i], i)
		}
		cells[i] = cell
	}
	return &GameState{board: b, cells: cells, toMove: toMove}, nil
}

// MustDecode is Decode for literals known to be valid.
func MustDecode(s string) *GameState {
	gs, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return gs
}

func parseCell(ch byte) (Cell, bool) {
	if ch == '.' {
		return Empty, true
	}
	color := Blue
	lower := ch
	if ch >= 'A' && ch <= 'Z' {
		color = Red
		lower = ch - 'A' + 'a'
	}
	for _, k := range kinds {
		if k.Symbol() == lower {
			return Occupied(Piece{Kind: k, Color: color}), true
		}
	}
	return Empty, false
}
