package game

// Color identifies a side. Red pieces are written in upper case on the wire,
// Blue pieces in lower case.
type Color int

const (
	Red Color = iota
	Blue
)

func (c Color) Opponent() Color {
	if c == Red {
		return Blue
	}
	return Red
}

// Marker is the trailing side-to-move character of an encoded state.
func (c Color) Marker() byte {
	if c == Red {
		return 'R'
	}
	return 'B'
}

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Blue"
}

type Kind int

const (
	Sphinx Kind = iota
	Centaur
	Yeti
	Gnome
)

var kinds = [...]Kind{Sphinx, Centaur, Yeti, Gnome}

// Symbol returns the lower case letter used for the kind on the wire.
func (k Kind) Symbol() byte {
	switch k {
	case Sphinx:
		return 's'
	case Centaur:
		return 'c'
	case Yeti:
		return 'y'
	case Gnome:
		return 'g'
	default:
		return '?'
	}
}

func (k Kind) String() string {
	switch k {
	case Sphinx:
		return "Sphinx"
	case Centaur:
		return "Centaur"
	case Yeti:
		return "Yeti"
	case Gnome:
		return "Gnome"
	default:
		return "Unknown"
	}
}

// Description is the player-facing rule text for the kind. It is kept as
// shown to players even where it differs from IsLegal: the Sphinx text omits
// diagonal steps and the Yeti text claims three squares, while the checked
// geometry allows a diagonal Sphinx step and caps the Yeti at two.
func (k Kind) Description() string {
	switch k {
	case Sphinx:
		return "Moves 1 square forward, backward, left, and right"
	case Centaur:
		return "Jumps forward, backward, left, and right 2 squares (can jump over other pieces)"
	case Yeti:
		return "Can move diagonally up to 3 squares."
	case Gnome:
		return "Can move any direction diagonally one square"
	default:
		return ""
	}
}

// Piece is a kind paired with the side owning it.
type Piece struct {
	Kind  Kind
	Color Color
}

// Symbol returns the wire letter, upper case for Red.
func (p Piece) Symbol() byte {
	s := p.Kind.Symbol()
	if p.Color == Red {
		return s - 'a' + 'A'
	}
	return s
}

func (p Piece) String() string {
	return p.Color.String() + " " + p.Kind.String()
}

// Cell is either empty (the zero value) or holds exactly one piece.
type Cell struct {
	piece    Piece
	occupied bool
}

var Empty = Cell{}

func Occupied(p Piece) Cell {
	return Cell{piece: p, occupied: true}
}

func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// Piece returns the occupant and whether there is one.
func (c Cell) Piece() (Piece, bool) {
	return c.piece, c.occupied
}

// Holds reports whether the cell is occupied by a piece of the given color.
func (c Cell) Holds(color Color) bool {
	return c.occupied && c.piece.Color == color
}

// Symbol returns the wire character for the cell, '.' when empty.
func (c Cell) Symbol() byte {
	if !c.occupied {
		return '.'
	}
	return c.piece.Symbol()
}

// RulesText lists every kind with its description, one per line.
func RulesText() []string {
	lines := make([]string, 0, len(kinds)+1)
	for _, k := range kinds {
		lines = append(lines, k.String()+": "+k.Description())
	}
	return append(lines, "All Pieces Take Other Pieces By Moving Onto Them")
}
