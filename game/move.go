package game

import "fmt"

// Move relocates the piece at From to To, capturing any occupant of To.
type Move struct {
	From Position
	To   Position
}

func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.From, m.To)
}
