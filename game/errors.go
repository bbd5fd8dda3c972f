package game

import "errors"

var (
	ErrMalformedState = errors.New("malformed state")
	ErrIllegalMove    = errors.New("illegal move")
	ErrNoLegalMove    = errors.New("no legal move")
)
