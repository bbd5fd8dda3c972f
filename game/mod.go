// Package game holds the board model, move rules and scoring for the
// Sphinx/Centaur/Yeti/Gnome game. Every operation is a pure function of an
// immutable GameState.
package game

// Evaluate scores a state; positive favours Red, negative favours Blue.
type Evaluate func(*GameState) int
