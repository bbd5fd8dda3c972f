// meta/meta.go
package meta

// DEPTH is the search depth the AI plays at. Depth 1 is the fastest.
const DEPTH = 1

// GO_ROUTINES defines the number of goroutines scoring root moves.
const GO_ROUTINES = 1

// MAX_MOVES caps a self-play game; the game is unresolved past it.
const MAX_MOVES = 200

// GAMES defines the number of games per experiment matchup.
const GAMES = 10

// SEED seeds random agents so experiments can be replayed.
const SEED = 1
