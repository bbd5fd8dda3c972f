package searcher

// Depth decrements per recursion. The maximizer steps down one ply, the
// minimizer three; both are configurable through WithDecrements.
const (
	MaxDecrement = 1
	MinDecrement = 3
)
