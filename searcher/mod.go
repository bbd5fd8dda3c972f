// Package searcher picks moves with a fixed-depth minimax over game states.
package searcher

import "fmt"

// Bound marks a Value that stands in for an unbounded score. A node whose
// side has no legal move cannot be scored, so it reports which side stalled
// instead of a numeric sentinel.
type Bound int8

const (
	MaxStalled Bound = -1 // The maximizer had no move: worse than any score
	Exact      Bound = 0
	MinStalled Bound = 1 // The minimizer had no move: better than any score
)

// Value is a minimax result. Values order as MaxStalled < every exact score <
// MinStalled; Score is only meaningful for exact values.
type Value struct {
	Score int
	Bound Bound
}

var (
	NegInf = Value{Bound: MaxStalled}
	PosInf = Value{Bound: MinStalled}
)

func ExactValue(score int) Value {
	return Value{Score: score}
}

func (v Value) IsExact() bool {
	return v.Bound == Exact
}

// Cmp returns -1, 0 or +1 as v is less than, equal to or greater than o.
func (v Value) Cmp(o Value) int {
	if v.Bound != o.Bound {
		if v.Bound < o.Bound {
			return -1
		}
		return 1
	}
	if v.Bound != Exact || v.Score == o.Score {
		return 0
	}
	if v.Score < o.Score {
		return -1
	}
	return 1
}

func (v Value) String() string {
	switch v.Bound {
	case MaxStalled:
		return "-inf"
	case MinStalled:
		return "+inf"
	default:
		return fmt.Sprint(v.Score)
	}
}
