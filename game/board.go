package game

import "fmt"

// Position is a row-major cell index in [0, Rows*Columns).
type Position = int

// Board holds the board dimensions. The dimensions are configuration; the
// standard variant is 6 rows by 5 columns.
type Board struct {
	Rows    int
	Columns int
}

var Standard = Board{Rows: 6, Columns: 5}

const (
	// The initial layout needs two home ranks per side and room for the five
	// piece back rank.
	minRows    = 4
	minColumns = 5
	// LegalMoves is quadratic in the cell count.
	maxCells = 1024
)

func (b Board) Validate() error {
	if b.Rows < minRows || b.Columns < minColumns {
		return fmt.Errorf("board %dx%d is smaller than %dx%d", b.Rows, b.Columns, minRows, minColumns)
	}
	if b.Rows*b.Columns > maxCells {
		return fmt.Errorf("board %dx%d exceeds %d cells", b.Rows, b.Columns, maxCells)
	}
	return nil
}

func (b Board) Cells() int {
	return b.Rows * b.Columns
}

func (b Board) Contains(pos Position) bool {
	return pos >= 0 && pos < b.Cells()
}

func (b Board) Index(row, col int) Position {
	return row*b.Columns + col
}

func (b Board) Coords(pos Position) (row, col int) {
	return pos / b.Columns, pos % b.Columns
}

func (b Board) String() string {
	return fmt.Sprintf("%dx%d", b.Rows, b.Columns)
}
