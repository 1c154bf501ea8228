package sheet

import "fmt"

// Position identifies a cell by zero-based row and column.
type Position struct {
	Row int
	Col int
}

// NewPosition creates a position.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns the position in "<row>-<col>" form.
func (p Position) String() string {
	return fmt.Sprintf("%d-%d", p.Row, p.Col)
}

// Dimensions is the (rows, cols) shape of a store.
type Dimensions struct {
	Rows int
	Cols int
}

// Contains reports whether pos lies inside the dimensions.
func (d Dimensions) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < d.Rows && pos.Col >= 0 && pos.Col < d.Cols
}
