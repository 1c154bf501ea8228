package sheet

import (
	"fmt"
	"slices"
)

// Store is a column-major table of string cell values.
// The empty string is an empty cell.
type Store struct {
	rows    int
	columns [][]string
	order   *comparator
}

// NewStore creates a store holding cols columns of rows empty cells.
func NewStore(rows, cols int) *Store {
	s := &Store{}
	s.Initialize(rows, cols)
	return s
}

// Initialize replaces the contents with cols columns of rows empty cells.
// Negative sizes are treated as zero.
func (s *Store) Initialize(rows, cols int) {
	rows = max(rows, 0)
	cols = max(cols, 0)

	s.rows = rows
	s.columns = make([][]string, cols)
	for c := range s.columns {
		s.columns[c] = make([]string, rows)
	}
}

// Rows returns the number of rows.
func (s *Store) Rows() int {
	return s.rows
}

// Cols returns the number of columns.
func (s *Store) Cols() int {
	return len(s.columns)
}

// Dimensions returns the current shape of the store.
func (s *Store) Dimensions() Dimensions {
	return Dimensions{Rows: s.rows, Cols: len(s.columns)}
}

// Get returns the value at pos.
func (s *Store) Get(pos Position) string {
	s.mustContain(pos)
	return s.columns[pos.Col][pos.Row]
}

// Set writes value at pos.
func (s *Store) Set(pos Position, value string) {
	s.mustContain(pos)
	s.columns[pos.Col][pos.Row] = value
}

// Column returns a copy of column c in row order.
func (s *Store) Column(c int) []string {
	s.mustHaveColumn(c)
	return slices.Clone(s.columns[c])
}

// Row returns a copy of row r in column order.
func (s *Store) Row(r int) []string {
	if r < 0 || r >= s.rows {
		panic(fmt.Sprintf("sheet: row %d out of range [0,%d)", r, s.rows))
	}
	out := make([]string, len(s.columns))
	for c, col := range s.columns {
		out[c] = col[r]
	}
	return out
}

// InsertRow inserts an empty row at index at, shifting later rows down.
// at may equal Rows() to append.
func (s *Store) InsertRow(at int) {
	if at < 0 || at > s.rows {
		panic(fmt.Sprintf("sheet: insert row %d out of range [0,%d]", at, s.rows))
	}
	for c := range s.columns {
		s.columns[c] = slices.Insert(s.columns[c], at, "")
	}
	s.rows++
}

// DeleteRow removes row at from every column.
func (s *Store) DeleteRow(at int) {
	if at < 0 || at >= s.rows {
		panic(fmt.Sprintf("sheet: delete row %d out of range [0,%d)", at, s.rows))
	}
	for c := range s.columns {
		s.columns[c] = slices.Delete(s.columns[c], at, at+1)
	}
	s.rows--
}

// InsertColumn inserts an empty column at index at.
// at may equal Cols() to append.
func (s *Store) InsertColumn(at int) {
	if at < 0 || at > len(s.columns) {
		panic(fmt.Sprintf("sheet: insert column %d out of range [0,%d]", at, len(s.columns)))
	}
	s.columns = slices.Insert(s.columns, at, make([]string, s.rows))
}

// DeleteColumn removes column at.
func (s *Store) DeleteColumn(at int) {
	s.mustHaveColumn(at)
	s.columns = slices.Delete(s.columns, at, at+1)
}

// SortColumn orders the values of column c ascending.
// Numbers come first in numeric order, then other text in collation order,
// then empty cells. Equal values keep their relative order.
func (s *Store) SortColumn(c int) {
	s.mustHaveColumn(c)
	if s.order == nil {
		s.order = newComparator()
	}
	slices.SortStableFunc(s.columns[c], s.order.compare)
}

func (s *Store) mustContain(pos Position) {
	if !s.Dimensions().Contains(pos) {
		panic(fmt.Sprintf("sheet: position %s out of range %dx%d", pos, s.rows, len(s.columns)))
	}
}

func (s *Store) mustHaveColumn(c int) {
	if c < 0 || c >= len(s.columns) {
		panic(fmt.Sprintf("sheet: column %d out of range [0,%d)", c, len(s.columns)))
	}
}
