// Package sheet provides the table store behind the spreadsheet grid.
//
// Values are held column-major: the store is a slice of columns and each
// column is a slice of row values. Sorting or splicing a column touches one
// outer element, while row operations touch one slot in every column.
//
// Positions passed to Get, Set and the structural operations are expected to
// come from rendered cells, which are always in range. An out-of-range
// position is a programming error and panics, the same way an out-of-range
// slice index does.
package sheet
