// Package models defines data structures for hyperlink suffix extraction.
package models

// Grid is the extraction result, rows outer and columns inner, in the
// row-major order of the source range.
type Grid [][]string

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns (0 for an empty grid).
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}
