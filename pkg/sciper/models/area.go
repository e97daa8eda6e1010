package models

// Area represents cell coordinate bounds of a rectangular range.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Normalize swaps corners so that R1 <= R2 and C1 <= C2.
func (a Area) Normalize() Area {
	if a.R1 > a.R2 {
		a.R1, a.R2 = a.R2, a.R1
	}
	if a.C1 > a.C2 {
		a.C1, a.C2 = a.C2, a.C1
	}
	return a
}

// Rows returns the row count of the area.
func (a Area) Rows() int {
	return a.R2 - a.R1 + 1
}

// Cols returns the column count of the area.
func (a Area) Cols() int {
	return a.C2 - a.C1 + 1
}

// Size returns the number of cells covered.
func (a Area) Size() int {
	return a.Rows() * a.Cols()
}
