package models

// Invocation describes the cell a GetSciper-style formula was entered in.
type Invocation struct {
	// Sheet is the sheet holding the invocation cell. Empty means the active sheet.
	Sheet string `json:"sheet,omitempty"`
	// Cell is the invocation cell (e.g. "C1"). Empty means the active cell.
	Cell string `json:"cell,omitempty"`
	// Formula overrides the formula text read from Cell when non-empty.
	Formula string `json:"formula,omitempty"`
}
