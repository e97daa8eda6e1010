package sciper

import (
	"errors"
	"fmt"

	"github.com/Dicedead/adrvote/pkg/sciper/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoRangeArgument indicates a formula without a parenthesized argument.
var ErrNoRangeArgument = errors.New("no range argument")

// ErrInvalidRange indicates an argument that does not resolve to a rectangle.
var ErrInvalidRange = parser.ErrInvalidReference

// ErrSheetNotFound indicates a sheet missing from the workbook.
var ErrSheetNotFound = parser.ErrUnknownSheet

// ErrNoInvocationCell indicates neither a cell nor an active cell is known.
var ErrNoInvocationCell = errors.New("no invocation cell")

// ErrNoFormula indicates the invocation cell holds no formula.
var ErrNoFormula = errors.New("invocation cell has no formula")

// ErrRangeTooLarge indicates a reference covering more than Options.MaxCells.
var ErrRangeTooLarge = errors.New("range too large")

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string // "formula", "range", "links"
	Ref       string
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("extraction error in sheet %q (%s %s): %v", e.SheetName, e.Component, e.Ref, e.Err)
	}
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component, ref string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Ref:       ref,
		Err:       err,
	}
}
