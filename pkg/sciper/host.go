package sciper

import (
	"fmt"

	"github.com/Dicedead/adrvote/pkg/sciper/models"
	"github.com/Dicedead/adrvote/pkg/sciper/parser"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Host is the execution context of an extraction: it knows the formula of
// the invocation cell and resolves references to hyperlink URLs.
type Host interface {
	// Formula returns the literal formula text of the invocation cell.
	Formula() (string, error)
	// Links resolves ref and returns the hyperlink URL of each of its cells,
	// row-major, with "" for cells without a hyperlink.
	Links(ref string) ([][]string, error)
}

// WorkbookHost is a Host backed by an open workbook.
type WorkbookHost struct {
	f       *excelize.File
	sheet   string
	cell    string
	formula string
	opts    Options
}

// NewWorkbookHost binds an invocation to a workbook. An empty sheet selects
// the active sheet and an empty cell the active cell of that sheet.
func NewWorkbookHost(f *excelize.File, inv models.Invocation, opts Options) (*WorkbookHost, error) {
	sheet := inv.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	cell := inv.Cell
	if cell == "" {
		active, err := parser.ActiveCell(f, sheet)
		if err != nil {
			return nil, NewExtractionError(sheet, "formula", "", err)
		}
		cell = active
	}

	return &WorkbookHost{
		f:       f,
		sheet:   sheet,
		cell:    cell,
		formula: inv.Formula,
		opts:    opts,
	}, nil
}

// Sheet returns the sheet of the invocation.
func (h *WorkbookHost) Sheet() string {
	return h.sheet
}

// Cell returns the invocation cell, possibly empty when a formula override
// was supplied and the workbook records no active cell.
func (h *WorkbookHost) Cell() string {
	return h.cell
}

// Formula implements Host.
func (h *WorkbookHost) Formula() (string, error) {
	if h.formula != "" {
		return h.formula, nil
	}
	if h.cell == "" {
		return "", NewExtractionError(h.sheet, "formula", "", ErrNoInvocationCell)
	}

	formula, err := h.f.GetCellFormula(h.sheet, h.cell)
	if err != nil {
		return "", NewExtractionError(h.sheet, "formula", h.cell, err)
	}
	if formula == "" {
		return "", NewExtractionError(h.sheet, "formula", h.cell, ErrNoFormula)
	}
	return formula, nil
}

// Links implements Host.
func (h *WorkbookHost) Links(ref string) ([][]string, error) {
	sheet, area, err := parser.ResolveReference(h.f, h.sheet, ref)
	if err != nil {
		return nil, NewExtractionError(h.sheet, "range", ref, err)
	}
	if limit := h.opts.maxCells(); area.Size() > limit {
		return nil, NewExtractionError(sheet, "range", ref,
			fmt.Errorf("%w: %d cells exceeds limit %d", ErrRangeTooLarge, area.Size(), limit))
	}

	h.opts.logger().WithFields(logrus.Fields{
		"sheet": sheet,
		"ref":   ref,
		"rows":  area.Rows(),
		"cols":  area.Cols(),
	}).Debug("resolved reference")

	links, err := parser.ExtractLinks(h.f, sheet, area, h.opts.FormulaLinks)
	if err != nil {
		return nil, NewExtractionError(sheet, "links", ref, err)
	}
	return links, nil
}
