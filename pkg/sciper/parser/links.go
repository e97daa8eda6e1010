package parser

import (
	"github.com/Dicedead/adrvote/pkg/sciper/models"
	"github.com/xuri/excelize/v2"
)

// ExtractLinks reads the hyperlink URL of every cell in area, row-major.
// Cells without a hyperlink yield "". With formulaLinks, a cell lacking a
// hyperlink falls back to the URL of a HYPERLINK() formula.
func ExtractLinks(f *excelize.File, sheetName string, area models.Area, formulaLinks bool) ([][]string, error) {
	links := make([][]string, 0, area.Rows())
	for row := area.R1; row <= area.R2; row++ {
		rowLinks := make([]string, 0, area.Cols())
		for col := area.C1; col <= area.C2; col++ {
			cellName, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			target, err := cellLink(f, sheetName, cellName, formulaLinks)
			if err != nil {
				return nil, err
			}
			rowLinks = append(rowLinks, target)
		}
		links = append(links, rowLinks)
	}
	return links, nil
}

func cellLink(f *excelize.File, sheetName, cellName string, formulaLinks bool) (string, error) {
	hasLink, target, err := f.GetCellHyperLink(sheetName, cellName)
	if err != nil {
		return "", err
	}
	if hasLink {
		return target, nil
	}
	if !formulaLinks {
		return "", nil
	}

	formula, err := f.GetCellFormula(sheetName, cellName)
	if err != nil {
		return "", err
	}
	if url, ok := HyperlinkFormulaURL(formula); ok {
		return url, nil
	}
	return "", nil
}

// ActiveCell returns the active cell recorded in the sheet view selection,
// or "" when the workbook stores none.
func ActiveCell(f *excelize.File, sheetName string) (string, error) {
	panes, err := f.GetPanes(sheetName)
	if err != nil {
		return "", err
	}
	for _, sel := range panes.Selection {
		if sel.ActiveCell != "" {
			return sel.ActiveCell, nil
		}
	}
	return "", nil
}
