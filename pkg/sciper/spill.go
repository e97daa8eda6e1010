package sciper

import (
	"strings"

	"github.com/Dicedead/adrvote/pkg/sciper/models"
	"github.com/xuri/excelize/v2"
)

// Spill writes grid into sheetName with its top-left value at anchor,
// the way a spreadsheet spills an array result below and right of a cell.
func Spill(f *excelize.File, sheetName, anchor string, grid models.Grid) error {
	col, row, err := excelize.CellNameToCoordinates(strings.ReplaceAll(anchor, "$", ""))
	if err != nil {
		return err
	}

	for i := range grid {
		cell, err := excelize.CoordinatesToCellName(col, row+i)
		if err != nil {
			return err
		}
		values := grid[i]
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return NewExtractionError(sheetName, "spill", cell, err)
		}
	}
	return nil
}
