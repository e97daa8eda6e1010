package parser

import (
	"github.com/Dicedead/adrvote/pkg/sciper/models"
	"github.com/xuri/excelize/v2"
)

// UsedArea returns the bounding box of non-empty cells in a sheet.
// ok is false when the sheet holds no values.
func UsedArea(f *excelize.File, sheetName string) (area models.Area, ok bool, err error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Area{}, false, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Area{}, false, nil
	}

	return models.Area{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}, true, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
