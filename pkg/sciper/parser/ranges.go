package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Dicedead/adrvote/pkg/sciper/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidReference indicates a reference that does not denote a rectangle.
var ErrInvalidReference = errors.New("invalid range reference")

// ErrUnknownSheet indicates a reference to a sheet missing from the workbook.
var ErrUnknownSheet = errors.New("sheet not found")

// maxNameDepth bounds defined names referring to other defined names.
const maxNameDepth = 4

// ResolveReference resolves a textual reference against a workbook.
// Supported forms: A1, A1:B3, $A$1:$B$3, B3:A1, Sheet!A1:B2, 'My Sheet'!A1,
// whole columns (A:C) and rows (2:4) clamped to the used range, and defined
// names. It returns the sheet the reference points to and its normalized area.
func ResolveReference(f *excelize.File, sheetName, ref string) (string, models.Area, error) {
	return resolveReference(f, sheetName, ref, 0)
}

func resolveReference(f *excelize.File, sheetName, ref string, depth int) (string, models.Area, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")
	if ref == "" || !IsRangeOperand(ref) {
		return "", models.Area{}, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}

	sheet, rangeStr := SplitSheetReference(ref)
	if sheet == "" {
		sheet = sheetName
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return "", models.Area{}, fmt.Errorf("%w: %q", ErrUnknownSheet, sheet)
	}

	if area, ok := parseCellArea(rangeStr); ok {
		return sheet, area, nil
	}

	area, ok, err := parseSpan(f, sheet, rangeStr)
	if err != nil {
		return "", models.Area{}, err
	}
	if ok {
		return sheet, area, nil
	}

	if depth < maxNameDepth {
		if refersTo, found := LookupDefinedName(f, sheet, rangeStr); found {
			return resolveReference(f, sheet, refersTo, depth+1)
		}
	}

	return "", models.Area{}, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
}

// SplitSheetReference splits "Sheet1!A1:B2" or "'My Sheet'!$A$1" into the
// unquoted sheet name and the range part. The sheet is empty when absent.
func SplitSheetReference(ref string) (sheet, rangeStr string) {
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", ref
	}

	sheet = ref[:idx]
	if len(sheet) >= 2 && sheet[0] == '\'' && sheet[len(sheet)-1] == '\'' {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	return sheet, ref[idx+1:]
}

// parseCellArea parses a single cell or a two-corner range like $A$1:$D$10.
func parseCellArea(rangeStr string) (models.Area, bool) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 {
		return models.Area{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Area{}, false
	}
	endCol, endRow := startCol, startRow
	if len(parts) == 2 {
		endCol, endRow, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return models.Area{}, false
		}
	}

	area := models.Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}
	return area.Normalize(), true
}

// parseSpan parses whole-column (A:C) and whole-row (2:4) references. The
// open dimension is clamped to the sheet's used range, starting at 1.
func parseSpan(f *excelize.File, sheetName, rangeStr string) (models.Area, bool, error) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return models.Area{}, false, nil
	}

	if isLetters(parts[0]) && isLetters(parts[1]) {
		c1, err1 := excelize.ColumnNameToNumber(parts[0])
		c2, err2 := excelize.ColumnNameToNumber(parts[1])
		if err1 != nil || err2 != nil {
			return models.Area{}, false, nil
		}
		used, ok, err := UsedArea(f, sheetName)
		if err != nil {
			return models.Area{}, false, err
		}
		lastRow := 1
		if ok {
			lastRow = used.R2
		}
		area := models.Area{R1: 1, C1: c1, R2: lastRow, C2: c2}
		return area.Normalize(), true, nil
	}

	if isDigits(parts[0]) && isDigits(parts[1]) {
		r1, err1 := strconv.Atoi(parts[0])
		r2, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || r1 < 1 || r2 < 1 || r1 > excelize.TotalRows || r2 > excelize.TotalRows {
			return models.Area{}, false, nil
		}
		used, ok, err := UsedArea(f, sheetName)
		if err != nil {
			return models.Area{}, false, err
		}
		lastCol := 1
		if ok {
			lastCol = used.C2
		}
		area := models.Area{R1: r1, C1: 1, R2: r2, C2: lastCol}
		return area.Normalize(), true, nil
	}

	return models.Area{}, false, nil
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
