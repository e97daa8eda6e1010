package sciper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Dicedead/adrvote/pkg/sciper/models"
	"github.com/Dicedead/adrvote/pkg/sciper/parser"
	"github.com/xuri/excelize/v2"
)

// Extract opens a workbook and extracts link suffixes for the range named
// in the formula of the invocation cell.
func Extract(path string, inv models.Invocation, opts Options) (models.Grid, error) {
	f, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	host, err := NewWorkbookHost(f, inv, opts)
	if err != nil {
		return nil, err
	}
	return ExtractFrom(host, opts)
}

// ExtractRange opens a workbook and extracts link suffixes for ref on the
// given sheet, without reading any formula.
func ExtractRange(path, sheet, ref string, opts Options) (models.Grid, error) {
	f, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	host, err := NewWorkbookHost(f, models.Invocation{Sheet: sheet}, opts)
	if err != nil {
		return nil, err
	}
	return ExtractRef(host, ref, opts)
}

// ExtractFrom reads the invocation formula from h, takes the text between
// its first "(" and first ")" as a reference and extracts link suffixes for
// that reference.
func ExtractFrom(h Host, opts Options) (models.Grid, error) {
	formula, err := h.Formula()
	if err != nil {
		return nil, err
	}

	ref, ok := parser.RangeArgument(formula)
	if !ok {
		return nil, fmt.Errorf("%w in formula %q", ErrNoRangeArgument, formula)
	}
	opts.logger().WithField("formula", formula).WithField("ref", ref).Debug("parsed range argument")

	return ExtractRef(h, ref, opts)
}

// ExtractRef extracts link suffixes for ref. The grid has the shape of the
// resolved range.
func ExtractRef(h Host, ref string, opts Options) (models.Grid, error) {
	links, err := h.Links(ref)
	if err != nil {
		return nil, err
	}
	return deriveGrid(links, opts), nil
}

// OpenWorkbook opens an xlsx file, classifying failures as ErrFileNotFound
// or ErrInvalidFormat.
func OpenWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return f, nil
}

func deriveGrid(links [][]string, opts Options) models.Grid {
	marker, missing := opts.marker(), opts.missing()

	grid := make(models.Grid, len(links))
	for i, row := range links {
		grid[i] = make([]string, len(row))
		for j, url := range row {
			grid[i][j] = parser.Suffix(url, marker, missing)
		}
	}
	return grid
}
