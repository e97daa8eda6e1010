// Package output renders extraction results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Dicedead/adrvote/pkg/sciper/models"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
)

// ToJSON serializes a grid as a JSON array of string arrays.
// A nil grid serializes as [].
func ToJSON(grid models.Grid, pretty bool) ([]byte, error) {
	if grid == nil {
		grid = models.Grid{}
	}
	if pretty {
		return json.MarshalIndent(grid, "", "  ")
	}
	return json.Marshal(grid)
}

// WriteCSV writes one record per grid row using comma as field separator.
func WriteCSV(w io.Writer, grid models.Grid, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.WriteAll(grid); err != nil {
		return err
	}
	return cw.Error()
}

// Write renders grid in the given format.
func Write(w io.Writer, grid models.Grid, format string, pretty bool) error {
	switch format {
	case FormatJSON, "":
		data, err := ToJSON(grid, pretty)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatCSV:
		return WriteCSV(w, grid, ',')
	case FormatTSV:
		return WriteCSV(w, grid, '\t')
	default:
		return fmt.Errorf("invalid format: %s (must be json, csv, or tsv)", format)
	}
}
