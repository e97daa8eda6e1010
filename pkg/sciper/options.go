// Package sciper extracts identifier suffixes from the hyperlinks of a
// workbook range named by a GetSciper-style formula.
package sciper

import (
	"fmt"
	"io"

	"github.com/Dicedead/adrvote/pkg/sciper/parser"
	"github.com/sirupsen/logrus"
)

// Missing selects the value derived from a hyperlink lacking the marker.
type Missing string

const (
	// MissingDropFirst drops the first character of the URL.
	MissingDropFirst Missing = parser.MissingDropFirst
	// MissingWhole keeps the URL unchanged.
	MissingWhole Missing = parser.MissingWhole
	// MissingEmpty yields an empty string.
	MissingEmpty Missing = parser.MissingEmpty
)

// DefaultMaxCells caps the number of cells a single reference may cover.
const DefaultMaxCells = 100000

// Options configures extraction behavior.
type Options struct {
	// Marker separates the URL prefix from the extracted suffix. Defaults to "=".
	Marker string
	// Missing decides the value for URLs without the marker.
	// Defaults to MissingDropFirst.
	Missing Missing
	// FormulaLinks enables reading URLs from HYPERLINK() formulas for cells
	// that carry no hyperlink.
	FormulaLinks bool
	// MaxCells caps the resolved area. Zero means DefaultMaxCells.
	MaxCells int
	// Logger receives debug traces. Nil discards them.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Marker:   parser.DefaultMarker,
		Missing:  MissingDropFirst,
		MaxCells: DefaultMaxCells,
	}
}

// ParseMissing converts a flag value into a Missing policy.
func ParseMissing(s string) (Missing, error) {
	switch Missing(s) {
	case MissingDropFirst, MissingWhole, MissingEmpty:
		return Missing(s), nil
	default:
		return "", fmt.Errorf("invalid missing-marker policy: %s (must be drop-first, whole, or empty)", s)
	}
}

func (o Options) marker() string {
	if o.Marker == "" {
		return parser.DefaultMarker
	}
	return o.Marker
}

func (o Options) missing() string {
	if o.Missing == "" {
		return string(MissingDropFirst)
	}
	return string(o.Missing)
}

func (o Options) maxCells() int {
	if o.MaxCells <= 0 {
		return DefaultMaxCells
	}
	return o.MaxCells
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
