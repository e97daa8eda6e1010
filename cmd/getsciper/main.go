// Package main provides the CLI entry point for getsciper.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/Dicedead/adrvote/pkg/sciper"
	"github.com/Dicedead/adrvote/pkg/sciper/models"
	"github.com/Dicedead/adrvote/pkg/sciper/output"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	outputPath   string
	pretty       bool
	format       string
	sheetName    string
	cellName     string
	formula      string
	rangeRef     string
	marker       string
	missing      string
	formulaLinks bool
	maxCells     int
	spill        bool
	spillAt      string
	saveAs       string
	verbose      bool
	noColor      bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "getsciper [input.xlsx]",
		Short: "Extract SCIPER numbers from cell hyperlinks",
		Long: `getsciper reads the hyperlinks of a range of cells and outputs the part of
each URL after the first "=". The range is taken from the formula of the
invocation cell, e.g. =GetSciper(A2:A40), or given directly with --range.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			color.NoColor = color.NoColor || noColor
			logrus.SetOutput(os.Stderr)
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&format, "format", output.FormatJSON, "Output format: json, csv, tsv")
	flags.StringVar(&sheetName, "sheet", "", "Sheet of the invocation cell (default: active sheet)")
	flags.StringVar(&cellName, "cell", "", "Invocation cell holding the formula (default: active cell)")
	flags.StringVar(&formula, "formula", "", "Formula text to parse instead of reading the invocation cell")
	flags.StringVar(&rangeRef, "range", "", "Range reference to read directly, skipping formula parsing")
	flags.StringVar(&marker, "marker", "=", "Marker after which the URL suffix is taken")
	flags.StringVar(&missing, "missing", string(sciper.MissingDropFirst), "Value for URLs without the marker: drop-first, whole, empty")
	flags.BoolVar(&formulaLinks, "formula-links", false, "Also read URLs from HYPERLINK() formulas")
	flags.IntVar(&maxCells, "max-cells", sciper.DefaultMaxCells, "Maximum number of cells in the range")
	flags.BoolVar(&spill, "spill", false, "Write the result back into the workbook")
	flags.StringVar(&spillAt, "spill-at", "", "Top-left cell of the spilled result (required with --spill)")
	flags.StringVar(&saveAs, "save-as", "", "Save the spilled workbook to this path (default: overwrite input)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	policy, err := sciper.ParseMissing(missing)
	if err != nil {
		return err
	}
	if spill && spillAt == "" {
		return fmt.Errorf("--spill requires --spill-at")
	}

	opts := sciper.DefaultOptions()
	opts.Marker = marker
	opts.Missing = policy
	opts.FormulaLinks = formulaLinks
	opts.MaxCells = maxCells
	opts.Logger = logrus.StandardLogger()

	f, err := sciper.OpenWorkbook(inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	host, err := sciper.NewWorkbookHost(f, models.Invocation{
		Sheet:   sheetName,
		Cell:    cellName,
		Formula: formula,
	}, opts)
	if err != nil {
		return err
	}

	log := logrus.WithFields(logrus.Fields{"file": inputPath, "sheet": host.Sheet(), "cell": host.Cell()})

	// Extract data
	var grid models.Grid
	if rangeRef != "" {
		grid, err = sciper.ExtractRef(host, rangeRef, opts)
	} else {
		grid, err = sciper.ExtractFrom(host, opts)
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	log.WithField("rows", grid.Rows()).WithField("cols", grid.Cols()).Debug("extraction complete")

	// Render
	var buf bytes.Buffer
	if err := output.Write(&buf, grid, format, pretty); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return err
	}

	if spill {
		if err := sciper.Spill(f, host.Sheet(), spillAt, grid); err != nil {
			return fmt.Errorf("failed to spill result: %w", err)
		}
		target := saveAs
		if target == "" {
			target = inputPath
		}
		if err := f.SaveAs(target); err != nil {
			return fmt.Errorf("failed to save workbook: %w", err)
		}
		log.WithField("target", target).Info("spilled result")
	}

	return nil
}
