package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Alice"))
	require.NoError(t, f.SetCellHyperLink("Sheet1", "A1", "https://people.epfl.ch/?id=111111", "External"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Bob"))
	require.NoError(t, f.SetCellHyperLink("Sheet1", "A2", "https://people.epfl.ch/?id=222222", "External"))
	require.NoError(t, f.SetCellFormula("Sheet1", "C1", "GetSciper(A1:A2)"))

	path := filepath.Join(t.TempDir(), "reps.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunFormulaCell(t *testing.T) {
	path := writeWorkbook(t)

	out, err := execute(t, path, "--cell", "C1")
	require.NoError(t, err)
	assert.Equal(t, "[[\"111111\"],[\"222222\"]]\n", out)
}

func TestRunRangeCSV(t *testing.T) {
	path := writeWorkbook(t)

	out, err := execute(t, path, "--range", "A1:A2", "--format", "csv", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "111111\n222222\n", out)
}

func TestRunOutputFile(t *testing.T) {
	path := writeWorkbook(t)
	target := filepath.Join(t.TempDir(), "out.json")

	out, err := execute(t, path, "--formula", "=GetSciper(A1)", "-o", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "[[\"111111\"]]\n", string(data))
}

func TestRunSpill(t *testing.T) {
	path := writeWorkbook(t)
	saved := filepath.Join(t.TempDir(), "spilled.xlsx")

	_, err := execute(t, path, "--cell", "C1", "--spill", "--spill-at", "D1", "--save-as", saved)
	require.NoError(t, err)

	f, err := excelize.OpenFile(saved)
	require.NoError(t, err)
	defer f.Close()

	d1, err := f.GetCellValue("Sheet1", "D1")
	require.NoError(t, err)
	d2, err := f.GetCellValue("Sheet1", "D2")
	require.NoError(t, err)
	assert.Equal(t, "111111", d1)
	assert.Equal(t, "222222", d2)
}

func TestRunErrors(t *testing.T) {
	path := writeWorkbook(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.xlsx")}},
		{"no parentheses", []string{path, "--formula", "=GetSciper"}},
		{"bad policy", []string{path, "--cell", "C1", "--missing", "sometimes"}},
		{"bad format", []string{path, "--cell", "C1", "--format", "xml"}},
		{"spill without anchor", []string{path, "--cell", "C1", "--spill"}},
		{"no arguments", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
