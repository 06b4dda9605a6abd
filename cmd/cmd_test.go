package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/nscp"
)

func TestSelectedQuantities(t *testing.T) {
	qs, err := selectedQuantities("all")
	require.NoError(t, err)
	assert.Equal(t, beam.Quantities, qs)

	qs, err = selectedQuantities("moment")
	require.NoError(t, err)
	assert.Equal(t, []beam.Quantity{beam.BendingMoment}, qs)

	_, err = selectedQuantities("torsion")
	assert.ErrorIs(t, err, beam.ErrInvalidQuantity)
}

func TestCombinationsFor(t *testing.T) {
	assert.Equal(t, nscp.LoadCombinations, combinationsFor(false))
	assert.Equal(t, nscp.SimplifiedCombinations, combinationsFor(true))
}

func TestExecute_Commands(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	scenarioFile := filepath.Join(dir, "two-span.yaml")
	require.NoError(t, os.WriteFile(scenarioFile, []byte(`condition: two-span-unequal
primary_span: 4
secondary_span: 6
ei: 2.0e13
load: 10
`), 0o644))

	workbook := filepath.Join(dir, "beams.xlsx")
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	rows := [][]interface{}{
		{"name", "condition", "primary_span", "secondary_span", "ei", "load", "factor"},
		{"B1", "two-span-unequal", 4, 6, 2e13, 10, 1},
		{"B2", "simply-supported", 5, "", 2e13, 8},
		{"B3", "cantilever", 3, "", 1e13, 5},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, wb.SaveAs(workbook))
	require.NoError(t, wb.Close())

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"reactions", []string{"reactions", "-c", "two-span-unequal", "--span", "4", "--span2", "6", "--load", "10"}, false},
		{"load", []string{"load", "--dead", "12", "--live", "8", "--all"}, false},
		{"analyze file", []string{"analyze", "--file", scenarioFile, "--table", "--diagram", "-o", filepath.Join(dir, "out", "beam.svg")}, false},
		{"analyze zero factor", []string{"analyze", "--file", scenarioFile, "--factor", "0"}, true},
		{"batch", []string{"batch", "--file", workbook}, false},
		{"batch missing file", []string{"batch", "--file", filepath.Join(dir, "missing.xlsx")}, true},
		{"section rectangle", []string{"section", "properties", "--width", "300", "--height", "500"}, false},
		{"bad condition", []string{"reactions", "-c", "cantilever", "--span", "4", "--load", "10"}, true},
		{"bad log level", []string{"version", "--log-level", "loud"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			err := rootCmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}

	for _, q := range []string{"shear", "moment", "deflection"} {
		assert.FileExists(t, filepath.Join(dir, "out", "beam_"+q+".svg"))
	}
}

// chdir changes the working directory for the duration of the test and
// restores it afterwards (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
