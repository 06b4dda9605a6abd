package scenario

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WorkbookColumns is the expected header of a batch workbook
var WorkbookColumns = []string{"name", "condition", "primary_span", "secondary_span", "ei", "load", "factor"}

// RowError reports a workbook row that could not be turned into a scenario
type RowError struct {
	Row int // 1-based sheet row
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// ReadWorkbook reads scenarios from the first sheet of an XLSX workbook.
// The first row is a header. Rows that fail to parse or validate are returned
// as RowErrors and skipped; blank rows are ignored.
func ReadWorkbook(r io.Reader, defaultFactor float64) ([]Scenario, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("sheet %q has no scenario rows", sheet)
	}

	var scenarios []Scenario
	var rowErrs []RowError
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}

		s, err := parseRow(row)
		if err == nil {
			s = s.WithDefaults(defaultFactor)
			err = s.Validate()
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: i + 1, Err: err})
			continue
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("row %d", i+1)
		}
		scenarios = append(scenarios, s)
	}

	return scenarios, rowErrs, nil
}

// parseRow expects: name, condition, primary span, secondary span (optional),
// EI, load, factor (optional)
func parseRow(row []string) (Scenario, error) {
	if len(row) < 6 {
		return Scenario{}, fmt.Errorf("expected at least 6 columns, got %d", len(row))
	}

	var s Scenario
	s.Name = strings.TrimSpace(row[0])
	s.Condition = row[1]

	fields := []struct {
		col      int
		name     string
		dst      *float64
		optional bool
	}{
		{2, "primary_span", &s.PrimarySpan, false},
		{3, "secondary_span", &s.SecondarySpan, true},
		{4, "ei", &s.EI, false},
		{5, "load", &s.Load, false},
	}

	for _, fld := range fields {
		var cell string
		if fld.col < len(row) {
			cell = strings.TrimSpace(row[fld.col])
		}
		if cell == "" {
			if fld.optional {
				continue
			}
			return Scenario{}, fmt.Errorf("%s is required", fld.name)
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return Scenario{}, fmt.Errorf("%s: %w", fld.name, err)
		}
		*fld.dst = v
	}

	// Factor is optional; a blank cell leaves the default in place
	if len(row) > 6 {
		if cell := strings.TrimSpace(row[6]); cell != "" {
			f, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return Scenario{}, fmt.Errorf("factor: %w", err)
			}
			s.SetFactor(f)
		}
	}

	return s, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
