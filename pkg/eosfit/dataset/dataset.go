// Package dataset reads named numeric columns from xlsx workbooks and builds
// labeled pressure-volume observation sets.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/minphys/eosfit-go/pkg/eosfit/models"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrColumnNotFound indicates a requested column header is absent.
var ErrColumnNotFound = errors.New("column not found")

// ErrMalformedData indicates a column contains non-numeric entries or the
// paired columns have mismatched lengths.
var ErrMalformedData = errors.New("malformed data")

// Open opens an xlsx workbook for column extraction. The caller owns the
// returned file and must Close it.
func Open(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

// Columns extracts the named columns from the first sheet of f as float
// sequences. The first row is treated as the header row. Trailing blank
// cells end a column; a blank or non-numeric cell before the end is a data
// error.
func Columns(f *excelize.File, names []string) (map[string][]float64, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformedData)
	}
	sheet := sheets[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrMalformedData, sheet)
	}

	header := make(map[string]int)
	for idx, name := range rows[0] {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := header[name]; !ok {
			header[name] = idx
		}
	}

	result := make(map[string][]float64, len(names))
	for _, name := range names {
		idx, ok := header[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q in sheet %q", ErrColumnNotFound, name, sheet)
		}
		values, err := parseColumn(rows, sheet, name, idx)
		if err != nil {
			return nil, err
		}
		result[name] = values
	}
	return result, nil
}

// parseColumn converts one data column to floats, trimming trailing blanks.
func parseColumn(rows [][]string, sheet, name string, idx int) ([]float64, error) {
	raw := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := ""
		if idx < len(row) {
			cell = strings.TrimSpace(row[idx])
		}
		raw = append(raw, cell)
	}
	for len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	values := make([]float64, len(raw))
	for i, cell := range raw {
		if cell == "" {
			return nil, fmt.Errorf("%w: column %q row %d is blank", ErrMalformedData, name, i+2)
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: %q is not numeric", ErrMalformedData, name, i+2, cell)
		}
		values[i] = v
	}
	return values, nil
}

// Pairs builds one ObservationSet per (pressure, volume) column pair. The
// i-th pressure column is paired with the i-th volume column, and each set
// is labeled by its volume column header.
func Pairs(f *excelize.File, pressureCols, volumeCols []string) ([]models.ObservationSet, error) {
	if len(pressureCols) != len(volumeCols) {
		return nil, fmt.Errorf("%d pressure columns vs %d volume columns", len(pressureCols), len(volumeCols))
	}

	cols, err := Columns(f, append(append([]string{}, pressureCols...), volumeCols...))
	if err != nil {
		return nil, err
	}

	sets := make([]models.ObservationSet, 0, len(volumeCols))
	for i := range volumeCols {
		set := models.ObservationSet{
			Label:     volumeCols[i],
			Volumes:   cols[volumeCols[i]],
			Pressures: cols[pressureCols[i]],
		}
		if err := set.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
		}
		sets = append(sets, set)
	}
	return sets, nil
}
