// Package spreadsheet reads spreadsheet files into a rectangular grid of
// typed cell values.
//
// Cells are nil when empty, or one of string, float64, bool and time.Time.
// Numbers displayed as dates are returned as time.Time.
package spreadsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned for file formats that cannot be read.
var ErrUnsupported = errors.New("unsupported file format")

// Read reads the cells of the file at path, choosing the format from its extension.
func Read(path string) ([][]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cells [][]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		cells, err = ReadXLSX(f)
	case ".csv", ".txt":
		cells, err = ReadCSV(f)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupported, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	return cells, nil
}

// pad extends every row to the length of the longest one.
func pad(rows [][]any) [][]any {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	for i, row := range rows {
		if len(row) < width {
			rows[i] = append(row, make([]any, width-len(row))...)
		}
	}
	return rows
}
