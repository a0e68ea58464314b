package stock

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Column labels of exported files, as the spreadsheets in use spell them.
const (
	labelDate    = "日付"
	labelVariant = "Tシャツ種類"
	labelSize    = "サイズ"
	labelCount   = "在庫数"
)

// utf8BOM lets spreadsheet applications detect the encoding of CSV exports.
const utf8BOM = "\ufeff"

// headerColor is the fill color of header cells in exported workbooks.
const headerColor = "4472C4"

// WriteCSV writes snapshots in long format, one line per day, variant and
// size, in catalog order. Snapshots are written in the given order.
func WriteCSV(w io.Writer, snapshots []Snapshot, c Catalog) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Write([]string{labelDate, labelVariant, labelSize, labelCount})
	for _, s := range snapshots {
		for _, v := range c.Variants {
			for _, size := range c.Sizes {
				cw.Write([]string{s.Date.String(), string(v), string(size), strconv.Itoa(s.Inventory.Get(v, size))})
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePivotCSV writes snapshots with one line per variant and size and one
// column per day.
func WritePivotCSV(w io.Writer, snapshots []Snapshot, c Catalog) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := []string{labelVariant, labelSize}
	for _, s := range snapshots {
		header = append(header, s.Date.String())
	}
	cw.Write(header)
	for _, v := range c.Variants {
		for _, size := range c.Sizes {
			line := []string{string(v), string(size)}
			for _, s := range snapshots {
				line = append(line, strconv.Itoa(s.Inventory.Get(v, size)))
			}
			cw.Write(line)
		}
	}
	cw.Flush()
	return cw.Error()
}

// sheetName returns the worksheet name of a variant. Full variant names
// exceed the 31 characters a worksheet name may have and would collide once
// truncated, so the short name is used.
func sheetName(v Variant) string {
	name := []rune(ShortName(v))
	if len(name) > excelize.MaxSheetNameLength {
		name = name[:excelize.MaxSheetNameLength]
	}
	return string(name)
}

// workbook creates a workbook with one sheet per catalog variant and calls
// fill on each of them.
func workbook(c Catalog, fill func(f *excelize.File, sheet string, v Variant, header int) error) (*excelize.File, error) {
	f := excelize.NewFile()
	header, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	first := f.GetSheetName(0)
	for i, v := range c.Variants {
		sheet := sheetName(v)
		if i == 0 {
			err = f.SetSheetName(first, sheet)
		} else {
			_, err = f.NewSheet(sheet)
		}
		if err == nil {
			err = fill(f, sheet, v, header)
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("cannot write sheet %q: %w", sheet, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// headerRow writes the header row of a sheet: label then the sizes.
func headerRow(f *excelize.File, sheet, label string, c Catalog, style int) error {
	row := []any{label}
	for _, size := range c.Sizes {
		row = append(row, string(size))
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(row), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

// CurrentWorkbook returns a workbook with the counts of g, one sheet per variant.
func CurrentWorkbook(g Grid, c Catalog) (*excelize.File, error) {
	return workbook(c, func(f *excelize.File, sheet string, v Variant, style int) error {
		if err := headerRow(f, sheet, labelSize, c, style); err != nil {
			return err
		}
		row := []any{labelCount}
		for _, size := range c.Sizes {
			row = append(row, g.Get(v, size))
		}
		return f.SetSheetRow(sheet, "A2", &row)
	})
}

// HistoryWorkbook returns a workbook with one sheet per variant, one row per
// snapshot and one column per size. Snapshots are written in the given order.
func HistoryWorkbook(snapshots []Snapshot, c Catalog) (*excelize.File, error) {
	return workbook(c, func(f *excelize.File, sheet string, v Variant, style int) error {
		if err := headerRow(f, sheet, labelDate, c, style); err != nil {
			return err
		}
		for i, s := range snapshots {
			row := []any{s.Date.String()}
			for _, size := range c.Sizes {
				row = append(row, s.Inventory.Get(v, size))
			}
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
		}
		return f.SetColWidth(sheet, "A", "A", 12)
	})
}
