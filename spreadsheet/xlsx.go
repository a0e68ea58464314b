package spreadsheet

import (
	"io"
	"regexp"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the active sheet of an Office Open XML workbook.
func ReadXLSX(r io.Reader) ([][]any, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}
	x := xlsxSheet{file: f, sheet: sheet, date1904: date1904, dateStyles: make(map[int]bool)}

	rows := make([][]any, len(raw))
	for i, values := range raw {
		row := make([]any, len(values))
		for j, value := range values {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			row[j] = x.value(cell, value)
		}
		rows[i] = row
	}
	return pad(rows), nil
}

// xlsxSheet types the raw values of one worksheet.
type xlsxSheet struct {
	file       *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool // style index -> displays a date
}

func (x xlsxSheet) value(cell, raw string) any {
	typ, err := x.file.GetCellType(x.sheet, cell)
	if err != nil {
		return raw
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || raw == "TRUE"
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			return t
		}
		return raw
	}
	// numbers, formulas and untyped cells
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	if x.isDate(cell) {
		if t, err := excelize.ExcelDateToTime(n, x.date1904); err == nil {
			return t
		}
	}
	return n
}

// isDate reports whether the number format of cell displays a date.
func (x xlsxSheet) isDate(cell string) bool {
	idx, err := x.file.GetCellStyle(x.sheet, cell)
	if err != nil || idx == 0 {
		return false
	}
	if isDate, ok := x.dateStyles[idx]; ok {
		return isDate
	}
	isDate := false
	if style, err := x.file.GetStyle(idx); err == nil {
		isDate = isDateFormat(style.NumFmt, style.CustomNumFmt)
	}
	x.dateStyles[idx] = isDate
	return isDate
}

// Built-in number formats displaying dates.
var dateNumFmts = []struct{ from, to int }{{14, 22}, {27, 36}, {45, 47}, {50, 58}}

var (
	// literal text and bracketed sections (colors, locales, elapsed time).
	numFmtLiterals = regexp.MustCompile(`"[^"]*"|\[[^\]]*\]|\\.`)
	numFmtDate     = regexp.MustCompile(`[yYdD]`)
)

func isDateFormat(numFmt int, custom *string) bool {
	if custom != nil && *custom != "" {
		return numFmtDate.MatchString(numFmtLiterals.ReplaceAllString(*custom, ""))
	}
	for _, r := range dateNumFmts {
		if numFmt >= r.from && numFmt <= r.to {
			return true
		}
	}
	return false
}
