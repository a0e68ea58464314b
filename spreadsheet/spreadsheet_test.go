package spreadsheet

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// newWorkbook returns the bytes of a workbook whose first sheet holds rows.
func newWorkbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestReadXLSX(t *testing.T) {
	data := newWorkbook(t,
		[]any{"在庫表"},
		[]any{nil, "商品名", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), "2024/01/06"},
		[]any{nil, "150cm", 10, 12.5},
		[]any{nil, "M", true},
	)

	rows, err := ReadXLSX(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadXLSX() unexpected error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("ReadXLSX() got %d rows, want 4", len(rows))
	}
	for i, row := range rows {
		if len(row) != 4 {
			t.Errorf("row %d has %d cells, want 4", i, len(row))
		}
	}

	if got := rows[0][0]; got != "在庫表" {
		t.Errorf("rows[0][0] = %#v, want %q", got, "在庫表")
	}
	if got := rows[0][3]; got != nil {
		t.Errorf("rows[0][3] = %#v, want nil", got)
	}
	if got := rows[1][0]; got != nil {
		t.Errorf("rows[1][0] = %#v, want nil", got)
	}
	day, ok := rows[1][2].(time.Time)
	if !ok {
		t.Fatalf("rows[1][2] = %#v, want a time.Time", rows[1][2])
	}
	if day.Year() != 2024 || day.Month() != time.January || day.Day() != 5 {
		t.Errorf("rows[1][2] = %v, want 2024-01-05", day)
	}
	if got := rows[1][3]; got != "2024/01/06" {
		t.Errorf("rows[1][3] = %#v, want the text", got)
	}
	if got := rows[2][2]; got != 10.0 {
		t.Errorf("rows[2][2] = %#v, want 10.0", got)
	}
	if got := rows[2][3]; got != 12.5 {
		t.Errorf("rows[2][3] = %#v, want 12.5", got)
	}
	if got := rows[3][2]; got != true {
		t.Errorf("rows[3][2] = %#v, want true", got)
	}
}

func TestReadXLSX_Invalid(t *testing.T) {
	if _, err := ReadXLSX(strings.NewReader("not a workbook")); err == nil {
		t.Error("ReadXLSX() expected an error for invalid content")
	}
}

func TestReadCSV(t *testing.T) {
	input := "\ufeff商品名,2024-01-05,2024-01-06\n150cm,10\n M ,,3\n"
	rows, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() unexpected error: %v", err)
	}
	want := [][]any{
		{"商品名", "2024-01-05", "2024-01-06"},
		{"150cm", "10", nil},
		{" M ", nil, "3"},
	}
	if len(rows) != len(want) {
		t.Fatalf("ReadCSV() got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if len(rows[i]) != len(want[i]) {
			t.Fatalf("row %d = %#v, want %#v", i, rows[i], want[i])
		}
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("rows[%d][%d] = %#v, want %#v", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

func TestIsDateFormat(t *testing.T) {
	custom := func(s string) *string { return &s }
	tests := []struct {
		name   string
		numFmt int
		custom *string
		want   bool
	}{
		{"general", 0, nil, false},
		{"integer", 1, nil, false},
		{"short date", 14, nil, true},
		{"date time", 22, nil, true},
		{"japanese era", 27, nil, true},
		{"time only", 45, nil, true},
		{"custom date", 0, custom("yyyy/m/d"), true},
		{"custom japanese", 0, custom(`m"月"d"日"`), true},
		{"custom number", 0, custom("#,##0"), false},
		{"custom quoted day", 0, custom(`0" days"`), false},
		{"custom color", 0, custom("[Red]0.00"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDateFormat(tt.numFmt, tt.custom); got != tt.want {
				t.Errorf("isDateFormat(%d, %v) = %v, want %v", tt.numFmt, tt.custom, got, tt.want)
			}
		})
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "ホワイトなし.xlsx")
	if err := os.WriteFile(xlsx, newWorkbook(t, []any{"商品名", 1}), 0o644); err != nil {
		t.Fatal(err)
	}
	csv := filepath.Join(dir, "ブラックあり.CSV")
	if err := os.WriteFile(csv, []byte("商品名,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	xls := filepath.Join(dir, "old.xls")
	if err := os.WriteFile(xls, []byte{0}, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{xlsx, csv} {
		rows, err := Read(path)
		if err != nil {
			t.Errorf("Read(%q) unexpected error: %v", path, err)
			continue
		}
		if len(rows) != 1 || rows[0][0] != "商品名" {
			t.Errorf("Read(%q) = %#v", path, rows)
		}
	}
	if _, err := Read(xls); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Read(%q) error = %v, want %v", xls, err, ErrUnsupported)
	}
	if _, err := Read(filepath.Join(dir, "missing.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Read(missing) error = %v, want not exist", err)
	}
}
