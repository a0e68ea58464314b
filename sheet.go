package stock

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/etnz/stock/date"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// HeaderMarker is the label ("product name") identifying the header row of a matrix export.
const HeaderMarker = "商品名"

// HeaderScanRows is the number of leading rows searched for the header row.
const HeaderScanRows = 15

// Observations are sparse stock counts read from exports, per day.
// Grids in Observations only hold the observed cells.
type Observations map[date.Date]Grid

// Set records the count observed on a day for v and s.
func (o Observations) Set(on date.Date, v Variant, s Size, n int) {
	g, ok := o[on]
	if !ok {
		g = make(Grid)
		o[on] = g
	}
	g.Set(v, s, n)
}

// Add copies all cells of x into o, x winning on conflicts.
func (o Observations) Add(x Observations) {
	for on, g := range x {
		for v, sizes := range g {
			for s, n := range sizes {
				o.Set(on, v, s, n)
			}
		}
	}
}

// Dates returns the observed days in chronological order.
func (o Observations) Dates() []date.Date {
	days := make([]date.Date, 0, len(o))
	for on := range o {
		days = append(days, on)
	}
	slices.SortFunc(days, date.Date.Compare)
	return days
}

// Cells returns the number of observed (day, variant, size) cells.
func (o Observations) Cells() int {
	n := 0
	for _, g := range o {
		n += g.Cells()
	}
	return n
}

// ParseSheet reads the stock counts of a matrix export.
//
// The variant is resolved once from filename. The header row is the first
// of the HeaderScanRows leading rows with a cell containing HeaderMarker,
// its date cells define the date columns. Every following row whose label
// (column 1, or column 0 if blank) is a size yields one observation per
// date column.
//
// It returns the observations and the number of cells loaded. A sheet whose
// variant, header or date columns cannot be found yields no observation.
func ParseSheet(cells [][]any, filename string) (Observations, int) {
	obs := make(Observations)

	variant, ok := NormalizeVariant(filename)
	if !ok {
		return obs, 0
	}

	header := findHeader(cells)
	if header < 0 {
		return obs, 0
	}

	columns := dateColumns(cells[header])
	if len(columns) == 0 {
		return obs, 0
	}

	loaded := 0
	for _, row := range cells[header+1:] {
		size, ok := NormalizeSize(rowLabel(row))
		if !ok {
			continue
		}
		for _, col := range columns {
			if col.index >= len(row) {
				continue
			}
			obs.Set(col.day, variant, size, cellCount(row[col.index]))
			loaded++
		}
	}
	return obs, loaded
}

// findHeader returns the index of the header row, or -1.
func findHeader(cells [][]any) int {
	for i, row := range cells[:min(len(cells), HeaderScanRows)] {
		for _, v := range row {
			if strings.Contains(cellText(v), HeaderMarker) {
				return i
			}
		}
	}
	return -1
}

type dateColumn struct {
	index int
	day   date.Date
}

// dateColumns returns the date columns of the header row in column order.
// Duplicated dates are kept, the last one wins when reading rows.
func dateColumns(header []any) []dateColumn {
	var columns []dateColumn
	for i, v := range header {
		if d, ok := NormalizeDate(v); ok {
			columns = append(columns, dateColumn{index: i, day: d})
		}
	}
	return columns
}

// rowLabel returns the size label of a data row: column 1 if not blank, column 0 otherwise.
// A numeric zero counts as blank.
func rowLabel(row []any) string {
	for _, i := range []int{1, 0} {
		if i >= len(row) {
			continue
		}
		if f, err := cast.ToFloat64E(row[i]); err == nil && f == 0 && !isText(row[i]) {
			continue
		}
		if label := strings.TrimSpace(cellText(row[i])); label != "" {
			return label
		}
	}
	return ""
}

func isText(v any) bool {
	_, ok := v.(string)
	return ok
}

// maxCount bounds counts read from text, larger values are garbage.
var maxCount = decimal.NewFromInt(math.MaxInt64)

// cellCount converts a data cell to a count. Numbers and numeric text are
// truncated toward zero ("12.0" is 12); blank and non numeric cells count as 0.
func cellCount(value any) int {
	switch v := value.(type) {
	case nil, time.Time:
		return 0
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil || d.Abs().GreaterThan(maxCount) {
			return 0
		}
		return int(d.IntPart())
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt64 {
			return 0
		}
		return int(f)
	}
}
