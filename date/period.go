package date

import (
	"fmt"
	"strings"
)

// Period is a standard calendar period, used to select snapshots.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

// periodNames holds the adjective then the noun of each period.
var periodNames = [...][2]string{
	Daily:     {"daily", "day"},
	Weekly:    {"weekly", "week"},
	Monthly:   {"monthly", "month"},
	Quarterly: {"quarterly", "quarter"},
	Yearly:    {"yearly", "year"},
}

func (p Period) String() string {
	if p < 0 || int(p) >= len(periodNames) {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p][0]
}

// Range returns the period containing d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// ParsePeriod parses a period by its adjective ("weekly") or noun ("week"), ignoring case.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, names := range periodNames {
		if s == names[0] || s == names[1] {
			return Period(p), nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q, want day, week, month, quarter or year", s)
}
