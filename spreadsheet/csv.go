package spreadsheet

import (
	"encoding/csv"
	"io"
	"strings"
)

// ReadCSV reads comma separated values. Fields are returned as strings, or
// nil when blank. A leading byte order mark is ignored.
func ReadCSV(r io.Reader) ([][]any, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	rows := make([][]any, len(records))
	for i, record := range records {
		row := make([]any, len(record))
		for j, field := range record {
			if i == 0 && j == 0 {
				field = strings.TrimPrefix(field, "\ufeff")
			}
			if strings.TrimSpace(field) != "" {
				row[j] = field
			}
		}
		rows[i] = row
	}
	return pad(rows), nil
}
