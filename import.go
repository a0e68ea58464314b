package stock

import (
	"github.com/etnz/stock/date"
	"go.uber.org/zap"
)

// Sheet is the content of one imported file: its name and its cells.
type Sheet struct {
	Filename string
	Cells    [][]any
}

// ImportReport summarizes an import batch.
type ImportReport struct {
	Files   int         // sheets processed
	Skipped []string    // sheets that did not yield any observation
	Dates   []date.Date // days affected, chronological
	Cells   int         // cells loaded
	Created int         // snapshots created
	Updated int         // snapshots updated
}

// Empty reports whether the batch did not find any data.
func (r ImportReport) Empty() bool { return len(r.Dates) == 0 }

// Collect parses all sheets and combines their observations. When several
// sheets observe the same cell, the later sheet wins.
//
// Sheets that cannot be read are skipped and logged, they never fail the batch.
func Collect(sheets []Sheet, logger *zap.Logger) (Observations, ImportReport) {
	all := make(Observations)
	var report ImportReport
	for _, sheet := range sheets {
		report.Files++
		obs, loaded := ParseSheet(sheet.Cells, sheet.Filename)
		if len(obs) == 0 {
			report.Skipped = append(report.Skipped, sheet.Filename)
			reason := "no header row or date column"
			if _, ok := NormalizeVariant(sheet.Filename); !ok {
				reason = "unrecognized variant"
			}
			logger.Warn("skipping sheet", zap.String("file", sheet.Filename), zap.String("reason", reason))
			continue
		}
		logger.Debug("parsed sheet",
			zap.String("file", sheet.Filename),
			zap.Int("dates", len(obs)),
			zap.Int("cells", loaded))
		all.Add(obs)
		report.Cells += loaded
	}
	report.Dates = all.Dates()
	return all, report
}
