package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/stock"
	"github.com/etnz/stock/date"
)

func testGrid(c stock.Catalog) stock.Grid {
	g := stock.NewGrid(c)
	g.Set(stock.WhiteNoMark, stock.Size150, 10)
	g.Set(stock.WhiteNoMark, stock.SizeM, 5)
	g.Set(stock.BlackMark, stock.SizeXXL, 2)
	return g
}

func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output does not contain %q:\n%s", w, got)
		}
	}
}

func TestInventoryMarkdown(t *testing.T) {
	c := stock.DefaultCatalog()
	got := InventoryMarkdown("Working Inventory", testGrid(c), c)

	assertContains(t, got,
		"# Working Inventory",
		"(ホワイト)ゼンプロマークなし",
		"(ブラック)ゼンプロマークあり",
		"150cm",
		"XXL",
		"**15**", // white no mark total
		"**17**", // grand total
	)
}

func TestSnapshotMarkdown(t *testing.T) {
	c := stock.DefaultCatalog()
	s := stock.Snapshot{
		Date:       date.New(2024, time.January, 5),
		RecordedAt: time.Date(2024, time.January, 5, 12, 0, 0, 0, time.Local),
		Note:       stock.NoteImported,
		Inventory:  testGrid(c),
	}
	got := SnapshotMarkdown(s, c)

	assertContains(t, got, "# Inventory on 2024-01-05", "2024-01-05 12:00:00", "imported", "**17**")
}

func TestHistoryMarkdown(t *testing.T) {
	c := stock.DefaultCatalog()
	rg := date.NewRange(date.New(2024, time.January, 1), date.New(2024, time.January, 31))

	t.Run("empty", func(t *testing.T) {
		got := HistoryMarkdown(rg, nil, c, false)
		assertContains(t, got, "# History from 2024-01-01 to 2024-01-31 (2024-01)", "No snapshot")
	})

	snapshots := []stock.Snapshot{
		{Date: date.New(2024, time.January, 6), Note: stock.NoteManual, Inventory: testGrid(c)},
		{Date: date.New(2024, time.January, 5), Note: stock.NoteImported, Inventory: stock.NewGrid(c)},
	}
	t.Run("summary", func(t *testing.T) {
		got := HistoryMarkdown(rg, snapshots, c, false)
		assertContains(t, got, "2024-01-06", "2024-01-05", "manual", "#4 (ブラック)ゼンプロマークあり")
		if strings.Contains(got, "## 2024-01-06") {
			t.Errorf("summary history should not contain details:\n%s", got)
		}
		if i, j := strings.Index(got, "2024-01-06"), strings.Index(got, "| 2024-01-05"); i > j {
			t.Errorf("snapshots are not rendered in the given order:\n%s", got)
		}
	})
	t.Run("details", func(t *testing.T) {
		got := HistoryMarkdown(rg, snapshots, c, true)
		assertContains(t, got, "## 2024-01-06 (manual)", "## 2024-01-05 (imported)")
	})
}

func TestTagsMarkdown(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.Local)
	l := &stock.TagLedger{}
	l.Apply(stock.Receive, 10, "delivery", now)
	l.Apply(stock.Consume, 15, "big | batch", now.Add(time.Hour))

	got := TagsMarkdown(l, 0)
	assertContains(t, got,
		"Balance: **-5**",
		"negative",
		"| 2024-03-01 10:30:00 | consume | -15 | -5 | big \\| batch |",
		"| 2024-03-01 09:30:00 | receive | +10 | 10 | delivery |",
	)

	limited := TagsMarkdown(l, 1)
	assertContains(t, limited, "1 older entries not shown")
	if strings.Contains(limited, "delivery") {
		t.Errorf("limited output contains an older entry:\n%s", limited)
	}
}

func TestImportMarkdown(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := ImportMarkdown(stock.ImportReport{Files: 2, Skipped: []string{"a.xlsx", "b.xlsx"}})
		assertContains(t, got, "No importable data found in 2 file(s).", "## Skipped Files", "a.xlsx")
	})
	t.Run("data", func(t *testing.T) {
		got := ImportMarkdown(stock.ImportReport{
			Files:   1,
			Dates:   []date.Date{date.New(2024, time.January, 5), date.New(2024, time.January, 6)},
			Cells:   4,
			Created: 2,
		})
		assertContains(t, got, "2024-01-05", "2024-01-06", "Snapshots Created")
		if strings.Contains(got, "Skipped") {
			t.Errorf("output lists skipped files:\n%s", got)
		}
	})
}
