package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/stock"
	"github.com/etnz/stock/date"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders snapshots in the given order, one line per day
// with the total per variant. With details, the full grid of each day
// follows.
func HistoryMarkdown(rg date.Range, snapshots []stock.Snapshot, c stock.Catalog, details bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := fmt.Sprintf("History from %s to %s", rg.From, rg.To)
	if _, ok := rg.Period(); ok {
		title += fmt.Sprintf(" (%s)", rg.Identifier())
	}
	doc.H1(title)
	if len(snapshots) == 0 {
		doc.PlainText("No snapshot in this period.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Date", "Note"},
		Rows:      [][]string{},
	}
	for i := range c.Variants {
		table.Header = append(table.Header, fmt.Sprintf("#%d", i+1))
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	table.Header = append(table.Header, "Total")
	table.Alignment = append(table.Alignment, md.AlignRight)

	for _, s := range snapshots {
		row := []string{s.Date.String(), s.Note}
		total := 0
		for _, v := range c.Variants {
			row = append(row, strconv.Itoa(s.Inventory.Total(v)))
			total += s.Inventory.Total(v)
		}
		row = append(row, md.Bold(strconv.Itoa(total)))
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	legend := make([]string, len(c.Variants))
	for i, v := range c.Variants {
		legend[i] = fmt.Sprintf("#%d %s", i+1, stock.ShortName(v))
	}
	doc.BulletList(legend...)

	if details {
		for _, s := range snapshots {
			doc.H2(fmt.Sprintf("%s (%s)", s.Date, s.Note))
			doc.Table(gridTable(s.Inventory, c))
		}
	}

	return doc.String()
}
