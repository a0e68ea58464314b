package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/stock"
	md "github.com/nao1215/markdown"
)

// gridTable returns a table with one row per variant and one column per size.
func gridTable(g stock.Grid, c stock.Catalog) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft},
		Header:    []string{"#", "Variant"},
		Rows:      [][]string{},
	}
	for _, s := range c.Sizes {
		table.Header = append(table.Header, string(s))
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	table.Header = append(table.Header, "Total")
	table.Alignment = append(table.Alignment, md.AlignRight)

	totals := make([]int, len(c.Sizes))
	total := 0
	for i, v := range c.Variants {
		row := []string{strconv.Itoa(i + 1), stock.ShortName(v)}
		for j, s := range c.Sizes {
			n := g.Get(v, s)
			totals[j] += n
			row = append(row, strconv.Itoa(n))
		}
		row = append(row, md.Bold(strconv.Itoa(g.Total(v))))
		total += g.Total(v)
		table.Rows = append(table.Rows, row)
	}
	row := []string{"", md.Bold("Total")}
	for _, n := range totals {
		row = append(row, md.Bold(strconv.Itoa(n)))
	}
	row = append(row, md.Bold(strconv.Itoa(total)))
	table.Rows = append(table.Rows, row)
	return table
}

// InventoryMarkdown renders a grid under a title.
func InventoryMarkdown(title string, g stock.Grid, c stock.Catalog) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	doc.PlainText(stock.Product)
	doc.Table(gridTable(g, c))

	return doc.String()
}

// SnapshotMarkdown renders the inventory of one day.
func SnapshotMarkdown(s stock.Snapshot, c stock.Catalog) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Inventory on %s", s.Date))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Recorded At", "Note"},
		Rows: [][]string{
			{s.RecordedAt.Format("2006-01-02 15:04:05"), s.Note},
		},
	})
	doc.Table(gridTable(s.Inventory, c))

	return doc.String()
}
