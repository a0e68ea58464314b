package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/stock"
	md "github.com/nao1215/markdown"
)

// ImportMarkdown renders the summary of an import batch.
func ImportMarkdown(r stock.ImportReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Import")
	if r.Empty() {
		doc.PlainText(fmt.Sprintf("No importable data found in %d file(s).", r.Files))
	} else {
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Files", strconv.Itoa(r.Files)},
			Rows: [][]string{
				{"Days", strconv.Itoa(len(r.Dates))},
				{"From", r.Dates[0].String()},
				{"To", r.Dates[len(r.Dates)-1].String()},
				{"Cells", strconv.Itoa(r.Cells)},
				{"Snapshots Created", strconv.Itoa(r.Created)},
				{"Snapshots Updated", strconv.Itoa(r.Updated)},
			},
		})
	}
	if len(r.Skipped) > 0 {
		doc.H2("Skipped Files")
		doc.BulletList(r.Skipped...)
	}

	return doc.String()
}
