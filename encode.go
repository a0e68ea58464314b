package stock

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/etnz/stock/date"
)

// this file contains the JSON formats of the three persisted collections.
// They remain human readable: grids are written in catalog order and
// records from the most recent day to the oldest.

// TimestampFormat is the layout of timestamps written to the data files.
const TimestampFormat = "2006-01-02T15:04:05"

// timestampLayouts are accepted when reading, most precise first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	TimestampFormat,
	"2006-01-02 15:04:05",
}

func formatTimestamp(t time.Time) string { return t.Local().Format(TimestampFormat) }

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// orderedGrid marshals a grid with variants and sizes in catalog order.
type orderedGrid struct {
	grid    Grid
	catalog Catalog
}

func (o orderedGrid) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, v := range o.grid.variants(o.catalog) {
		sizes := new(jsonObjectWriter)
		for _, s := range o.grid.sizes(v, o.catalog) {
			sizes.Append(string(s), o.grid[v][s])
		}
		w.Append(string(v), sizes)
	}
	return w.MarshalJSON()
}

// writeJSON writes v indented, without HTML escaping.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeInventory writes the working inventory grid.
func EncodeInventory(w io.Writer, g Grid, c Catalog) error {
	if err := writeJSON(w, orderedGrid{g, c}); err != nil {
		return fmt.Errorf("cannot encode inventory: %w", err)
	}
	return nil
}

// DecodeInventory reads a working inventory grid, zero-filled over the catalog.
func DecodeInventory(r io.Reader, c Catalog) (Grid, error) {
	g := make(Grid)
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("cannot decode inventory: %w", err)
	}
	if g == nil {
		g = make(Grid)
	}
	g.Fill(c)
	return g, nil
}

// jsnapshot is the persisted form of a Snapshot.
type jsnapshot struct {
	Date      date.Date `json:"date"`
	Timestamp string    `json:"timestamp"`
	Inventory any       `json:"inventory"`
	Note      string    `json:"note"`
}

func snapshotsJSON(r *Records, c Catalog) []jsnapshot {
	list := make([]jsnapshot, 0, r.Len())
	for s := range r.Descending() {
		list = append(list, jsnapshot{
			Date:      s.Date,
			Timestamp: formatTimestamp(s.RecordedAt),
			Inventory: orderedGrid{s.Inventory, c},
			Note:      s.Note,
		})
	}
	return list
}

func recordsFromJSON(raw []json.RawMessage, c Catalog) (*Records, error) {
	snapshots := make([]Snapshot, 0, len(raw))
	for i, data := range raw {
		var js struct {
			jsnapshot
			Inventory Grid `json:"inventory"`
		}
		if err := json.Unmarshal(data, &js); err != nil {
			return nil, fmt.Errorf("record #%d: %w", i, err)
		}
		if js.Date.IsZero() {
			return nil, fmt.Errorf("record #%d: missing date", i)
		}
		recorded, err := parseTimestamp(js.Timestamp)
		if err != nil {
			// Keep the record, the day is what matters.
			recorded = js.Date.At(0, 0, time.Local)
		}
		if js.Inventory == nil {
			js.Inventory = make(Grid)
		}
		js.Inventory.Fill(c)
		snapshots = append(snapshots, Snapshot{
			Date:       js.Date,
			RecordedAt: recorded,
			Note:       js.Note,
			Inventory:  js.Inventory,
		})
	}
	return NewRecords(snapshots...), nil
}

// EncodeRecords writes the snapshots, most recent first.
func EncodeRecords(w io.Writer, r *Records, c Catalog) error {
	if err := writeJSON(w, snapshotsJSON(r, c)); err != nil {
		return fmt.Errorf("cannot encode records: %w", err)
	}
	return nil
}

// DecodeRecords reads snapshots. Their order in the stream does not matter.
func DecodeRecords(r io.Reader, c Catalog) (*Records, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cannot decode records: %w", err)
	}
	records, err := recordsFromJSON(raw, c)
	if err != nil {
		return nil, fmt.Errorf("cannot decode records: %w", err)
	}
	return records, nil
}

// jtags is the persisted form of a TagLedger.
type jtags struct {
	CurrentStock int        `json:"current_stock"`
	History      []jtagLine `json:"history"`
}

type jtagLine struct {
	Timestamp  string    `json:"timestamp"`
	Date       date.Date `json:"date"`
	Action     TagAction `json:"action"`
	Amount     int       `json:"amount"`
	StockAfter int       `json:"stock_after"`
	Note       string    `json:"note"`
}

func tagsJSON(l *TagLedger) jtags {
	j := jtags{CurrentStock: l.Balance, History: make([]jtagLine, 0, len(l.Entries))}
	for _, e := range l.Entries {
		j.History = append(j.History, jtagLine{
			Timestamp:  formatTimestamp(e.Timestamp),
			Date:       date.Of(e.Timestamp.Local()),
			Action:     e.Action,
			Amount:     e.Amount,
			StockAfter: e.BalanceAfter,
			Note:       e.Note,
		})
	}
	return j
}

func tagsFromJSON(j jtags) (*TagLedger, error) {
	l := &TagLedger{Balance: j.CurrentStock, Entries: make([]TagEntry, 0, len(j.History))}
	for i, line := range j.History {
		action, err := ParseTagAction(string(line.Action))
		if err != nil {
			return nil, fmt.Errorf("entry #%d: %w", i, err)
		}
		ts, err := parseTimestamp(line.Timestamp)
		if err != nil {
			ts = line.Date.At(0, 0, time.Local)
		}
		l.Entries = append(l.Entries, TagEntry{
			Timestamp:    ts,
			Action:       action,
			Amount:       line.Amount,
			BalanceAfter: line.StockAfter,
			Note:         line.Note,
		})
	}
	return l, nil
}

// EncodeTags writes the tag ledger.
func EncodeTags(w io.Writer, l *TagLedger) error {
	if err := writeJSON(w, tagsJSON(l)); err != nil {
		return fmt.Errorf("cannot encode tags: %w", err)
	}
	return nil
}

// DecodeTags reads the tag ledger.
func DecodeTags(r io.Reader) (*TagLedger, error) {
	var j jtags
	if err := json.NewDecoder(r).Decode(&j); err != nil {
		return nil, fmt.Errorf("cannot decode tags: %w", err)
	}
	l, err := tagsFromJSON(j)
	if err != nil {
		return nil, fmt.Errorf("cannot decode tags: %w", err)
	}
	return l, nil
}
