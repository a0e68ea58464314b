package stock

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stock/date"
)

// query decodes the JSON in buf and evaluates a JSON path on it.
func query(t *testing.T, buf []byte, path string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal(buf, &v); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf)
	}
	got, err := jsonpath.Get(path, v)
	if err != nil {
		t.Fatalf("jsonpath.Get(%q) error: %v", path, err)
	}
	return got
}

func TestEncodeInventory(t *testing.T) {
	c := DefaultCatalog()
	g := NewGrid(c)
	g.Set(BlackMark, SizeXL, 11)

	var buf bytes.Buffer
	if err := EncodeInventory(&buf, g, c); err != nil {
		t.Fatalf("EncodeInventory() unexpected error: %v", err)
	}
	if got := query(t, buf.Bytes(), `$["`+string(BlackMark)+`"].XL`); got != 11.0 {
		t.Errorf("black mark XL = %v, want 11", got)
	}

	// variants and sizes are written in catalog order.
	text := buf.String()
	if strings.Index(text, string(WhiteNoMark)) > strings.Index(text, string(BlackMark)) {
		t.Errorf("variants are not in catalog order:\n%s", text)
	}
	if strings.Index(text, `"150cm"`) > strings.Index(text, `"XXL"`) {
		t.Errorf("sizes are not in catalog order:\n%s", text)
	}

	back, err := DecodeInventory(&buf, c)
	if err != nil {
		t.Fatalf("DecodeInventory() unexpected error: %v", err)
	}
	if !back.Equal(g) {
		t.Errorf("DecodeInventory() = %v, want %v", back, g)
	}
}

func TestDecodeInventory_Partial(t *testing.T) {
	c := DefaultCatalog()
	in := `{"` + string(WhiteMark) + `": {"M": 3}}`
	g, err := DecodeInventory(strings.NewReader(in), c)
	if err != nil {
		t.Fatalf("DecodeInventory() unexpected error: %v", err)
	}
	if g.Get(WhiteMark, SizeM) != 3 || g.Cells() != len(c.Variants)*len(c.Sizes) {
		t.Errorf("DecodeInventory() did not zero-fill the catalog: %v", g)
	}
}

func TestDecodeInventory_Null(t *testing.T) {
	c := DefaultCatalog()
	for _, in := range []string{`null`, `{"` + string(WhiteNoMark) + `": null}`} {
		g, err := DecodeInventory(strings.NewReader(in), c)
		if err != nil {
			t.Fatalf("DecodeInventory(%s) unexpected error: %v", in, err)
		}
		if !g.Equal(NewGrid(c)) {
			t.Errorf("DecodeInventory(%s) = %v, want an all-zero grid", in, g)
		}
	}
}

func TestEncodeRecords(t *testing.T) {
	c := DefaultCatalog()
	r := NewRecords()
	g := NewGrid(c)
	g.Set(WhiteNoMark, Size160, 2)
	r.Commit(date.New(2024, time.January, 5), g, NoteImported, time.Date(2024, time.January, 5, 12, 0, 0, 0, time.Local))
	r.Commit(date.New(2024, time.January, 7), g, NoteManual, time.Date(2024, time.January, 7, 18, 4, 5, 0, time.Local))

	var buf bytes.Buffer
	if err := EncodeRecords(&buf, r, c); err != nil {
		t.Fatalf("EncodeRecords() unexpected error: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"$[0].date", "2024-01-07"},
		{"$[0].timestamp", "2024-01-07T18:04:05"},
		{"$[0].note", NoteManual},
		{"$[1].date", "2024-01-05"},
		{`$[1].inventory["` + string(WhiteNoMark) + `"]["160cm"]`, 2.0},
	}
	for _, tt := range tests {
		if got := query(t, buf.Bytes(), tt.path); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.path, got, tt.want)
		}
	}

	back, err := DecodeRecords(&buf, c)
	if err != nil {
		t.Fatalf("DecodeRecords() unexpected error: %v", err)
	}
	if back.Len() != 2 {
		t.Fatalf("DecodeRecords() = %d snapshots, want 2", back.Len())
	}
	s, _ := back.Get(date.New(2024, time.January, 7))
	if !s.Inventory.Equal(g) || s.Note != NoteManual || s.RecordedAt.Hour() != 18 {
		t.Errorf("DecodeRecords() snapshot = %+v", s)
	}
}

func TestDecodeRecords(t *testing.T) {
	c := DefaultCatalog()
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"empty list", `[]`, 0, false},
		{"any order", `[{"date":"2024-01-01","inventory":{}},{"date":"2024-01-03","inventory":{}}]`, 2, false},
		{"microseconds", `[{"date":"2024-01-01","timestamp":"2024-01-01T10:11:12.123456","inventory":{}}]`, 1, false},
		{"bad timestamp kept", `[{"date":"2024-01-01","timestamp":"yesterday"}]`, 1, false},
		{"missing date", `[{"inventory":{}}]`, 0, true},
		{"not a list", `{}`, 0, true},
		{"null", `null`, 0, false},
		{"null variant", `[{"date":"2024-01-01","inventory":{"` + string(BlackMark) + `":null}}]`, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := DecodeRecords(strings.NewReader(tt.in), c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeRecords() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && r.Len() != tt.want {
				t.Errorf("DecodeRecords() = %d snapshots, want %d", r.Len(), tt.want)
			}
		})
	}
}

func TestEncodeTags(t *testing.T) {
	l := &TagLedger{}
	l.Apply(Receive, 10, "box", time.Date(2024, time.May, 2, 8, 0, 0, 0, time.Local))
	l.Apply(Consume, 15, "", time.Date(2024, time.May, 3, 8, 0, 0, 0, time.Local))

	var buf bytes.Buffer
	if err := EncodeTags(&buf, l); err != nil {
		t.Fatalf("EncodeTags() unexpected error: %v", err)
	}
	tests := []struct {
		path string
		want any
	}{
		{"$.current_stock", -5.0},
		{"$.history[0].action", "consume"},
		{"$.history[0].stock_after", -5.0},
		{"$.history[1].date", "2024-05-02"},
		{"$.history[1].note", "box"},
	}
	for _, tt := range tests {
		if got := query(t, buf.Bytes(), tt.path); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.path, got, tt.want)
		}
	}

	back, err := DecodeTags(&buf)
	if err != nil {
		t.Fatalf("DecodeTags() unexpected error: %v", err)
	}
	if back.Balance != -5 || len(back.Entries) != 2 || back.Entries[1].Amount != 10 {
		t.Errorf("DecodeTags() = %+v", back)
	}

	if _, err := DecodeTags(strings.NewReader(`{"history":[{"action":"lost","amount":1}]}`)); err == nil {
		t.Errorf("DecodeTags() expected an error for an unknown action")
	}
}
