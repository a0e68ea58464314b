package stock

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("b", 1)
		w.Append("a", "hello")
		w.Append("M", 2)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"b":1,"a":"hello","M":2}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("nested object", func(t *testing.T) {
		var inner jsonObjectWriter
		inner.Append("150cm", 10)
		var w jsonObjectWriter
		w.Append("白", &inner)
		got, err := json.Marshal(&w)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"白":{"150cm":10}}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("f", func() {})
		if _, err := w.MarshalJSON(); err == nil {
			t.Errorf("MarshalJSON() expected an error for a func value")
		}
	})
}
