package stock

import (
	"errors"
	"testing"
)

func TestCatalog_LookupVariant(t *testing.T) {
	c := DefaultCatalog()
	tests := []struct {
		in   string
		want Variant
		err  error
	}{
		{"1", WhiteNoMark, nil},
		{" 4 ", BlackMark, nil},
		{string(WhiteMark), WhiteMark, nil},
		{ShortName(BlackNoMark), BlackNoMark, nil},
		{"白あり", WhiteMark, nil},
		{"black-mark-absent", BlackNoMark, nil},
		{"0", "", ErrUnknownVariant},
		{"5", "", ErrUnknownVariant},
		{"hoodie", "", ErrUnknownVariant},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := c.LookupVariant(tt.in)
			if got != tt.want || !errors.Is(err, tt.err) {
				t.Errorf("LookupVariant(%q) = %q, %v; want %q, %v", tt.in, got, err, tt.want, tt.err)
			}
		})
	}
}

func TestCatalog_LookupSize(t *testing.T) {
	c := DefaultCatalog()
	if got, err := c.LookupSize("ＸＬ"); err != nil || got != SizeXL {
		t.Errorf("LookupSize(ＸＬ) = %q, %v; want %q", got, err, SizeXL)
	}
	if _, err := c.LookupSize("3XL"); !errors.Is(err, ErrUnknownSize) {
		t.Errorf("LookupSize(3XL) error = %v, want %v", err, ErrUnknownSize)
	}
}

func TestShortName(t *testing.T) {
	if got, want := ShortName(WhiteMark), "(ホワイト)ゼンプロマークあり"; got != want {
		t.Errorf("ShortName() = %q, want %q", got, want)
	}
	if got := ShortName("hoodie"); got != "hoodie" {
		t.Errorf("ShortName(hoodie) = %q, want it unchanged", got)
	}
}
