package stock

import (
	"slices"
	"strconv"
	"strings"
)

// Variant identifies a product variant: product name, color and mark presence.
type Variant string

// Size is a canonical size label.
type Size string

// Product is the common name of all shirt variants.
const Product = "パンクラス×禅道会コラボTシャツ"

// Shirt variants, in catalog order.
const (
	WhiteNoMark Variant = Product + "(ホワイト)ゼンプロマークなし"
	BlackNoMark Variant = Product + "(ブラック)ゼンプロマークなし"
	WhiteMark   Variant = Product + "(ホワイト)ゼンプロマークあり"
	BlackMark   Variant = Product + "(ブラック)ゼンプロマークあり"
)

// Canonical sizes, in catalog order.
const (
	Size150 Size = "150cm"
	Size160 Size = "160cm"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// Catalog is the ordered set of variants and sizes tracked by the application.
// It is fixed at deployment time.
type Catalog struct {
	Variants []Variant
	Sizes    []Size
}

// DefaultCatalog returns the catalog of the collaboration shirts.
func DefaultCatalog() Catalog {
	return Catalog{
		Variants: []Variant{WhiteNoMark, BlackNoMark, WhiteMark, BlackMark},
		Sizes:    []Size{Size150, Size160, SizeS, SizeM, SizeL, SizeXL, SizeXXL},
	}
}

// HasVariant reports whether v belongs to the catalog.
func (c Catalog) HasVariant(v Variant) bool { return slices.Contains(c.Variants, v) }

// HasSize reports whether s belongs to the catalog.
func (c Catalog) HasSize(s Size) bool { return slices.Contains(c.Sizes, s) }

// ShortName returns the variant name without the common product prefix.
func ShortName(v Variant) string {
	if short := strings.TrimPrefix(string(v), Product); short != "" {
		return short
	}
	return string(v)
}

// LookupVariant resolves a variant typed by a user: its 1-based catalog
// index, its full or short name, or any text NormalizeVariant understands.
func (c Catalog) LookupVariant(s string) (Variant, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		if i < 1 || i > len(c.Variants) {
			return "", unknownVariant(s)
		}
		return c.Variants[i-1], nil
	}
	for _, v := range c.Variants {
		if s == string(v) || s == ShortName(v) {
			return v, nil
		}
	}
	if v, ok := NormalizeVariant(s); ok && c.HasVariant(v) {
		return v, nil
	}
	return "", unknownVariant(s)
}

// LookupSize resolves a size typed by a user using NormalizeSize.
func (c Catalog) LookupSize(s string) (Size, error) {
	if size, ok := NormalizeSize(s); ok && c.HasSize(size) {
		return size, nil
	}
	return "", unknownSize(s)
}
