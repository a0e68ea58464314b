package stock

import (
	"maps"
	"slices"
)

// Grid holds stock counts per variant and size.
//
// A Grid built with NewGrid or completed with Fill has every catalog size for
// every catalog variant. Counts are never negative.
type Grid map[Variant]map[Size]int

// NewGrid returns an all-zero grid over the full catalog.
func NewGrid(c Catalog) Grid {
	g := make(Grid, len(c.Variants))
	g.Fill(c)
	return g
}

// Fill adds every missing catalog variant and size with a zero count.
func (g Grid) Fill(c Catalog) {
	for _, v := range c.Variants {
		g.fillVariant(v, c)
	}
}

func (g Grid) fillVariant(v Variant, c Catalog) {
	sizes := g[v]
	if sizes == nil {
		sizes = make(map[Size]int, len(c.Sizes))
		g[v] = sizes
	}
	for _, s := range c.Sizes {
		if _, ok := sizes[s]; !ok {
			sizes[s] = 0
		}
	}
}

// Get returns the count for v and s, 0 if absent.
func (g Grid) Get(v Variant, s Size) int { return g[v][s] }

// Set stores the count for v and s. Negative counts are stored as 0.
func (g Grid) Set(v Variant, s Size, n int) {
	sizes := g[v]
	if sizes == nil {
		sizes = make(map[Size]int)
		g[v] = sizes
	}
	sizes[s] = max(n, 0)
}

// Total returns the sum of all sizes of v.
func (g Grid) Total(v Variant) int {
	total := 0
	for _, n := range g[v] {
		total += n
	}
	return total
}

// Cells returns the number of (variant, size) cells present in g.
func (g Grid) Cells() int {
	n := 0
	for _, sizes := range g {
		n += len(sizes)
	}
	return n
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	c := make(Grid, len(g))
	for v, sizes := range g {
		c[v] = maps.Clone(sizes)
	}
	return c
}

// Equal reports whether g and x hold the same cells with the same counts.
func (g Grid) Equal(x Grid) bool {
	return maps.EqualFunc(g, x, func(a, b map[Size]int) bool { return maps.Equal(a, b) })
}

// variants returns the variants of g, catalog ones first in catalog order,
// then unknown ones sorted.
func (g Grid) variants(c Catalog) []Variant {
	list := make([]Variant, 0, len(g))
	for _, v := range c.Variants {
		if _, ok := g[v]; ok {
			list = append(list, v)
		}
	}
	var extra []Variant
	for v := range g {
		if !c.HasVariant(v) {
			extra = append(extra, v)
		}
	}
	slices.Sort(extra)
	return append(list, extra...)
}

// sizes returns the sizes present for v, catalog ones first in catalog order.
func (g Grid) sizes(v Variant, c Catalog) []Size {
	list := make([]Size, 0, len(g[v]))
	for _, s := range c.Sizes {
		if _, ok := g[v][s]; ok {
			list = append(list, s)
		}
	}
	var extra []Size
	for s := range g[v] {
		if !c.HasSize(s) {
			extra = append(extra, s)
		}
	}
	slices.Sort(extra)
	return append(list, extra...)
}
