package stock

import "testing"

func TestGrid(t *testing.T) {
	c := DefaultCatalog()
	g := NewGrid(c)
	if got, want := g.Cells(), len(c.Variants)*len(c.Sizes); got != want {
		t.Fatalf("NewGrid() has %d cells, want %d", got, want)
	}

	g.Set(WhiteMark, SizeS, 3)
	g.Set(WhiteMark, SizeM, 4)
	g.Set(WhiteMark, SizeL, -2)
	if got := g.Get(WhiteMark, SizeL); got != 0 {
		t.Errorf("negative Set() stored %d, want 0", got)
	}
	if got := g.Total(WhiteMark); got != 7 {
		t.Errorf("Total() = %d, want 7", got)
	}

	clone := g.Clone()
	clone.Set(WhiteMark, SizeS, 100)
	if g.Get(WhiteMark, SizeS) != 3 {
		t.Errorf("Clone() shares cells with the original")
	}
	if g.Equal(clone) {
		t.Errorf("Equal() = true for different grids")
	}
	clone.Set(WhiteMark, SizeS, 3)
	if !g.Equal(clone) {
		t.Errorf("Equal() = false for identical grids")
	}
}

func TestGrid_Fill(t *testing.T) {
	c := DefaultCatalog()
	g := make(Grid)
	g.Set(BlackMark, SizeM, 5)
	g.Set("legacy", SizeM, 1)
	g.Fill(c)

	if got := g.Get(BlackMark, SizeM); got != 5 {
		t.Errorf("Fill() changed an existing count: %d", got)
	}
	if _, ok := g[WhiteNoMark][Size150]; !ok {
		t.Errorf("Fill() did not add missing cells")
	}
	vs := g.variants(c)
	if len(vs) != len(c.Variants)+1 || vs[len(vs)-1] != "legacy" {
		t.Errorf("variants() = %v, want catalog order then unknown variants", vs)
	}
}
