package stock

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/etnz/stock/date"
)

// Notes recording the provenance of a snapshot.
const (
	NoteManual   = "manual"
	NoteImported = "imported"
	NoteSeed     = "seed"
)

// importedHour is the clock time given to snapshots created by an import.
const importedHour = 12

// Snapshot is the inventory of one day.
type Snapshot struct {
	Date       date.Date
	RecordedAt time.Time
	Note       string
	Inventory  Grid
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	s.Inventory = s.Inventory.Clone()
	return s
}

// Records is the day indexed history of snapshots.
//
// There is at most one snapshot per date. Snapshots are kept sorted from the
// most recent to the oldest.
type Records struct {
	snapshots []*Snapshot
}

// NewRecords creates records from a list of snapshots. When several
// snapshots share a date, the last one wins.
func NewRecords(snapshots ...Snapshot) *Records {
	r := &Records{}
	for _, s := range snapshots {
		s := s.Clone()
		if i, found := r.search(s.Date); found {
			r.snapshots[i] = &s
		} else {
			r.snapshots = slices.Insert(r.snapshots, i, &s)
		}
	}
	return r
}

// Len returns the number of snapshots.
func (r *Records) Len() int { return len(r.snapshots) }

// search returns the position of 'on' in the descending list, and whether it is there.
func (r *Records) search(on date.Date) (int, bool) {
	return slices.BinarySearchFunc(r.snapshots, on, func(s *Snapshot, on date.Date) int {
		return on.Compare(s.Date)
	})
}

// Get returns a copy of the snapshot of that day.
func (r *Records) Get(on date.Date) (Snapshot, bool) {
	i, found := r.search(on)
	if !found {
		return Snapshot{}, false
	}
	return r.snapshots[i].Clone(), true
}

// Latest returns a copy of the most recent snapshot.
func (r *Records) Latest() (Snapshot, bool) {
	if len(r.snapshots) == 0 {
		return Snapshot{}, false
	}
	return r.snapshots[0].Clone(), true
}

// Current returns the inventory of the most recent snapshot, or an all-zero
// grid if there is none.
func (r *Records) Current(c Catalog) Grid {
	latest, ok := r.Latest()
	if !ok {
		return NewGrid(c)
	}
	latest.Inventory.Fill(c)
	return latest.Inventory
}

// Commit stores g as the inventory of day 'on'. An existing snapshot for that
// day is replaced. It reports whether a snapshot was replaced.
func (r *Records) Commit(on date.Date, g Grid, note string, now time.Time) bool {
	s := &Snapshot{Date: on, RecordedAt: now, Note: note, Inventory: g.Clone()}
	i, found := r.search(on)
	if found {
		r.snapshots[i] = s
		return true
	}
	r.snapshots = slices.Insert(r.snapshots, i, s)
	return false
}

// MergeResult counts the snapshots touched by Merge.
type MergeResult struct {
	Created int
	Updated int
}

// Merge applies observations to the records.
//
// Existing snapshots only get the observed cells overwritten. Days without a
// snapshot get a new one, zero-filled over the whole catalog, noted as
// imported. Merging the same observations twice has no further effect.
func (r *Records) Merge(obs Observations, c Catalog) MergeResult {
	var res MergeResult
	for _, on := range obs.Dates() {
		i, found := r.search(on)
		var s *Snapshot
		if found {
			s = r.snapshots[i]
			if s.Inventory == nil {
				s.Inventory = NewGrid(c)
			}
			res.Updated++
		} else {
			s = &Snapshot{
				Date:       on,
				RecordedAt: on.At(importedHour, 0, time.Local),
				Note:       NoteImported,
				Inventory:  NewGrid(c),
			}
			r.snapshots = slices.Insert(r.snapshots, i, s)
			res.Created++
		}
		for v, sizes := range obs[on] {
			if _, ok := s.Inventory[v]; !ok {
				s.Inventory.fillVariant(v, c)
			}
			for size, n := range sizes {
				s.Inventory.Set(v, size, n)
			}
		}
	}
	return res
}

// Edit sets one cell of the snapshot of day 'on'.
func (r *Records) Edit(on date.Date, v Variant, s Size, n int) error {
	i, found := r.search(on)
	if !found {
		return fmt.Errorf("%w on %s", ErrNoSnapshot, on)
	}
	r.snapshots[i].Inventory.Set(v, s, n)
	return nil
}

// Delete removes the snapshot of day 'on' and reports whether there was one.
func (r *Records) Delete(on date.Date) bool {
	i, found := r.search(on)
	if !found {
		return false
	}
	r.snapshots = slices.Delete(r.snapshots, i, i+1)
	return true
}

// Descending returns the snapshots from the most recent to the oldest.
func (r *Records) Descending() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for _, s := range r.snapshots {
			if !yield(s.Clone()) {
				return
			}
		}
	}
}

// Ascending returns the snapshots from the oldest to the most recent.
func (r *Records) Ascending() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for i := len(r.snapshots) - 1; i >= 0; i-- {
			if !yield(r.snapshots[i].Clone()) {
				return
			}
		}
	}
}

// Range returns the snapshots within rg, most recent first.
func (r *Records) Range(rg date.Range) []Snapshot {
	var list []Snapshot
	for s := range r.Descending() {
		if rg.Contains(s.Date) {
			list = append(list, s)
		}
	}
	return list
}

// Span returns the range from the oldest to the most recent snapshot.
func (r *Records) Span() (date.Range, bool) {
	if len(r.snapshots) == 0 {
		return date.Range{}, false
	}
	return date.Range{From: r.snapshots[len(r.snapshots)-1].Date, To: r.snapshots[0].Date}, true
}

// Clone returns a deep copy of r.
func (r *Records) Clone() *Records {
	c := &Records{snapshots: make([]*Snapshot, len(r.snapshots))}
	for i, s := range r.snapshots {
		cs := s.Clone()
		c.snapshots[i] = &cs
	}
	return c
}
