package stock

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/stock/date"
	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

// Names of the files in the data directory.
const (
	InventoryFile = "inventory_data.json"
	RecordsFile   = "daily_records.json"
	TagsFile      = "tag_stock.json"
)

// Store owns the whole application state: the working inventory grid, the
// snapshot records and the tag ledger, persisted as three files in a directory.
//
// Every mutation is applied to a copy, written to disk, and only then made
// visible: a failed write leaves the Store unchanged. A Store is meant to be
// used by a single goroutine and a directory by a single process at a time.
type Store struct {
	dir     string
	catalog Catalog
	logger  *zap.Logger
	now     func() time.Time

	working Grid
	records *Records
	tags    *TagLedger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger, the default one discards everything.
func WithLogger(l *zap.Logger) Option { return func(s *Store) { s.logger = l } }

// WithClock sets the function returning the current time.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// Open loads the store persisted in dir, creating dir if needed.
//
// Missing files start empty. Unreadable or corrupt files are logged and
// replaced by empty collections, they are overwritten on the next mutation.
func Open(dir string, c Catalog, opts ...Option) (*Store, error) {
	s := &Store{
		dir:     dir,
		catalog: c,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	s.load()
	return s, nil
}

// load reads the three files, falling back to defaults.
func (s *Store) load() {
	s.records = NewRecords()
	if ok := s.loadFile(RecordsFile, func(r io.Reader) (err error) {
		s.records, err = DecodeRecords(r, s.catalog)
		return err
	}); !ok {
		s.records = NewRecords()
	}

	s.tags = &TagLedger{}
	if ok := s.loadFile(TagsFile, func(r io.Reader) (err error) {
		s.tags, err = DecodeTags(r)
		return err
	}); !ok {
		s.tags = &TagLedger{}
	}

	// Without a working grid, resume from the latest snapshot.
	if ok := s.loadFile(InventoryFile, func(r io.Reader) (err error) {
		s.working, err = DecodeInventory(r, s.catalog)
		return err
	}); !ok {
		s.working = s.records.Current(s.catalog)
	}
}

// loadFile decodes one data file and reports whether it succeeded.
func (s *Store) loadFile(name string, decode func(io.Reader) error) bool {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("data file does not exist, starting empty", zap.String("file", path))
		return false
	}
	if err != nil {
		s.logger.Warn("cannot open data file, starting empty", zap.String("file", path), zap.Error(err))
		return false
	}
	defer f.Close()
	if err := decode(f); err != nil {
		s.logger.Warn("corrupt data file, starting empty", zap.String("file", path), zap.Error(err))
		return false
	}
	return true
}

// save atomically replaces one data file with the output of encode.
func (s *Store) save(name string, encode func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return err
	}
	path := filepath.Join(s.dir, name)
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not save %q: %w", path, err)
	}
	return nil
}

func (s *Store) saveInventory(g Grid) error {
	return s.save(InventoryFile, func(w io.Writer) error { return EncodeInventory(w, g, s.catalog) })
}

func (s *Store) saveRecords(r *Records) error {
	return s.save(RecordsFile, func(w io.Writer) error { return EncodeRecords(w, r, s.catalog) })
}

func (s *Store) saveTags(l *TagLedger) error {
	return s.save(TagsFile, func(w io.Writer) error { return EncodeTags(w, l) })
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// Catalog returns the catalog of the store.
func (s *Store) Catalog() Catalog { return s.catalog }

// Working returns a copy of the working inventory grid.
func (s *Store) Working() Grid { return s.working.Clone() }

// Records returns a copy of the snapshot records.
func (s *Store) Records() *Records { return s.records.Clone() }

// Tags returns a copy of the tag ledger.
func (s *Store) Tags() *TagLedger { return s.tags.Clone() }

// CurrentInventory returns the inventory of the most recent snapshot, or an
// all-zero grid if there is none.
func (s *Store) CurrentInventory() Grid { return s.records.Current(s.catalog) }

func (s *Store) checkCell(v Variant, size Size) error {
	if !s.catalog.HasVariant(v) {
		return unknownVariant(string(v))
	}
	if !s.catalog.HasSize(size) {
		return unknownSize(string(size))
	}
	return nil
}

// SetCount sets one cell of the working grid.
func (s *Store) SetCount(v Variant, size Size, n int) error {
	if err := s.checkCell(v, size); err != nil {
		return err
	}
	g := s.working.Clone()
	g.Set(v, size, n)
	if err := s.saveInventory(g); err != nil {
		return err
	}
	s.working = g
	return nil
}

// AdjustCount adds delta to one cell of the working grid, without going
// below zero, and returns the new count.
func (s *Store) AdjustCount(v Variant, size Size, delta int) (int, error) {
	if err := s.checkCell(v, size); err != nil {
		return 0, err
	}
	g := s.working.Clone()
	g.Set(v, size, g.Get(v, size)+delta)
	if err := s.saveInventory(g); err != nil {
		return 0, err
	}
	s.working = g
	return g.Get(v, size), nil
}

// SyncWorking resets the working grid to the current inventory.
func (s *Store) SyncWorking() error {
	g := s.CurrentInventory()
	if err := s.saveInventory(g); err != nil {
		return err
	}
	s.working = g
	return nil
}

// CommitToday saves g as today's snapshot, replacing any snapshot already
// saved today. It reports whether a snapshot was replaced.
func (s *Store) CommitToday(g Grid, note string) (bool, error) {
	now := s.now()
	r := s.records.Clone()
	replaced := r.Commit(date.Of(now), g, note, now)
	if err := s.saveRecords(r); err != nil {
		return false, err
	}
	s.records = r
	return replaced, nil
}

// MergeObservations merges imported observations into the records.
func (s *Store) MergeObservations(obs Observations) (MergeResult, error) {
	if len(obs) == 0 {
		return MergeResult{}, nil
	}
	r := s.records.Clone()
	res := r.Merge(obs, s.catalog)
	if err := s.saveRecords(r); err != nil {
		return MergeResult{}, err
	}
	s.records = r
	return res, nil
}

// Import parses sheets and merges everything they contain into the records.
func (s *Store) Import(sheets ...Sheet) (ImportReport, error) {
	obs, report := Collect(sheets, s.logger)
	res, err := s.MergeObservations(obs)
	if err != nil {
		return report, err
	}
	report.Created, report.Updated = res.Created, res.Updated
	if report.Empty() {
		s.logger.Warn("import found no data", zap.Int("files", report.Files))
	} else {
		s.logger.Info("import done",
			zap.Int("files", report.Files),
			zap.Int("dates", len(report.Dates)),
			zap.Int("cells", report.Cells))
	}
	return report, nil
}

// EditSnapshot sets one cell of the snapshot of a past day.
func (s *Store) EditSnapshot(on date.Date, v Variant, size Size, n int) error {
	if err := s.checkCell(v, size); err != nil {
		return err
	}
	r := s.records.Clone()
	if err := r.Edit(on, v, size, n); err != nil {
		return err
	}
	if err := s.saveRecords(r); err != nil {
		return err
	}
	s.records = r
	return nil
}

// DeleteSnapshot removes the snapshot of a day and reports whether there was one.
// Deletion cannot be undone.
func (s *Store) DeleteSnapshot(on date.Date) (bool, error) {
	r := s.records.Clone()
	if !r.Delete(on) {
		return false, nil
	}
	if err := s.saveRecords(r); err != nil {
		return false, err
	}
	s.records = r
	return true, nil
}

// ApplyTagAction records a tag movement. It returns the new entry and
// whether the balance went negative.
func (s *Store) ApplyTagAction(action TagAction, amount int, note string) (TagEntry, bool, error) {
	l := s.tags.Clone()
	e, negative, err := l.Apply(action, amount, note, s.now())
	if err != nil {
		return TagEntry{}, false, err
	}
	if err := s.saveTags(l); err != nil {
		return TagEntry{}, false, err
	}
	s.tags = l
	if negative {
		s.logger.Warn("tag balance is negative", zap.Int("balance", l.Balance))
	}
	return e, negative, nil
}

// Backup returns a copy of the whole state.
func (s *Store) Backup() Backup {
	return Backup{
		Inventory: s.Working(),
		Records:   s.Records(),
		Tags:      s.Tags(),
		SavedAt:   s.now(),
	}
}

// Restore replaces the whole state with b and persists it.
func (s *Store) Restore(b Backup) error {
	g := b.Inventory.Clone()
	if g == nil {
		g = make(Grid)
	}
	g.Fill(s.catalog)
	r, l := b.Records, b.Tags
	if r == nil {
		r = NewRecords()
	}
	if l == nil {
		l = &TagLedger{}
	}
	if err := errors.Join(s.saveInventory(g), s.saveRecords(r), s.saveTags(l)); err != nil {
		return fmt.Errorf("restore incomplete: %w", err)
	}
	s.working, s.records, s.tags = g, r.Clone(), l.Clone()
	return nil
}
