package stock

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// Backup is a full copy of the persisted state.
type Backup struct {
	Inventory Grid
	Records   *Records
	Tags      *TagLedger
	SavedAt   time.Time
}

// EncodeBackup writes b as a single JSON object {inventory, records, tags, saved_at}.
func EncodeBackup(w io.Writer, b Backup, c Catalog) error {
	var obj jsonObjectWriter
	obj.Append("inventory", orderedGrid{b.Inventory, c})
	obj.Append("records", snapshotsJSON(b.Records, c))
	obj.Append("tags", tagsJSON(b.Tags))
	obj.Append("saved_at", formatTimestamp(b.SavedAt))
	if err := writeJSON(w, &obj); err != nil {
		return fmt.Errorf("cannot encode backup: %w", err)
	}
	return nil
}

// DecodeBackup reads a backup. Inventory and records are mandatory, a
// backup without tags restores an empty tag ledger.
func DecodeBackup(r io.Reader, c Catalog) (Backup, error) {
	var jb struct {
		Inventory  Grid              `json:"inventory"`
		Records    []json.RawMessage `json:"records"`
		Tags       *jtags            `json:"tags"`
		SavedAt    string            `json:"saved_at"`
		BackupDate string            `json:"backup_date"` // older backups
	}
	if err := json.NewDecoder(r).Decode(&jb); err != nil {
		return Backup{}, fmt.Errorf("cannot decode backup: %w", err)
	}
	if jb.Inventory == nil {
		return Backup{}, errors.New("cannot decode backup: missing inventory")
	}
	if jb.Records == nil {
		return Backup{}, errors.New("cannot decode backup: missing records")
	}

	b := Backup{Inventory: jb.Inventory, Tags: &TagLedger{}}
	b.Inventory.Fill(c)

	var err error
	if b.Records, err = recordsFromJSON(jb.Records, c); err != nil {
		return Backup{}, fmt.Errorf("cannot decode backup: %w", err)
	}
	if jb.Tags != nil {
		if b.Tags, err = tagsFromJSON(*jb.Tags); err != nil {
			return Backup{}, fmt.Errorf("cannot decode backup: %w", err)
		}
	}

	savedAt := jb.SavedAt
	if savedAt == "" {
		savedAt = jb.BackupDate
	}
	b.SavedAt, _ = parseTimestamp(savedAt)
	return b, nil
}
