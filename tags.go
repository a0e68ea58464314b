package stock

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// TagAction is the kind of a tag ledger entry.
type TagAction string

const (
	Consume TagAction = "consume" // tags attached to garments
	Receive TagAction = "receive" // tags delivered
	Defect  TagAction = "defect"  // tags thrown away
)

// ParseTagAction parses a tag action name.
func ParseTagAction(s string) (TagAction, error) {
	switch a := TagAction(strings.ToLower(strings.TrimSpace(s))); a {
	case Consume, Receive, Defect:
		return a, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownAction, s)
	}
}

// delta returns the signed balance change of amount for this action.
func (a TagAction) delta(amount int) int {
	if a == Receive {
		return amount
	}
	return -amount
}

// TagEntry is one movement of the tag ledger.
type TagEntry struct {
	Timestamp    time.Time
	Action       TagAction
	Amount       int
	BalanceAfter int
	Note         string
}

// TagLedger is the running balance of garment tags and its history.
//
// Entries are kept most recent first. The balance may be negative: a
// consumption can be recorded before the receipt that covers it.
type TagLedger struct {
	Balance int
	Entries []TagEntry
}

// Apply records a movement of amount tags.
//
// It returns the new entry, and true if the resulting balance is negative,
// which is recorded anyway and only deserves a warning.
func (l *TagLedger) Apply(action TagAction, amount int, note string, now time.Time) (TagEntry, bool, error) {
	if _, err := ParseTagAction(string(action)); err != nil {
		return TagEntry{}, false, err
	}
	if amount < 1 {
		return TagEntry{}, false, fmt.Errorf("%w, got %d", ErrInvalidAmount, amount)
	}
	l.Balance += action.delta(amount)
	e := TagEntry{
		Timestamp:    now,
		Action:       action,
		Amount:       amount,
		BalanceAfter: l.Balance,
		Note:         note,
	}
	l.Entries = slices.Insert(l.Entries, 0, e)
	return e, l.Balance < 0, nil
}

// Clone returns a deep copy of l.
func (l *TagLedger) Clone() *TagLedger {
	return &TagLedger{Balance: l.Balance, Entries: slices.Clone(l.Entries)}
}
