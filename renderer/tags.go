package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stock"
)

// TagsMarkdown renders the tag balance and the most recent entries, all of
// them if limit is not positive.
func TagsMarkdown(l *stock.TagLedger, limit int) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Tags\n\n")
	fmt.Fprintf(&b, "Balance: **%d**\n\n", l.Balance)
	if l.Balance < 0 {
		fmt.Fprint(&b, "> The balance is negative: more tags were used than received.\n\n")
	}
	if len(l.Entries) == 0 {
		return b.String()
	}

	entries := l.Entries
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	fmt.Fprint(&b, "## History\n\n")
	fmt.Fprintln(&b, "| Timestamp | Action | Amount | Balance | Note |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|:---|")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s | %+d | %d | %s |\n",
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.Action,
			signed(e.Action, e.Amount),
			e.BalanceAfter,
			escapeCell(e.Note),
		)
	}
	if len(entries) < len(l.Entries) {
		fmt.Fprintf(&b, "\n%d older entries not shown.\n", len(l.Entries)-len(entries))
	}
	return b.String()
}

func signed(a stock.TagAction, amount int) int {
	if a == stock.Receive {
		return amount
	}
	return -amount
}

// escapeCell makes text safe inside a table cell.
func escapeCell(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}
