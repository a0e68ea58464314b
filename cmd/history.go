package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stock/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	period string
	start  string
	end    string
	all    bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list daily snapshots" }
func (*historyCmd) Usage() string {
	return `tsk history [-p <period> | -s <start_date>] [-d <end_date>] [-all]

  Lists the snapshots of a range of days, the most recent first. Without
  flags, all snapshots are listed.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.end, "d", "", "The end date for the range, today by default.")
	f.BoolVar(&c.all, "all", false, "print every count of every snapshot")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	records := s.Records()
	rg, err := parseRange(c.period, c.start, c.end, records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.HistoryMarkdown(rg, records.Range(rg), s.Catalog(), c.all))
	return subcommands.ExitSuccess
}
