package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stock"
	"github.com/etnz/stock/date"
	"github.com/etnz/stock/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	date string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display one snapshot" }
func (*showCmd) Usage() string {
	return `tsk show [-d <date>]

  Displays the snapshot of a day, the latest one by default.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day of the snapshot. See the user manual for supported date formats.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	records := s.Records()
	var snapshot stock.Snapshot
	var ok bool
	if c.date == "" {
		snapshot, ok = records.Latest()
	} else {
		on, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		snapshot, ok = records.Get(on)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "No snapshot found")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SnapshotMarkdown(snapshot, s.Catalog()))
	return subcommands.ExitSuccess
}
