package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stock/date"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	date string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete the snapshot of a day" }
func (*deleteCmd) Usage() string {
	return `tsk delete -d <date>

  Deletes the snapshot of a day. This cannot be undone.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day of the snapshot. See the user manual for supported date formats.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: -d is required")
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	deleted, err := s.DeleteSnapshot(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving records: %v\n", err)
		return subcommands.ExitFailure
	}
	if !deleted {
		fmt.Fprintf(os.Stderr, "No snapshot on %s\n", on)
		return subcommands.ExitFailure
	}
	fmt.Printf("Snapshot of %s deleted\n", on)
	return subcommands.ExitSuccess
}
