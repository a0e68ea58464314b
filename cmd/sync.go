package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type syncCmd struct{}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "reset the working inventory to the latest snapshot" }
func (*syncCmd) Usage() string {
	return `tsk sync

  Replaces the working inventory with the inventory of the latest snapshot.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {}

func (c *syncCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	if err := s.SyncWorking(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	if latest, ok := s.Records().Latest(); ok {
		fmt.Printf("Working inventory reset to the snapshot of %s\n", latest.Date)
	} else {
		fmt.Println("No snapshot yet, working inventory reset to zero")
	}
	return subcommands.ExitSuccess
}
