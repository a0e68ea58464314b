package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stock"
	"github.com/google/subcommands"
)

type commitCmd struct {
	note string
}

func (*commitCmd) Name() string     { return "commit" }
func (*commitCmd) Synopsis() string { return "save the working inventory as today's snapshot" }
func (*commitCmd) Usage() string {
	return `tsk commit [-note <text>]

  Saves the working inventory as the snapshot of today, replacing the one
  already saved today.
`
}

func (c *commitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.note, "note", stock.NoteManual, "provenance of the counts")
}

func (c *commitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	replaced, err := s.CommitToday(s.Working(), c.note)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	if replaced {
		fmt.Printf("Snapshot of %s replaced\n", today())
	} else {
		fmt.Printf("Snapshot of %s saved\n", today())
	}
	return subcommands.ExitSuccess
}
