package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stock"
	"github.com/etnz/stock/renderer"
	"github.com/google/subcommands"
)

type tagCmd struct {
	amount int
	note   string
}

func (*tagCmd) Name() string     { return "tag" }
func (*tagCmd) Synopsis() string { return "record a tag movement" }
func (*tagCmd) Usage() string {
	return `tsk tag -n <amount> [-note <text>] consume|receive|defect

  Records tags consumed, received or thrown away as defective.
`
}

func (c *tagCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.amount, "n", 0, "number of tags, positive")
	f.StringVar(&c.note, "note", "", "free text note")
}

func (c *tagCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting one action: consume, receive or defect")
		return subcommands.ExitUsageError
	}
	action, err := stock.ParseTagAction(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.amount < 1 {
		fmt.Fprintf(os.Stderr, "Error: -n must be at least 1, got %d\n", c.amount)
		return subcommands.ExitUsageError
	}

	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	e, negative, err := s.ApplyTagAction(action, c.amount, c.note)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s %d, balance %d\n", e.Action, e.Amount, e.BalanceAfter)
	if negative {
		fmt.Fprintf(os.Stderr, "Warning: the tag balance is negative (%d)\n", e.BalanceAfter)
	}
	return subcommands.ExitSuccess
}

type tagsCmd struct {
	limit int
}

func (*tagsCmd) Name() string     { return "tags" }
func (*tagsCmd) Synopsis() string { return "display the tag balance and history" }
func (*tagsCmd) Usage() string {
	return `tsk tags [-n <entries>]

  Displays the tag balance and the most recent movements.
`
}

func (c *tagsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 20, "number of movements to show, 0 for all")
}

func (c *tagsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	printMarkdown(renderer.TagsMarkdown(s.Tags(), c.limit))
	return subcommands.ExitSuccess
}
