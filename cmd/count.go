package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/stock"
	"github.com/google/subcommands"
)

// this file contains the commands editing one cell of the working inventory.

type setCmd struct {
	variant string
	size    string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set a count of the working inventory" }
func (*setCmd) Usage() string {
	return `tsk set -v <variant> -s <size> <count>

  Sets the count of a variant and size in the working inventory.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.variant, "v", "", "variant: catalog number, name, or color and mark")
	f.StringVar(&c.size, "s", "", "size")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, size, err := lookupCell(c.variant, c.size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: set takes exactly one count")
		return subcommands.ExitUsageError
	}
	n, err := strconv.Atoi(f.Arg(0))
	if err != nil || n < 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid count %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	if err := s.SetCount(v, size, n); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s %s: %d\n", stock.ShortName(v), size, n)
	return subcommands.ExitSuccess
}

// adjustCmd adds (sign 1) or removes (sign -1) items from a cell.
type adjustCmd struct {
	variant string
	size    string
	n       int
	sign    int
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.variant, "v", "", "variant: catalog number, name, or color and mark")
	f.StringVar(&c.size, "s", "", "size")
	f.IntVar(&c.n, "n", 1, "number of items")
}

func (c *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, size, err := lookupCell(c.variant, c.size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.n < 1 {
		fmt.Fprintf(os.Stderr, "Error: -n must be positive, got %d\n", c.n)
		return subcommands.ExitUsageError
	}

	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	n, err := s.AdjustCount(v, size, c.sign*c.n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s %s: %d\n", stock.ShortName(v), size, n)
	return subcommands.ExitSuccess
}

type addCmd struct{ adjustCmd }

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add items to the working inventory" }
func (*addCmd) Usage() string {
	return `tsk add -v <variant> -s <size> [-n <count>]

  Adds items, one by default, to a variant and size of the working inventory.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	c.sign = 1
	c.adjustCmd.SetFlags(f)
}

type subCmd struct{ adjustCmd }

func (*subCmd) Name() string     { return "sub" }
func (*subCmd) Synopsis() string { return "remove items from the working inventory" }
func (*subCmd) Usage() string {
	return `tsk sub -v <variant> -s <size> [-n <count>]

  Removes items, one by default, from a variant and size of the working
  inventory. Counts do not go below zero.
`
}

func (c *subCmd) SetFlags(f *flag.FlagSet) {
	c.sign = -1
	c.adjustCmd.SetFlags(f)
}
