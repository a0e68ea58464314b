package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/stock"
	"github.com/etnz/stock/date"
	"github.com/google/subcommands"
)

type editCmd struct {
	date    string
	variant string
	size    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "correct a count of a past snapshot" }
func (*editCmd) Usage() string {
	return `tsk edit -d <date> -v <variant> -s <size> <count>

  Sets one count of the snapshot of a day.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day of the snapshot. See the user manual for supported date formats.")
	f.StringVar(&c.variant, "v", "", "variant: catalog number, name, or color and mark")
	f.StringVar(&c.size, "s", "", "size")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: -d is required")
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	v, size, err := lookupCell(c.variant, c.size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit takes exactly one count")
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

	if err := s.EditSnapshot(on, v, size, n); err != nil {
		fmt.Fprintf(os.Stderr, "Error editing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s %s %s: %d\n", on, stock.ShortName(v), size, n)
	return subcommands.ExitSuccess
}
