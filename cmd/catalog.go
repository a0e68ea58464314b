package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/stock"
	"github.com/google/subcommands"
)

type catalogCmd struct{}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "list variants and sizes" }
func (*catalogCmd) Usage() string {
	return `tsk catalog

  Lists the variants with their number, and the sizes.
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {}

func (c *catalogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", stock.Product)
	fmt.Fprintln(&b, "| # | Variant |")
	fmt.Fprintln(&b, "|---:|:---|")
	for i, v := range catalog.Variants {
		fmt.Fprintf(&b, "| %d | %s |\n", i+1, stock.ShortName(v))
	}
	sizes := make([]string, len(catalog.Sizes))
	for i, s := range catalog.Sizes {
		sizes[i] = string(s)
	}
	fmt.Fprintf(&b, "\nSizes: %s\n", strings.Join(sizes, ", "))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
