package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stock/renderer"
	"github.com/google/subcommands"
)

type inventoryCmd struct {
	current bool
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "display the working inventory" }
func (*inventoryCmd) Usage() string {
	return `tsk inventory [-current]

  Displays the working inventory, or the inventory of the latest snapshot.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.current, "current", false, "display the inventory of the latest snapshot instead")
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	if c.current {
		printMarkdown(renderer.InventoryMarkdown("Current Inventory", s.CurrentInventory(), s.Catalog()))
	} else {
		printMarkdown(renderer.InventoryMarkdown("Working Inventory", s.Working(), s.Catalog()))
	}
	return subcommands.ExitSuccess
}
