package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/stock"
	"github.com/etnz/stock/renderer"
	"github.com/etnz/stock/spreadsheet"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type importCmd struct {
	sync bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import daily counts from spreadsheet exports" }
func (*importCmd) Usage() string {
	return `tsk import [-sync] <file>...

  Imports the daily counts of xlsx or csv exports, one file per variant.
  See 'tsk topic import' for the expected layout.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.sync, "sync", false, "reset the working inventory to the latest snapshot after the import")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no file to import")
		return subcommands.ExitUsageError
	}

	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	var sheets []stock.Sheet
	var unreadable []string
	for _, path := range f.Args() {
		cells, err := spreadsheet.Read(path)
		if err != nil {
			logger.Warn("skipping unreadable file", zap.String("file", path), zap.Error(err))
			unreadable = append(unreadable, filepath.Base(path))
			continue
		}
		sheets = append(sheets, stock.Sheet{Filename: filepath.Base(path), Cells: cells})
	}

	report, err := s.Import(sheets...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving records: %v\n", err)
		return subcommands.ExitFailure
	}
	report.Files += len(unreadable)
	report.Skipped = append(report.Skipped, unreadable...)

	if c.sync && !report.Empty() {
		if err := s.SyncWorking(); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.ImportMarkdown(report))
	if report.Empty() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
