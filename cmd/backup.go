package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/stock"
	"github.com/google/subcommands"
)

type backupCmd struct {
	output string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "save all data to a single file" }
func (*backupCmd) Usage() string {
	return `tsk backup [-o <file>]

  Writes the working inventory, the snapshots and the tag ledger to a JSON file.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file, backup_<timestamp>.json by default")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	b := s.Backup()
	name := c.output
	if name == "" {
		name = fmt.Sprintf("backup_%s.json", b.SavedAt.Format("20060102_150405"))
	}
	if err := writeFile(name, func(w io.Writer) error { return stock.EncodeBackup(w, b, s.Catalog()) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Backup saved to %s\n", name)
	return subcommands.ExitSuccess
}

type restoreCmd struct{}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace all data with a backup" }
func (*restoreCmd) Usage() string {
	return `tsk restore <file>

  Replaces the working inventory, the snapshots and the tag ledger with the
  content of a backup file.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting one backup file")
		return subcommands.ExitUsageError
	}

	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	r, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer r.Close()
	b, err := stock.DecodeBackup(r, s.Catalog())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading backup: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.Restore(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Restored %d snapshots and %d tag movements\n", b.Records.Len(), len(b.Tags.Entries))
	return subcommands.ExitSuccess
}
