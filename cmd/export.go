package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/etnz/stock"
	"github.com/google/subcommands"
)

type exportCmd struct {
	period string
	start  string
	end    string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export snapshots to CSV or Excel files" }
func (*exportCmd) Usage() string {
	return `tsk export [-p <period> | -s <start_date>] [-d <end_date>] [-o <file>] csv|pivot|xlsx|current

  Writes the snapshots of a range of days, all of them by default, oldest
  first:
    csv      one line per day, variant and size
    pivot    one line per variant and size, one column per day
    xlsx     one sheet per variant, one row per day
    current  the working inventory, one sheet per variant
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.end, "d", "", "The end date for the range, today by default.")
	f.StringVar(&c.output, "o", "", "output file, named after the format and range by default")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting one format: csv, pivot, xlsx or current")
		return subcommands.ExitUsageError
	}
	format := f.Arg(0)

	s, logger, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	records := s.Records()
	rg, err := parseRange(c.period, c.start, c.end, records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	snapshots := records.Range(rg)
	slices.Reverse(snapshots)

	name := fmt.Sprintf("在庫記録_%s_%s", rg.From.Format("20060102"), rg.To.Format("20060102"))
	var write func(io.Writer) error
	switch format {
	case "csv":
		name += ".csv"
		write = func(w io.Writer) error { return stock.WriteCSV(w, snapshots, s.Catalog()) }
	case "pivot":
		name += "_pivot.csv"
		write = func(w io.Writer) error { return stock.WritePivotCSV(w, snapshots, s.Catalog()) }
	case "xlsx":
		name += ".xlsx"
		write = func(w io.Writer) error {
			wb, err := stock.HistoryWorkbook(snapshots, s.Catalog())
			if err != nil {
				return err
			}
			defer wb.Close()
			return wb.Write(w)
		}
	case "current":
		name = fmt.Sprintf("現在の在庫_%s.xlsx", today().Format("20060102"))
		snapshots = nil
		write = func(w io.Writer) error {
			wb, err := stock.CurrentWorkbook(s.Working(), s.Catalog())
			if err != nil {
				return err
			}
			defer wb.Close()
			return wb.Write(w)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", format)
		return subcommands.ExitUsageError
	}
	if format != "current" && len(snapshots) == 0 {
		fmt.Fprintln(os.Stderr, "No snapshot to export")
		return subcommands.ExitFailure
	}
	if c.output != "" {
		name = c.output
	}

	if err := writeFile(name, write); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported to %s\n", name)
	return subcommands.ExitSuccess
}
