// Package cmd implements the CLI application to track the shirt stock.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stock"
	"github.com/etnz/stock/config"
	"github.com/etnz/stock/date"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for group, cmds := range Groups() {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

// Groups returns the subcommands by group name.
func Groups() map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"inventory": {&inventoryCmd{}, &catalogCmd{}, &setCmd{}, &addCmd{}, &subCmd{}, &syncCmd{}, &commitCmd{}},
		"records":   {&importCmd{}, &historyCmd{}, &showCmd{}, &editCmd{}, &deleteCmd{}},
		"tags":      {&tagCmd{}, &tagsCmd{}},
		"files":     {&exportCmd{}, &backupCmd{}, &restoreCmd{}},
		"help":      {&topicCmd{}},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "directory of the data files, overrides the configuration")
var Verbose = flag.Bool("verbose", false, "log debug messages")

// catalog is the fixed product catalog.
var catalog = stock.DefaultCatalog()

// Environment variables read by the application and passed to extensions.
const (
	EnvDataDir    = "TSK_DATA_DIR"
	EnvVerbose    = "TSK_VERBOSE"
	EnvTestingNow = "TSK_TESTING_NOW"
)

// now returns the current time, or the time set in EnvTestingNow.
func now() time.Time {
	if v := os.Getenv(EnvTestingNow); v != "" {
		t, err := time.ParseInLocation("2006-01-02 15:04:05", v, time.Local)
		if err != nil {
			panic(fmt.Sprintf("invalid %s: %v", EnvTestingNow, err))
		}
		return t
	}
	return time.Now()
}

// today returns the current day.
func today() date.Date { return date.Of(now()) }

// loadConfig loads the configuration and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load configuration: %w", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *Verbose {
		cfg.Logger.Level = "debug"
	}
	return cfg, nil
}

// OpenStore is the central function to open the data files.
func OpenStore() (*stock.Store, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := config.NewLogger(cfg.Logger)
	if err != nil {
		return nil, nil, err
	}
	s, err := stock.Open(cfg.DataDir, catalog, stock.WithLogger(logger), stock.WithClock(now))
	if err != nil {
		logger.Sync()
		return nil, nil, err
	}
	logger.Debug("store opened", zap.String("dir", cfg.DataDir))
	return s, logger, nil
}

// printMarkdown prints markdown to stdout, styled for the terminal if there
// is one.
func printMarkdown(md string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// lookupCell resolves a variant and size typed by the user.
func lookupCell(variant, size string) (stock.Variant, stock.Size, error) {
	if variant == "" || size == "" {
		return "", "", fmt.Errorf("both -v and -s are required")
	}
	v, err := catalog.LookupVariant(variant)
	if err != nil {
		return "", "", err
	}
	s, err := catalog.LookupSize(size)
	if err != nil {
		return "", "", err
	}
	return v, s, nil
}

// parseRange returns the range selected by the -p, -s and -d flags. Without
// any of them, it returns the span of the records.
func parseRange(period, start, end string, r *stock.Records) (date.Range, error) {
	if period == "" && start == "" && end == "" {
		if span, ok := r.Span(); ok {
			return span, nil
		}
		return date.NewRange(today(), today()), nil
	}
	to := today()
	if end != "" {
		var err error
		if to, err = date.Parse(end); err != nil {
			return date.Range{}, fmt.Errorf("invalid end date: %w", err)
		}
	}
	if start != "" {
		from, err := date.Parse(start)
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid start date: %w", err)
		}
		return date.NewRange(from, to), nil
	}
	if period != "" {
		p, err := date.ParsePeriod(period)
		if err != nil {
			return date.Range{}, err
		}
		return p.Range(to), nil
	}
	// only an end date: everything up to it.
	from := to
	if span, ok := r.Span(); ok && span.From.Before(to) {
		from = span.From
	}
	return date.NewRange(from, to), nil
}
