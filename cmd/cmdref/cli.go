package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/cmdref"
	"github.com/fwojciec/cmdref/gjson"
	cmdslog "github.com/fwojciec/cmdref/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Fetcher resolves a SOURCE argument; empty means the default URL.
	Fetcher   func(source string) (cmdref.Fetcher, error)
	Validator cmdref.Validator
	Browse    func(ctx context.Context, loader cmdref.Loader) error
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// fetcher resolves source and wraps the result with logging.
func (d *Dependencies) fetcher(source string) (cmdref.Fetcher, error) {
	f, err := d.Fetcher(source)
	if err != nil {
		return nil, err
	}
	return cmdslog.NewLoggingFetcher(f, d.logger()), nil
}

// Loader returns a logging catalog loader for source.
func (d *Dependencies) Loader(source string) (cmdref.Loader, error) {
	f, err := d.fetcher(source)
	if err != nil {
		return nil, err
	}
	return cmdslog.NewLoggingLoader(gjson.NewLoader(f), d.logger()), nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL string        `name:"base-url" env:"CMDREF_BASE_URL" default:"http://localhost:3000" help:"Site root serving bot-commands.json"`
	Timeout time.Duration `env:"CMDREF_TIMEOUT" default:"10s" help:"HTTP request timeout"`
	LogFile string        `name:"log-file" env:"CMDREF_LOG_FILE" help:"Write logs to this file (rotated); logging is off when empty"`
	Verbose bool          `short:"v" help:"Log at debug level"`

	Browse BrowseCmd `cmd:"" default:"withargs" help:"Browse commands interactively (default)"`
	List   ListCmd   `cmd:"" help:"Print the command catalog"`
	Check  CheckCmd  `cmd:"" help:"Validate one or more catalog documents"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Source string `arg:"" optional:"" help:"Catalog URL or file (default: <base-url>/bot-commands.json)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string   `arg:"" optional:"" help:"Catalog URL or file (default: <base-url>/bot-commands.json)"`
	Filter string   `short:"f" help:"Only show commands matching this text"`
	Expand []string `short:"e" name:"expand" help:"Show commands of the category with this ID (repeatable)"`
	All    bool     `short:"a" help:"Show commands of every category"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Sources []string `arg:"" name:"source" help:"Catalog URLs or files to validate"`
}
