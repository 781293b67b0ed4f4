package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cmdref"
	"github.com/fwojciec/cmdref/bubbletea"
	"github.com/fwojciec/cmdref/jsonschema"
	cmdslog "github.com/fwojciec/cmdref/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Browse runs the interactive browser. Replaced in tests.
	Browse func(ctx context.Context, loader cmdref.Loader) error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Browse: func(ctx context.Context, loader cmdref.Loader) error {
			return bubbletea.Run(ctx, loader)
		},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cmdref"),
		kong.Description("Browse the command catalog published by a chat bot's website."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if isHelp(args) {
		_, _ = parser.Parse(args)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cli.LogFile, cli.Verbose)
	defer closeLog()

	validator, err := jsonschema.NewValidator()
	if err != nil {
		return err
	}

	deps.Logger = logger
	deps.Fetcher = func(source string) (cmdref.Fetcher, error) {
		return ResolveFetcher(source, cli.BaseURL, cli.Timeout)
	}
	deps.Validator = cmdslog.NewLoggingValidator(validator, logger)
	deps.Browse = m.Browse

	return kongCtx.Run(deps)
}

// isHelp reports whether args ask for help rather than a command.
func isHelp(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	return slices.Contains(args, "--help") || slices.Contains(args, "-h")
}

// errorText returns the message to show the user for err. Application
// errors carry a human-readable message; anything else is shown as is.
func errorText(err error) string {
	if cmdref.ErrorCode(err) == cmdref.EINTERNAL {
		return err.Error()
	}
	return cmdref.ErrorMessage(err)
}
