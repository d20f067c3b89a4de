package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/hausp/bigcalc/internal/cli"
	"github.com/hausp/bigcalc/internal/config"
	apperrors "github.com/hausp/bigcalc/internal/errors"
	"github.com/hausp/bigcalc/internal/logging"
	"github.com/hausp/bigcalc/internal/server"
	"github.com/hausp/bigcalc/internal/tui"
	"github.com/hausp/bigcalc/internal/ui"
)

// Application represents the bigcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	app := &Application{ErrWriter: errWriter}

	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg, err := config.ParseConfig(fs, cmdArgs)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}
	if a.Config.ShowVersion {
		fmt.Fprintf(out, "bigcalc %s\n", Version)
		return apperrors.ExitSuccess
	}

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	switch {
	case a.Config.Serve:
		return a.runServe(ctx)
	case a.Config.TUI:
		return a.runTUI(ctx)
	case a.Config.ExprFile != "":
		return a.runEvalFile(ctx, out)
	case a.Config.Expr == "":
		return a.runREPL(out)
	default:
		return a.runEval(ctx, out)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runServe starts the HTTP evaluation server and blocks until shutdown.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := logging.NewLogger(os.Stderr, "server")
	srv := server.New(a.Config, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server failed", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive TUI dashboard. Per-evaluation timeouts are
// enforced inside the orchestration layer, so only signals cancel this context.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Config, Version)
}

// runREPL starts the line-oriented interactive mode.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(cli.REPLConfig{
		Timeout:  a.Config.Timeout,
		MaxShift: a.Config.MaxShift,
		ShowFull: a.Config.ShowFull,
		Details:  a.Config.Details,
		Hex:      a.Config.Hex,
		Digits:   a.Config.Digits,
	})
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
