package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/fintrace-client/internal/config"
	"github.com/MKhiriev/fintrace-client/internal/logger"
	"github.com/MKhiriev/fintrace-client/internal/service"
	"github.com/MKhiriev/fintrace-client/models"
	"github.com/atotto/clipboard"
)

const usage = `usage: fintrace [flags] <command> [args]

commands:
  analyze [-copy] FILE...   upload transaction CSV files for fraud analysis ("-" alone reads stdin)
  summarize FILE            analyze FILE and ask for a written summary
  chat FILE                 analyze FILE and ask questions about the result
  history [N]               show the last N analyses (default 20)
  show ID                   print the stored result of a recorded analysis
  version                   print build information

run "fintrace -h" for the list of flags
`

// App is the fintrace CLI.
type App struct {
	services  *service.ClientServices
	args      []string
	format    string
	buildInfo models.AppBuildInfo

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	progress func(w io.Writer, suffix string) progress
	copy     func(text string) error

	logger *logger.Logger
}

// NewApp builds the CLI. args are the positional arguments left after flag
// parsing: the command name followed by its arguments.
func NewApp(services *service.ClientServices, cfg *config.ClientConfig, args []string, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil || services.AnalysisService == nil {
		return nil, errors.New("client services are not initialized")
	}
	if cfg == nil {
		return nil, errors.New("client config is nil")
	}

	format := cfg.Output.Format
	if format == "" {
		format = config.OutputJSON
		if isTerminal(os.Stdout) {
			format = config.OutputPretty
		}
	}

	return &App{
		services:  services,
		args:      args,
		format:    format,
		buildInfo: buildInfo,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		progress:  newProgress,
		copy:      clipboard.WriteAll,
		logger:    logger,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	if len(a.args) == 0 {
		fmt.Fprint(a.stderr, usage)
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, args := a.args[0], a.args[1:]
	a.logger.Debug().Str("command", cmd).Strs("args", args).Msg("running command")

	switch cmd {
	case "analyze":
		return a.runAnalyze(ctx, args)
	case "summarize":
		return a.runSummarize(ctx, args)
	case "chat":
		return a.runChat(ctx, args)
	case "history":
		return a.runHistory(ctx, args)
	case "show":
		return a.runShow(ctx, args)
	case "version":
		fmt.Fprint(a.stdout, a.buildInfo.String())
		return nil
	case "help":
		fmt.Fprint(a.stdout, usage)
		return nil
	default:
		fmt.Fprint(a.stderr, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) pretty() bool {
	return a.format == config.OutputPretty
}
