// Command marsrover runs rover missions on a rectangular plateau.
//
// It supports three modes:
//  1. default – runs each input and prints every rover's final position
//  2. "validate" – checks each input and prints a verdict with a summary
//  3. "mcp" – serves the simulator as MCP tools over stdio
//
// An input is a file path when such a file exists, "-" for stdin, and
// otherwise the mission text itself. Settings come from defaults, an optional
// YAML file, MARSROVER_* environment variables (a .env file is loaded first)
// and flags, in increasing precedence.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/mcp-training/marsrover/game/config"
	"github.com/wricardo/mcp-training/marsrover/game/parser"
	"github.com/wricardo/mcp-training/marsrover/game/service"
	"github.com/wricardo/mcp-training/marsrover/internal/ctxlog"
	"github.com/wricardo/mcp-training/marsrover/internal/printer"
	mcptransport "github.com/wricardo/mcp-training/marsrover/transport/mcp"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "marsrover"
)

// genericFailure is shown instead of error details unless debug is on
const genericFailure = "Application exception occurred. Please enable debug mode to see more details."

var errValidationFailed = errors.New("one or more inputs are invalid")

// app holds the resolved settings and I/O for one command-line run
type app struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv func(string) (string, bool)

	debug    bool
	settings *config.Settings
	printer  *printer.Printer
	logger   *slog.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) *app {
	return &app{
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		lookupEnv: lookupEnv,
		printer:   printer.New(stdout, stderr, false),
		logger:    ctxlog.Discard(),
	}
}

// main loads .env, runs the command tree and maps failures to exit status 1.
func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr, os.LookupEnv)
	a.loadEnvFile(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx, os.Args); err != nil {
		a.reportError(err)
		stop()
		os.Exit(1)
	}
}

// loadEnvFile loads variables from a .env file if it exists
func (a *app) loadEnvFile(path string) {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		a.printer.Warning("error loading %s file: %v", path, err)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	return a.command().Run(ctx, args)
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      AppName,
		Version:   Version,
		Usage:     "land rovers on a plateau and drive them with L, R and M commands",
		ArgsUsage: "<input>...",
		Description: "Each <input> is a mission file path, \"-\" for stdin, or the mission text itself.\n" +
			"Inputs run one after another as independent missions.\n\n" + parser.InputFormat,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "show full error details",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML settings file",
			},
			&cli.BoolFlag{
				Name:  "collisions",
				Value: true,
				Usage: "reject moves and landings onto a cell held by another rover",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format: text or json",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Before: a.before,
		Action: a.simulate,
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "check mission inputs without printing rover positions",
				ArgsUsage: "<input>...",
				Action:    a.validate,
			},
			{
				Name:   "mcp",
				Usage:  "serve the simulator as MCP tools over stdio",
				Action: a.serveMCP,
			},
		},
	}
}

// before resolves settings: defaults, YAML file, environment, then flags
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	a.debug = cmd.Bool("debug")

	settings, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	if err := settings.ApplyEnv(a.lookupEnv); err != nil {
		return ctx, err
	}

	if cmd.IsSet("debug") {
		settings.Debug = cmd.Bool("debug")
	}
	if cmd.IsSet("collisions") {
		settings.Collisions = cmd.Bool("collisions")
	}
	if cmd.IsSet("log-level") {
		settings.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		settings.Log.Format = cmd.String("log-format")
	}
	if cmd.Bool("no-color") {
		settings.Color = false
	}
	if err := settings.Validate(); err != nil {
		return ctx, err
	}

	a.settings = settings
	a.debug = settings.Debug
	a.printer = printer.New(a.stdout, a.stderr, settings.Color)
	a.logger = ctxlog.New(settings.Log.Level, settings.Log.Format, a.stderr)
	a.logger.Debug("settings resolved",
		"collisions", settings.Collisions,
		"debug", settings.Debug,
		"config", cmd.String("config"))

	return ctxlog.WithLogger(ctx, a.logger), nil
}

func (a *app) missionService() service.MissionService {
	return service.NewMissionService(service.Options{Collisions: a.settings.Collisions})
}

// simulate runs every input and prints the rover reports
func (a *app) simulate(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return cli.ShowAppHelp(cmd)
	}

	svc := a.missionService()

	for _, arg := range cmd.Args().Slice() {
		input := resolveInput(arg, a.stdin)
		report, err := a.simulateInput(ctx, svc, input)
		if err != nil {
			return fmt.Errorf("%s: %w", input.Source, err)
		}
		a.printer.Report(report.Lines())
	}
	return nil
}

func (a *app) simulateInput(ctx context.Context, svc service.MissionService, input missionInput) (*service.MissionReport, error) {
	r, err := input.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return svc.Simulate(ctx, service.MissionRequest{Source: input.Source, Input: r})
}

// validate runs every input and prints a verdict per input
func (a *app) validate(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("validate needs at least one input")
	}

	svc := a.missionService()

	failed := 0
	for _, arg := range cmd.Args().Slice() {
		input := resolveInput(arg, a.stdin)
		result := a.validateInput(ctx, svc, input)

		switch {
		case result.Valid:
			a.printer.Success("%s: valid, %s", input.Source, result.Summary())
		case result.Line > 0:
			failed++
			a.printer.Failure("%s: line %d: %s", input.Source, result.Line, result.Error)
		default:
			failed++
			a.printer.Failure("%s: %s", input.Source, result.Error)
		}
	}

	total := cmd.NArg()
	if failed > 0 {
		a.printer.Info("%d of %d inputs invalid\n", failed, total)
		return errValidationFailed
	}
	a.printer.Info("%d of %d inputs valid\n", total, total)
	return nil
}

func (a *app) validateInput(ctx context.Context, svc service.MissionService, input missionInput) *service.ValidationResult {
	r, err := input.Open()
	if err != nil {
		return &service.ValidationResult{Source: input.Source, Error: err.Error()}
	}
	defer r.Close()

	return svc.Validate(ctx, service.MissionRequest{Source: input.Source, Input: r})
}

// serveMCP blocks serving MCP tools over stdin and stdout
func (a *app) serveMCP(ctx context.Context, cmd *cli.Command) error {
	srv := mcptransport.NewServer(a.missionService(), Version)
	a.logger.Info("serving MCP over stdio", "version", Version, "collisions", a.settings.Collisions)
	return srv.ServeStdio()
}

// reportError prints a failure the way the debug setting asks for
func (a *app) reportError(err error) {
	if errors.Is(err, errValidationFailed) {
		// verdicts are already printed
		return
	}
	if !a.debug {
		a.printer.Error(genericFailure, "", nil)
		return
	}
	a.printer.Error("Error", err.Error(), []string{"Run with --help to see the mission input format."})
}
