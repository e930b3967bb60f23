package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
	"github.com/lox/twentyone/internal/scoreboard"
	"github.com/lox/twentyone/internal/tui"
)

type CLI struct {
	Config   string `short:"c" default:"twentyone.hcl" help:"Path to HCL configuration file"`
	Player   string `short:"p" help:"Player name (overrides config)"`
	Scores   string `help:"Scoreboard file (overrides config)"`
	Seed     *int64 `help:"Random seed for a reproducible shuffle"`
	LogFile  string `help:"Log file path (overrides config)"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	NoColor  bool   `help:"Disable colours"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("twentyone"),
		kong.Description("Blackjack against the dealer with live hypergeometric odds."))

	cfg, err := loadConfig(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	if err := run(cli, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(cli CLI) (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", cli.Config, err)
	}

	if cli.Player != "" {
		cfg.Player.Name = cli.Player
	}
	if cli.Scores != "" {
		cfg.Scoreboard.Path = cli.Scores
	}
	if cli.LogFile != "" {
		cfg.Log.File = cli.LogFile
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "twentyone",
		Level:           lvl,
	}), nil
}

func run(cli CLI, cfg *config.Config) error {
	// The terminal belongs to the TUI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger, err := newLogger(logFile, cfg.Log.Level)
	if err != nil {
		return err
	}

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	rng := randutil.Fresh()
	if cli.Seed != nil {
		rng = randutil.New(*cli.Seed)
	}
	// The sampler gets its own stream so toggling charts never changes the deal.
	sampler := randutil.Split(rng, 1)[0]

	logger.Info("Starting twentyone",
		"config", cli.Config,
		"scores", cfg.Scoreboard.Path,
		"seeded", cli.Seed != nil)

	board := scoreboard.Open(scoreboard.NewFileStore(cfg.Scoreboard.Path), quartz.NewReal(), logger)
	bus := game.NewEventBus()
	session := game.NewSession(rng,
		game.WithLogger(logger),
		game.WithScoreRecorder(board),
		game.WithEventBus(bus),
		game.WithChart(cfg.ChartMode(), cfg.Chart.Trials),
		game.WithName(cfg.Player.Name),
	)

	model := tui.New(session, bus, board, logger,
		tui.WithSimulations(cfg.Chart.Simulations),
		tui.WithRand(sampler))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running TUI: %w", err)
	}

	logger.Info("Exiting", "final_state", session.State(), "score", session.Score())
	return nil
}
