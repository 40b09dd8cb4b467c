package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"shaktichain/internal/app"
	"shaktichain/internal/feedback"
	"shaktichain/internal/logging"
	"shaktichain/internal/telemetry"
	"shaktichain/internal/ui"
)

var (
	version = "dev"
	cli     struct {
		SeedFile    string           `help:"YAML file replacing the built-in sample feedback." type:"existingfile" env:"SHAKTICHAIN_SEED_FILE"`
		LogFile     string           `help:"Append logs to this file (the UI owns the terminal)." env:"SHAKTICHAIN_LOG_FILE"`
		Debug       bool             `help:"Log every view transition." env:"SHAKTICHAIN_DEBUG"`
		NoAltScreen bool             `help:"Render inline instead of in the alternate screen." env:"SHAKTICHAIN_NO_ALT_SCREEN"`
		Version     kong.VersionFlag `help:"Print version and exit."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("shaktichain"),
		kong.Description("A secure & anonymous feedback platform, in your terminal."),
		kong.Vars{
			"version": version,
		})
	kctx.FatalIfErrorf(run(context.Background()))
}

func run(ctx context.Context) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return errors.New("shaktichain needs an interactive terminal")
	}

	logger, closeLog, err := logging.Open(cli.LogFile, cli.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := feedback.Seed()
	if cli.SeedFile != "" {
		seed, err = feedback.LoadSeed(cli.SeedFile)
		if err != nil {
			return err
		}
		logger.Info().Str("path", cli.SeedFile).Int("entries", seed.Len()).Msg("loaded seed file")
	}

	tp, err := telemetry.Setup(ctx, telemetry.ConfigFromEnv())
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("telemetry shutdown")
		}
	}()

	controller := app.NewController(seed,
		app.WithLogger(logger),
		app.WithTracer(tp.Tracer()),
	)
	model := ui.NewAppModel(ctx, controller, logger).AsTeaModel()

	opts := []tea.ProgramOption{tea.WithMouseCellMotion(), tea.WithContext(ctx)}
	if !cli.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info().Str("version", version).Bool("tracing", tp.Enabled()).Msg("starting")
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info().Int("entries", controller.State().Feedback.Len()).Msg("exiting")
	return nil
}
