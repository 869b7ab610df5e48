package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/advent2024/internal/config"
	"github.com/danmuck/advent2024/internal/days"
	"github.com/danmuck/advent2024/internal/logging"
	"github.com/danmuck/advent2024/internal/observability"
	"github.com/danmuck/advent2024/internal/puzzle"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// annotationIgnoreConfigErrors marks commands that must run even when the
// existing config file does not load, such as replacing it.
const annotationIgnoreConfigErrors = "advent/ignore-config-errors"

// app carries state shared by every subcommand once the root has loaded it.
type app struct {
	configPath string
	cfg        config.Config
	loaded     bool
	registry   *puzzle.Registry
	logger     zerolog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "advent: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "advent",
		Short:         "Advent of Code 2024 puzzle runner",
		Long:          "Solves Advent of Code 2024 puzzles from input/dayNN.txt files and reports both parts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.Annotations[annotationIgnoreConfigErrors] == "true")
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "path to advent.toml")

	root.AddCommand(
		newRunCmd(a),
		newListCmd(a),
		newWatchCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) load(ignoreConfigErrors bool) error {
	a.logger = observability.InitLogger("advent")

	cfg, loaded, err := config.Load(a.configPath)
	if err != nil {
		if !ignoreConfigErrors {
			return err
		}
		a.logger.Warn().Err(err).Str("path", a.configPath).Msg("ignoring unreadable config")
		cfg, loaded = config.DefaultConfig(), false
	}
	a.cfg = cfg
	a.loaded = loaded
	logging.SetLevel(cfg.LogLevel)
	a.logger = a.logger.Level(zerolog.GlobalLevel())
	if loaded {
		a.logger.Debug().Str("path", a.configPath).Msg("loaded config")
	}

	registry, err := days.Builtin()
	if err != nil {
		return err
	}
	a.registry = registry
	return nil
}

func (a *app) newRunner() *puzzle.Runner {
	r := puzzle.NewRunner(a.cfg.InputDir, a.logger)
	r.Parallel = a.cfg.Parallel
	return r
}
