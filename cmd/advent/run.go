package main

import (
	"fmt"
	"strconv"

	"github.com/danmuck/advent2024/internal/observability"
	"github.com/danmuck/advent2024/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type runOptions struct {
	inputDir   string
	format     string
	parallel   bool
	noColor    bool
	metricsOut string
}

// bindRunFlags registers flags that override config values for run and watch.
func bindRunFlags(fs *pflag.FlagSet, opts *runOptions) {
	fs.StringVarP(&opts.inputDir, "input-dir", "i", "", "directory holding dayNN.txt inputs (overrides input_dir)")
	fs.StringVarP(&opts.format, "format", "f", "", "output format: text | json | yaml (overrides format)")
	fs.BoolVarP(&opts.parallel, "parallel", "p", false, "solve parts and days concurrently")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored text output")
	fs.StringVar(&opts.metricsOut, "metrics-out", "", "write prometheus metrics to this file after solving")
}

// apply folds explicitly set flags into the loaded config.
func (o *runOptions) apply(fs *pflag.FlagSet, a *app) error {
	if fs.Changed("input-dir") {
		a.cfg.InputDir = o.inputDir
	}
	if fs.Changed("format") {
		a.cfg.Format = o.format
	}
	if fs.Changed("parallel") {
		a.cfg.Parallel = o.parallel
	}
	if fs.Changed("no-color") {
		a.cfg.Color = !o.noColor
	}
	if fs.Changed("metrics-out") {
		a.cfg.MetricsOut = o.metricsOut
	}
	_, err := output.ParseFormat(a.cfg.Format)
	return err
}

func newRunCmd(a *app) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve both parts of the given days (default: config days, else all)",
		Example: "  advent run          # every registered day\n" +
			"  advent run 2 3 -f json\n" +
			"  advent run 1 --input-dir ./testdata",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.apply(cmd.Flags(), a); err != nil {
				return err
			}
			selected, err := a.selectDays(args)
			if err != nil {
				return err
			}

			reports, err := a.newRunner().RunAll(cmd.Context(), a.registry, selected)
			if err != nil {
				return err
			}
			if err := a.renderer().Render(cmd.OutOrStdout(), reports); err != nil {
				return err
			}
			if a.cfg.MetricsOut != "" {
				if err := observability.WriteTextfile(a.cfg.MetricsOut); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
				a.logger.Info().Str("path", a.cfg.MetricsOut).Msg("wrote metrics")
			}
			return nil
		},
	}
	bindRunFlags(cmd.Flags(), opts)
	return cmd
}

// selectDays parses positional day arguments, falling back to the config.
func (a *app) selectDays(args []string) ([]int, error) {
	if len(args) == 0 {
		return a.cfg.Days, nil
	}
	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: %w", arg, err)
		}
		if _, ok := a.registry.ResolveDay(day); !ok {
			return nil, fmt.Errorf("no solver registered for day %d", day)
		}
		days = append(days, day)
	}
	return days, nil
}

func (a *app) renderer() output.Renderer {
	format, _ := output.ParseFormat(a.cfg.Format)
	return output.Renderer{Format: format, Color: a.cfg.Color, Year: a.cfg.Year}
}
