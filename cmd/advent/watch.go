package main

import (
	"context"

	"github.com/danmuck/advent2024/internal/puzzle"
	"github.com/danmuck/advent2024/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "watch [day...]",
		Short: "Solve the given days, then re-solve whenever their input file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.apply(cmd.Flags(), a); err != nil {
				return err
			}
			selected, err := a.selectDays(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			runner := a.newRunner()
			renderer := a.renderer()
			out := cmd.OutOrStdout()

			reports, err := runner.RunAll(ctx, a.registry, selected)
			if err != nil {
				return err
			}
			if err := renderer.Render(out, reports); err != nil {
				return err
			}

			w, err := watch.New(a.cfg.InputDir, a.cfg.WatchDebounce, selected, func(ctx context.Context, day int) {
				solver, ok := a.registry.ResolveDay(day)
				if !ok {
					a.logger.Debug().Int("day", day).Msg("no solver for changed input")
					return
				}
				report, err := runner.Run(ctx, solver)
				if err != nil {
					a.logger.Error().Err(err).Int("day", day).Msg("re-run failed")
					return
				}
				if err := renderer.Render(out, []puzzle.Report{report}); err != nil {
					a.logger.Error().Err(err).Msg("render failed")
				}
			}, a.logger)
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()

			<-ctx.Done()
			return nil
		},
	}
	bindRunFlags(cmd.Flags(), opts)
	return cmd
}
