// File: cmd/wis/solve.go
// Brief: CLI command wiring and implementation for 'solve'.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/intervals/dataset"
	"github.com/katalvlaran/intervals/internal/config"
	"github.com/katalvlaran/intervals/internal/logging"
	"github.com/katalvlaran/intervals/internal/render"
	"github.com/katalvlaran/intervals/wis"
	"github.com/spf13/cobra"
)

func newSolveCommand(logLevel *string) *cobra.Command {
	opts := config.NewOptions()
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Select the best non-overlapping jobs from each problem file",
		Long: strings.TrimSpace(`
Every file may hold one problem (a list of jobs, or a CSV file) or several
(a YAML/JSON document with a "problems" list). Problems are solved one after
another with a single reusable solver, so large batches do not reallocate.
`),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			log, err := logging.New(*logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			results, err := solveFiles(cmd.Context(), log, opts, args)
			if err != nil {
				return err
			}
			return render.New(cmd.OutOrStdout(), opts.Output, opts.NoColor).Render(results)
		},
	}
	opts.AddFlags(cmd)

	return cmd
}

// solveFiles loads and solves every problem in paths, in order.
func solveFiles(ctx context.Context, log logr.Logger, opts *config.Options, paths []string) ([]render.Result, error) {
	var solverOpts []wis.Option
	if opts.Chronological() {
		solverOpts = append(solverOpts, wis.WithChronological())
	}
	if opts.Presorted {
		solverOpts = append(solverOpts, wis.WithValidation())
	}
	solver := wis.NewSolver[int64, int64, dataset.Job](solverOpts...)

	var results []render.Result
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		problems, err := dataset.Load(path)
		if err != nil {
			return nil, err
		}
		for _, p := range problems {
			started := time.Now()
			var selected []dataset.Job
			if opts.Presorted {
				selected, err = solver.SolveSorted(p.Jobs)
				if err != nil {
					return nil, fmt.Errorf("%s: problem %s: %w", path, p.Name, err)
				}
			} else {
				selected = solver.Solve(p.Jobs)
			}
			// NewResult copies: selected aliases the solver buffer
			res := render.NewResult(p.Name, len(p.Jobs), selected)
			log.V(1).Info("solved problem",
				"file", path,
				"problem", p.Name,
				"intervals", len(p.Jobs),
				"selected", len(res.Selected),
				"total", res.Total,
				"elapsed", time.Since(started))
			results = append(results, res)
		}
		log.V(1).Info("loaded file", "file", path, "problems", len(problems))
	}

	return results, nil
}
