package main

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/infectsim/internal/config"
	"github.com/alexisbeaulieu97/infectsim/internal/ensemble"
	"github.com/alexisbeaulieu97/infectsim/internal/model"
	"github.com/alexisbeaulieu97/infectsim/internal/report"
)

type ensembleOptions struct {
	ConfigPath string
	Members    int
	Parallel   int
	Seed       uint64
	SeedSet    bool
	Output     string
	Verbose    bool
}

func newEnsembleCmd(root *rootFlags) *cobra.Command {
	opts := ensembleOptions{}

	cmd := &cobra.Command{
		Use:   "ensemble",
		Short: "Run many independent simulations and aggregate them",
		Long: `Ensemble runs the configured number of members concurrently. Member i uses
seed+i, and may draw its parameters from the ensemble sample lists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.SeedSet = cmd.Flags().Changed("seed")

			if err := validateConfigPath(opts.ConfigPath, true); err != nil {
				return err
			}

			return runEnsemble(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().IntVar(&opts.Members, "members", 0, "Number of members; overrides the config")
	cmd.Flags().IntVar(&opts.Parallel, "parallel", 0, "Members run at once; overrides the config")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Base seed; overrides config and environment")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Report format: table, csv or json")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runEnsemble(ctx context.Context, opts ensembleOptions, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	over := overrides{output: opts.Output, verbose: opts.Verbose}
	if opts.SeedSet {
		seed := opts.Seed
		over.seed = &seed
	}
	app, err := newAppContext(opts.ConfigPath, over, errOut)
	if err != nil {
		return err
	}

	applyEnsembleFlags(app.Config, opts)
	if err := config.ValidateConfig(app.Config); err != nil {
		return err
	}

	writer, err := report.NewWriter(app.Config.Settings.Output)
	if err != nil {
		return err
	}

	plan, err := ensemble.BuildPlan(app.Config, app.Seed)
	if err != nil {
		return err
	}

	horizon := app.Config.Parameters.SimulationTime
	total := len(plan.Members)
	var finished atomic.Int64
	progress := func(member int, s model.StepSummary) {
		if s.Step != horizon-1 {
			return
		}
		n := finished.Add(1)
		app.Log.WithFields(map[string]any{
			"member":    member,
			"completed": n,
			"total":     total,
		}).Debug("member completed")
	}

	results, err := ensemble.NewRunner(app.Log, progress).Run(ctx, plan)
	if err != nil {
		return err
	}

	summary, err := ensemble.Aggregate(results)
	if err != nil {
		return err
	}
	summary.Name = plan.Name

	return writer.WriteEnsemble(out, summary)
}

func applyEnsembleFlags(cfg *config.Config, opts ensembleOptions) {
	if opts.Members <= 0 && opts.Parallel <= 0 {
		return
	}
	if cfg.Ensemble == nil {
		cfg.Ensemble = &config.Ensemble{}
	}
	if opts.Members > 0 {
		cfg.Ensemble.Members = opts.Members
	}
	if opts.Parallel > 0 {
		cfg.Ensemble.Parallel = opts.Parallel
	}
}
