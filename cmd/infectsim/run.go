package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/infectsim/internal/config"
	"github.com/alexisbeaulieu97/infectsim/internal/model"
	"github.com/alexisbeaulieu97/infectsim/internal/report"
	"github.com/alexisbeaulieu97/infectsim/internal/simulation"
	"github.com/alexisbeaulieu97/infectsim/internal/tui"
)

type runOptions struct {
	ConfigPath     string
	Seed           uint64
	SeedSet        bool
	Output         string
	StepsOut       string
	Verbose        bool
	NonInteractive bool
}

func newRunCmd(root *rootFlags) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a single simulation",
		Long: `Run builds a population, seeds one infection and advances the model for
the configured number of steps. Without --config the built-in defaults are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.SeedSet = cmd.Flags().Changed("seed")
			opts.NonInteractive = !interactiveTerminal()

			if err := validateConfigPath(opts.ConfigPath, false); err != nil {
				return err
			}

			return runSimulation(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Random seed; overrides config and environment")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Report format: table, csv or json")
	cmd.Flags().StringVar(&opts.StepsOut, "steps-out", "", "Also write per-step summaries as CSV to this file")

	return cmd
}

func runSimulation(ctx context.Context, opts runOptions, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	over := overrides{output: opts.Output, verbose: opts.Verbose}
	if opts.SeedSet {
		seed := opts.Seed
		over.seed = &seed
	}
	app, err := newAppContext(opts.ConfigPath, over, errOut)
	if err != nil {
		return err
	}

	writer, err := report.NewWriter(app.Config.Settings.Output)
	if err != nil {
		return err
	}

	params := app.Config.Parameters.Model()
	showProgress := app.Config.Settings.Output == config.OutputTable
	modelState := tui.NewModel(app.Config.Name, params, opts.NonInteractive)
	interactive := showProgress && !opts.NonInteractive

	var program *tea.Program
	var programErr error
	done := make(chan struct{})

	if interactive {
		program = tea.NewProgram(modelState, tea.WithOutput(errOut), tea.WithContext(ctx))
		go func() {
			final, runErr := program.Run()
			programErr = runErr
			if m, ok := final.(tui.Model); ok && m.Cancelled() {
				cancel()
			}
			close(done)
		}()
	}

	observer := simulation.ObserverFunc(func(s model.StepSummary, _ *simulation.Population) {
		if showProgress {
			dispatchTuiMessage(interactive, program, &modelState, tui.StepMsg{Summary: s})
		}
	})

	sim, err := simulation.NewSeeded(params, app.Seed,
		simulation.WithLogger(app.Log),
		simulation.WithName(app.Config.Name),
		simulation.WithObserver(observer),
	)
	if err != nil {
		return err
	}

	result, runErr := sim.Run(ctx)

	if showProgress {
		dispatchTuiMessage(interactive, program, &modelState, tui.DoneMsg{Result: result, Err: runErr})
		if interactive {
			program.Send(tea.QuitMsg{})
			<-done
			if programErr != nil && runErr == nil {
				return programErr
			}
		} else {
			fmt.Fprintln(errOut, modelState.View())
		}
	}

	if runErr != nil {
		return runErr
	}

	if opts.StepsOut != "" {
		if err := writeStepsFile(opts.StepsOut, result); err != nil {
			return err
		}
		app.Log.With("path", opts.StepsOut).Info("step summaries written")
	}

	return writer.WriteRun(out, result)
}

func writeStepsFile(path string, result *model.RunResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create steps file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close steps file: %w", cerr)
		}
	}()
	return report.CSVWriter{}.WriteRun(f, result)
}

func dispatchTuiMessage(interactive bool, program *tea.Program, state *tui.Model, msg tea.Msg) {
	if interactive {
		if program != nil {
			program.Send(msg)
		}
		return
	}

	updated, _ := state.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*state = m
	}
}

// interactiveTerminal is swapped in tests.
var interactiveTerminal = func() bool { return isTerminal(os.Stderr) }

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
