package ensemble

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/infectsim/internal/logger"
	"github.com/alexisbeaulieu97/infectsim/internal/model"
	"github.com/alexisbeaulieu97/infectsim/internal/simulation"
	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

// ProgressFunc is called after each member step. It is invoked from several
// goroutines at once and must be safe for concurrent use.
type ProgressFunc func(member int, summary model.StepSummary)

// Runner executes a Plan.
type Runner struct {
	log      *logger.Logger
	progress ProgressFunc
}

// NewRunner returns a Runner. progress may be nil.
func NewRunner(log *logger.Logger, progress ProgressFunc) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{log: log, progress: progress}
}

// Run executes every member of plan with at most plan.Parallel running at
// once. Results are returned in member order. The first failing member
// cancels the remaining ones and its error is returned.
func (r *Runner) Run(ctx context.Context, plan *Plan) ([]*model.RunResult, error) {
	if plan == nil || len(plan.Members) == 0 {
		return nil, simerrors.NewValidationError("ensemble", "plan has no members", nil)
	}

	log := r.log.WithFields(map[string]any{
		"ensemble": plan.Name,
		"members":  len(plan.Members),
		"parallel": plan.Parallel,
	})
	log.Info("ensemble started")

	results := make([]*model.RunResult, len(plan.Members))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(plan.Parallel)

	for _, member := range plan.Members {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return simerrors.NewRunError("", member.Index, err)
			}

			opts := []simulation.Option{
				simulation.WithLogger(r.log),
				simulation.WithMember(member.Index),
				simulation.WithName(plan.Name),
			}
			if r.progress != nil {
				opts = append(opts, simulation.WithObserver(simulation.ObserverFunc(
					func(s model.StepSummary, _ *simulation.Population) {
						r.progress(member.Index, s)
					})))
			}

			sim, err := simulation.NewSeeded(member.Parameters, member.Seed, opts...)
			if err != nil {
				return simerrors.NewRunError("", member.Index, err)
			}
			res, err := sim.Run(ctx)
			if err != nil {
				return err
			}
			results[member.Index] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error(err, "ensemble failed")
		return nil, err
	}

	log.Info("ensemble finished")
	return results, nil
}
