package ensemble

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/infectsim/internal/config"
	"github.com/alexisbeaulieu97/infectsim/internal/model"
	"github.com/alexisbeaulieu97/infectsim/internal/simulation"
	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

func TestRunnerReturnsResultsInMemberOrder(t *testing.T) {
	t.Parallel()

	cfg := ensembleConfig(6, config.Sample{})
	cfg.Ensemble.Parallel = 3
	plan, err := BuildPlan(cfg, 40)
	require.NoError(t, err)

	var mu sync.Mutex
	seen := map[int]int{}
	results, err := NewRunner(nil, func(member int, _ model.StepSummary) {
		mu.Lock()
		seen[member]++
		mu.Unlock()
	}).Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, results, 6)

	for i, res := range results {
		require.Equal(t, i, res.Member)
		require.Equal(t, uint64(40+i), res.Seed)
		require.Len(t, res.Steps, cfg.Parameters.SimulationTime)
		require.Equal(t, cfg.Parameters.SimulationTime, seen[i])
	}
}

func TestRunnerMatchesStandaloneRuns(t *testing.T) {
	t.Parallel()

	plan, err := BuildPlan(ensembleConfig(2, config.Sample{}), 9)
	require.NoError(t, err)

	results, err := NewRunner(nil, nil).Run(context.Background(), plan)
	require.NoError(t, err)

	for _, m := range plan.Members {
		sim, err := simulation.NewSeeded(m.Parameters, m.Seed)
		require.NoError(t, err)
		standalone, err := sim.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, standalone.Steps, results[m.Index].Steps)
	}
}

func TestRunnerStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	plan, err := BuildPlan(ensembleConfig(4, config.Sample{}), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewRunner(nil, nil).Run(ctx, plan)
	require.ErrorIs(t, err, context.Canceled)
	var runErr *simerrors.RunError
	require.ErrorAs(t, err, &runErr)
}

func TestRunnerRejectsEmptyPlan(t *testing.T) {
	t.Parallel()

	_, err := NewRunner(nil, nil).Run(context.Background(), &Plan{})
	var validationErr *simerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
