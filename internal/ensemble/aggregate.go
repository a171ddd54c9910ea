package ensemble

import (
	"fmt"

	"github.com/alexisbeaulieu97/infectsim/internal/model"
	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

// StepStats summarises one step across all members.
type StepStats struct {
	Step                  int     `json:"step"`
	MeanInfected          float64 `json:"mean_infected"`
	MinInfected           int     `json:"min_infected"`
	MaxInfected           int     `json:"max_infected"`
	MeanNewInfections     float64 `json:"mean_new_infections"`
	MeanOverallPrevalence float64 `json:"mean_overall_prevalence"`
}

// Summary is the reduction of an ensemble's results.
type Summary struct {
	Name           string      `json:"name,omitempty"`
	Members        int         `json:"members"`
	MeanAttackRate float64     `json:"mean_attack_rate"`
	Steps          []StepStats `json:"steps"`
}

// Aggregate reduces member results to per-step statistics. All members must
// cover the same number of steps.
func Aggregate(results []*model.RunResult) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, simerrors.NewValidationError("ensemble", "no results to aggregate", nil)
	}

	for i, r := range results {
		if r == nil {
			return Summary{}, simerrors.NewValidationError(fmt.Sprintf("results[%d]", i), "result is missing", nil)
		}
	}

	horizon := len(results[0].Steps)
	for i, r := range results {
		if len(r.Steps) != horizon {
			return Summary{}, simerrors.NewValidationError(fmt.Sprintf("results[%d]", i),
				fmt.Sprintf("has %d steps, expected %d", len(r.Steps), horizon), nil)
		}
	}

	n := float64(len(results))
	out := Summary{Name: results[0].Name, Members: len(results), Steps: make([]StepStats, horizon)}

	for step := 0; step < horizon; step++ {
		stats := StepStats{Step: step, MinInfected: results[0].Steps[step].Infected}
		for _, r := range results {
			s := r.Steps[step]
			stats.MeanInfected += float64(s.Infected)
			stats.MeanNewInfections += float64(s.NewInfections)
			stats.MeanOverallPrevalence += s.OverallPrevalence
			stats.MinInfected = min(stats.MinInfected, s.Infected)
			stats.MaxInfected = max(stats.MaxInfected, s.Infected)
		}
		stats.MeanInfected /= n
		stats.MeanNewInfections /= n
		stats.MeanOverallPrevalence /= n
		out.Steps[step] = stats
	}

	for _, r := range results {
		out.MeanAttackRate += r.AttackRate()
	}
	out.MeanAttackRate /= n

	return out, nil
}
