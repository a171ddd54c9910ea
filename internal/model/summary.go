package model

// StepSummary holds the aggregate statistics of a population at one step.
// It is computed once per step and never modified afterwards.
type StepSummary struct {
	Step                 int     `json:"step"`
	PopulationSize       int     `json:"population_size"`
	TotalContacts        int     `json:"total_contacts"`
	ContactsIfInfected   int     `json:"contacts_if_infected"`
	Infected             int     `json:"infected"`
	NewInfections        int     `json:"new_infections"`
	EverInfected         int     `json:"ever_infected"`
	PrevalenceInContacts float64 `json:"prevalence_in_contacts"`
	OverallPrevalence    float64 `json:"overall_prevalence"`
}

// RunResult is the ordered output of one simulation run.
type RunResult struct {
	RunID      string        `json:"run_id"`
	Name       string        `json:"name,omitempty"`
	Member     int           `json:"member"`
	Seed       uint64        `json:"seed"`
	Parameters Parameters    `json:"parameters"`
	Steps      []StepSummary `json:"steps"`
}

// Peak returns the summary with the largest infected count. Ties resolve to
// the earliest step. ok is false when the run has no steps.
func (r *RunResult) Peak() (StepSummary, bool) {
	if r == nil || len(r.Steps) == 0 {
		return StepSummary{}, false
	}
	peak := r.Steps[0]
	for _, s := range r.Steps[1:] {
		if s.Infected > peak.Infected {
			peak = s
		}
	}
	return peak, true
}

// AttackRate is the share of the population infected at any point in the run.
func (r *RunResult) AttackRate() float64 {
	if r == nil || len(r.Steps) == 0 {
		return 0
	}
	last := r.Steps[len(r.Steps)-1]
	if last.PopulationSize == 0 {
		return 0
	}
	return float64(last.EverInfected) / float64(last.PopulationSize)
}
