package simulation

import (
	"context"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/infectsim/internal/logger"
	"github.com/alexisbeaulieu97/infectsim/internal/model"
	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

// Observer receives each step summary as soon as it is computed, together with
// the population it was computed from. Observers must not retain pop.
type Observer interface {
	Observe(summary model.StepSummary, pop *Population)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(summary model.StepSummary, pop *Population)

// Observe calls f.
func (f ObserverFunc) Observe(summary model.StepSummary, pop *Population) {
	f(summary, pop)
}

// Simulator runs one simulation over a fixed horizon.
type Simulator struct {
	params   model.Parameters
	sampler  ContactSampler
	uniform  Uniform
	seed     uint64
	name     string
	runID    string
	member   int
	log      *logger.Logger
	observer Observer
}

// Option customises a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger used for run progress.
func WithLogger(log *logger.Logger) Option {
	return func(s *Simulator) { s.log = log }
}

// WithObserver registers an observer for per-step summaries.
func WithObserver(o Observer) Option {
	return func(s *Simulator) { s.observer = o }
}

// WithName labels the run result.
func WithName(name string) Option {
	return func(s *Simulator) { s.name = name }
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(s *Simulator) { s.runID = id }
}

// WithMember records the ensemble member index of the run.
func WithMember(member int) Option {
	return func(s *Simulator) { s.member = member }
}

// New builds a Simulator drawing from the supplied random sources.
func New(params model.Parameters, sampler ContactSampler, uniform Uniform, opts ...Option) (*Simulator, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}
	if sampler == nil || uniform == nil {
		return nil, simerrors.NewValidationError("source", "random sources are required", nil)
	}

	s := &Simulator{
		params:  params,
		sampler: sampler,
		uniform: uniform,
		member:  -1,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	return s, nil
}

// NewSeeded builds a Simulator whose randomness comes from NewSource(seed).
func NewSeeded(params model.Parameters, seed uint64, opts ...Option) (*Simulator, error) {
	src := NewSource(seed)
	s, err := New(params, src, src, opts...)
	if err != nil {
		return nil, err
	}
	s.seed = seed
	return s, nil
}

// RunID returns the run identifier.
func (s *Simulator) RunID() string {
	return s.runID
}

// Run builds the population, records the step-0 summary, then alternates
// Update and Summarise for steps 1..SimulationTime-1. The result holds exactly
// SimulationTime summaries. The first failure aborts the run.
func (s *Simulator) Run(ctx context.Context) (*model.RunResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	log := s.log.WithFields(map[string]any{
		"run_id": s.runID,
		"seed":   s.seed,
	})
	if s.member >= 0 {
		log = log.With("member", s.member)
	}

	fail := func(err error) (*model.RunResult, error) {
		log.Error(err, "simulation failed")
		return nil, simerrors.NewRunError(s.runID, s.member, err)
	}

	log.WithFields(map[string]any{
		"population_size": s.params.PopulationSize,
		"simulation_time": s.params.SimulationTime,
	}).Info("simulation started")

	pop, err := NewPopulation(s.params, s.sampler)
	if err != nil {
		return fail(err)
	}

	result := &model.RunResult{
		RunID:      s.runID,
		Name:       s.name,
		Member:     s.member,
		Seed:       s.seed,
		Parameters: s.params,
		Steps:      make([]model.StepSummary, 0, s.params.SimulationTime),
	}

	summary, err := Summarise(pop, 0)
	if err != nil {
		return fail(err)
	}
	s.record(result, summary, pop, log)

	for t := 1; t < s.params.SimulationTime; t++ {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		if err := Update(pop, t, s.params, s.uniform); err != nil {
			return fail(err)
		}
		summary, err := Summarise(pop, t)
		if err != nil {
			return fail(err)
		}
		s.record(result, summary, pop, log)
	}

	fields := map[string]any{"attack_rate": result.AttackRate()}
	if peak, ok := result.Peak(); ok {
		fields["peak_step"] = peak.Step
		fields["peak_infected"] = peak.Infected
	}
	log.WithFields(fields).Info("simulation finished")

	return result, nil
}

func (s *Simulator) record(result *model.RunResult, summary model.StepSummary, pop *Population, log *logger.Logger) {
	result.Steps = append(result.Steps, summary)
	if log.DebugEnabled() {
		log.WithFields(map[string]any{
			"step":                   summary.Step,
			"infected":               summary.Infected,
			"new_infections":         summary.NewInfections,
			"prevalence_in_contacts": summary.PrevalenceInContacts,
			"overall_prevalence":     summary.OverallPrevalence,
		}).Debug("step summarised")
	}
	if s.observer != nil {
		s.observer.Observe(summary, pop)
	}
}
