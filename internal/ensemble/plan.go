// Package ensemble runs batches of independent simulations.
package ensemble

import (
	"fmt"
	"math/rand/v2"

	"github.com/alexisbeaulieu97/infectsim/internal/config"
	"github.com/alexisbeaulieu97/infectsim/internal/model"
	"github.com/alexisbeaulieu97/infectsim/internal/simulation"
	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

// DefaultParallel bounds concurrent members when the config leaves it unset.
const DefaultParallel = 4

// samplingStream separates parameter sampling from the members' own streams.
const samplingStream = 0x5851f42d4c957f2d

// Member is one run of an ensemble.
type Member struct {
	Index      int
	Seed       uint64
	Parameters model.Parameters
}

// Plan is the fully resolved list of members to run.
type Plan struct {
	Name     string
	Parallel int
	Members  []Member
}

// BuildPlan expands cfg into members. Member i is seeded with baseSeed+i.
// When the config samples parameters, each member draws one value per
// sampled list, in the order rate, contact parameter, initial prevalence.
// Every member is validated before the plan is returned.
func BuildPlan(cfg *config.Config, baseSeed uint64) (*Plan, error) {
	if cfg == nil {
		return nil, simerrors.NewValidationError("config", "configuration is nil", nil)
	}
	if cfg.Ensemble == nil {
		return nil, simerrors.NewValidationError("ensemble", "configuration has no ensemble block", nil)
	}

	ens := cfg.Ensemble
	parallel := ens.Parallel
	if parallel <= 0 {
		parallel = DefaultParallel
	}

	sampler := rand.New(rand.NewPCG(baseSeed, samplingStream))
	base := cfg.Parameters.Model()
	plan := &Plan{Name: cfg.Name, Parallel: parallel, Members: make([]Member, ens.Members)}

	for i := range plan.Members {
		params := base
		if v, ok := pick(sampler, ens.Sample.RatePerInfectedContact); ok {
			params.RatePerInfectedContact = v
		}
		if v, ok := pick(sampler, ens.Sample.ContactNumberParameter); ok {
			params.ContactNumberParameter = v
		}
		if v, ok := pick(sampler, ens.Sample.InitialPrevalenceInContacts); ok {
			params.InitialPrevalenceInContacts = v
		}

		if err := simulation.ValidateParameters(params); err != nil {
			return nil, simerrors.NewValidationError(fmt.Sprintf("ensemble.members[%d]", i), err.Error(), err)
		}

		plan.Members[i] = Member{Index: i, Seed: baseSeed + uint64(i), Parameters: params}
	}

	return plan, nil
}

func pick(r *rand.Rand, choices []float64) (float64, bool) {
	if len(choices) == 0 {
		return 0, false
	}
	return choices[r.IntN(len(choices))], true
}
