package simulation

import (
	"fmt"

	"github.com/alexisbeaulieu97/infectsim/internal/model"
	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

// PrevalenceInContacts returns the force-of-infection estimate used by the
// update at step t.
//
// The seeded step-0 state has never been produced by an update, so the first
// transition (t <= 1) uses the configured initial prevalence. Later steps use
// the contact-weighted share of infected agents.
func PrevalenceInContacts(pop *Population, t int, p model.Parameters) (float64, error) {
	if t <= 1 {
		return p.InitialPrevalenceInContacts, nil
	}
	infected, total := pop.contactTotals()
	if total == 0 {
		return 0, simerrors.NewDegenerateStateError(t, "total contacts", 0)
	}
	return float64(infected) / float64(total), nil
}

// Update advances every agent in pop to step t.
//
// The prevalence estimate is computed once before any agent changes, so agent
// order only matters for the sequence of random draws.
func Update(pop *Population, t int, p model.Parameters, u Uniform) error {
	if pop == nil {
		return simerrors.NewValidationError("population", "population is nil", nil)
	}
	if t < 0 {
		return simerrors.NewValidationError("step", fmt.Sprintf("must not be negative, got %d", t), nil)
	}

	prevalence, err := PrevalenceInContacts(pop, t, p)
	if err != nil {
		return err
	}

	for i := range pop.agents {
		a := &pop.agents[i]
		a.newInfection = false

		if a.infected {
			a.infectedContacts = None[int]()
			if age, ok := a.infectionAge(t); ok && age == p.InfectiousPeriod {
				a.recover()
			}
			continue
		}
		if a.everInfected {
			continue
		}

		exposures := 0
		for range a.contacts {
			if u.Float64() < prevalence {
				exposures++
			}
		}
		a.infectedContacts = Some(exposures)

		for range exposures {
			if u.Float64() < p.RatePerInfectedContact {
				a.infect(t)
				break
			}
		}
	}

	return nil
}
