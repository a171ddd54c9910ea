package simulation

import (
	"github.com/alexisbeaulieu97/infectsim/internal/model"
	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

// Summarise computes the aggregate statistics of pop, labelled with step.
// It does not modify the population.
func Summarise(pop *Population, step int) (model.StepSummary, error) {
	if pop == nil || pop.Len() == 0 {
		return model.StepSummary{}, simerrors.NewValidationError("population", "population is empty", nil)
	}

	s := model.StepSummary{Step: step, PopulationSize: pop.Len()}
	for _, a := range pop.agents {
		s.TotalContacts += a.contacts
		if a.infected {
			s.ContactsIfInfected += a.contacts
			s.Infected++
		}
		if a.newInfection {
			s.NewInfections++
		}
		if a.everInfected {
			s.EverInfected++
		}
	}

	if s.TotalContacts == 0 {
		return model.StepSummary{}, simerrors.NewDegenerateStateError(step, "total contacts", 0)
	}
	s.PrevalenceInContacts = float64(s.ContactsIfInfected) / float64(s.TotalContacts)
	s.OverallPrevalence = float64(s.Infected) / float64(s.PopulationSize)

	return s, nil
}
