package simulation

import (
	"fmt"

	"github.com/alexisbeaulieu97/infectsim/internal/model"
	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

// ValidateParameters checks p before any population is built.
func ValidateParameters(p model.Parameters) error {
	switch {
	case p.PopulationSize <= 0:
		return invalid("population_size", "must be positive, got %d", p.PopulationSize)
	case p.ContactNumberParameter <= 0:
		return invalid("contact_number_parameter", "must be positive, got %g", p.ContactNumberParameter)
	case !isProbability(p.RatePerInfectedContact):
		return invalid("rate_per_infected_contact", "must be within [0,1], got %g", p.RatePerInfectedContact)
	case p.InfectiousPeriod <= 0:
		return invalid("infectious_period", "must be positive, got %d", p.InfectiousPeriod)
	case !isProbability(p.InitialPrevalenceInContacts):
		return invalid("initial_prevalence_in_contacts", "must be within [0,1], got %g", p.InitialPrevalenceInContacts)
	case p.SimulationTime <= 0:
		return invalid("simulation_time", "must be positive, got %d", p.SimulationTime)
	case p.SeedIndex < 0 || p.SeedIndex >= p.PopulationSize:
		return invalid("seed_index", "must be within [0,%d), got %d", p.PopulationSize, p.SeedIndex)
	}
	return nil
}

func isProbability(v float64) bool {
	return v >= 0 && v <= 1
}

func invalid(field, format string, args ...any) error {
	return simerrors.NewValidationError("parameters."+field, fmt.Sprintf(format, args...), nil)
}
