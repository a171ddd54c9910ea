package config

import (
	"github.com/alexisbeaulieu97/infectsim/internal/model"
)

// Config represents a full simulation document.
type Config struct {
	Version     string     `yaml:"version" validate:"required,semver"`
	Name        string     `yaml:"name" validate:"required,min=1,max=100"`
	Description string     `yaml:"description,omitempty"`
	Parameters  Parameters `yaml:"parameters"`
	Settings    Settings   `yaml:"settings,omitempty"`
	Ensemble    *Ensemble  `yaml:"ensemble,omitempty"`
}

// Parameters are the model inputs of a single run.
type Parameters struct {
	PopulationSize              int     `yaml:"population_size" validate:"min=1"`
	ContactNumberParameter      float64 `yaml:"contact_number_parameter" validate:"gt=0"`
	RatePerInfectedContact      float64 `yaml:"rate_per_infected_contact" validate:"probability"`
	InfectiousPeriod            int     `yaml:"infectious_period" validate:"min=1"`
	InitialPrevalenceInContacts float64 `yaml:"initial_prevalence_in_contacts" validate:"probability"`
	SimulationTime              int     `yaml:"simulation_time" validate:"min=1,max=100000"`
	SeedIndex                   int     `yaml:"seed_index,omitempty" validate:"min=0"`
}

// Settings holds execution options that do not affect the model itself.
type Settings struct {
	// Seed is optional; a time-derived seed is chosen when it is nil.
	Seed    *uint64 `yaml:"seed,omitempty"`
	Verbose bool    `yaml:"verbose,omitempty"`
	Output  string  `yaml:"output,omitempty" validate:"omitempty,oneof=table csv json"`
}

// Ensemble configures a batch of independent runs.
type Ensemble struct {
	Members  int    `yaml:"members" validate:"min=1,max=10000"`
	Parallel int    `yaml:"parallel,omitempty" validate:"omitempty,min=1,max=64"`
	Sample   Sample `yaml:"sample,omitempty"`
}

// Sample lists the values ensemble members draw their parameters from. An
// empty list keeps the base parameter.
type Sample struct {
	RatePerInfectedContact      []float64 `yaml:"rate_per_infected_contact,omitempty" validate:"omitempty,dive,probability"`
	ContactNumberParameter      []float64 `yaml:"contact_number_parameter,omitempty" validate:"omitempty,dive,gt=0"`
	InitialPrevalenceInContacts []float64 `yaml:"initial_prevalence_in_contacts,omitempty" validate:"omitempty,dive,probability"`
}

// Default returns the reference toy-model configuration.
func Default() *Config {
	p := model.DefaultParameters()
	return &Config{
		Version: "1.0",
		Name:    "infection-toy-model",
		Parameters: Parameters{
			PopulationSize:              p.PopulationSize,
			ContactNumberParameter:      p.ContactNumberParameter,
			RatePerInfectedContact:      p.RatePerInfectedContact,
			InfectiousPeriod:            p.InfectiousPeriod,
			InitialPrevalenceInContacts: p.InitialPrevalenceInContacts,
			SimulationTime:              p.SimulationTime,
			SeedIndex:                   p.SeedIndex,
		},
		Settings: Settings{Output: OutputTable},
	}
}

// Output formats understood by the report package.
const (
	OutputTable = "table"
	OutputCSV   = "csv"
	OutputJSON  = "json"
)

// Model converts the parameters to the simulation's value type.
func (p Parameters) Model() model.Parameters {
	return model.Parameters{
		PopulationSize:              p.PopulationSize,
		ContactNumberParameter:      p.ContactNumberParameter,
		RatePerInfectedContact:      p.RatePerInfectedContact,
		InfectiousPeriod:            p.InfectiousPeriod,
		InitialPrevalenceInContacts: p.InitialPrevalenceInContacts,
		SimulationTime:              p.SimulationTime,
		SeedIndex:                   p.SeedIndex,
	}
}

// Empty reports whether no parameter is sampled.
func (s Sample) Empty() bool {
	return len(s.RatePerInfectedContact) == 0 &&
		len(s.ContactNumberParameter) == 0 &&
		len(s.InitialPrevalenceInContacts) == 0
}
