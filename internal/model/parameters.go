package model

// Parameters is the immutable configuration of a single simulation.
type Parameters struct {
	PopulationSize              int     `json:"population_size"`
	ContactNumberParameter      float64 `json:"contact_number_parameter"`
	RatePerInfectedContact      float64 `json:"rate_per_infected_contact"`
	InfectiousPeriod            int     `json:"infectious_period"`
	InitialPrevalenceInContacts float64 `json:"initial_prevalence_in_contacts"`
	SimulationTime              int     `json:"simulation_time"`
	// SeedIndex is the agent infected at step 0.
	SeedIndex int `json:"seed_index"`
}

// DefaultParameters returns the toy model's reference parameter set.
func DefaultParameters() Parameters {
	return Parameters{
		PopulationSize:              1000,
		ContactNumberParameter:      8,
		RatePerInfectedContact:      0.2,
		InfectiousPeriod:            2,
		InitialPrevalenceInContacts: 0.01,
		SimulationTime:              20,
	}
}
