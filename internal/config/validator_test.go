package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(cfg *Config)
		field  string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "version must be semver-like", mutate: func(c *Config) { c.Version = "beta" }, field: "version"},
		{name: "name is required", mutate: func(c *Config) { c.Name = "" }, field: "name"},
		{name: "population must be positive", mutate: func(c *Config) { c.Parameters.PopulationSize = 0 }, field: "parameters.population_size"},
		{name: "contact mean must be positive", mutate: func(c *Config) { c.Parameters.ContactNumberParameter = 0 }, field: "parameters.contact_number_parameter"},
		{name: "negative prevalence", mutate: func(c *Config) { c.Parameters.InitialPrevalenceInContacts = -0.01 }, field: "parameters.initial_prevalence_in_contacts"},
		{name: "infectious period must be positive", mutate: func(c *Config) { c.Parameters.InfectiousPeriod = 0 }, field: "parameters.infectious_period"},
		{name: "unknown output format", mutate: func(c *Config) { c.Settings.Output = "xml" }, field: "settings.output"},
		{name: "ensemble needs members", mutate: func(c *Config) { c.Ensemble = &Ensemble{} }, field: "ensemble.members"},
		{name: "ensemble parallelism bounded", mutate: func(c *Config) { c.Ensemble = &Ensemble{Members: 2, Parallel: 1000} }, field: "ensemble.parallel"},
		{name: "sampled contact means must be positive", mutate: func(c *Config) {
			c.Ensemble = &Ensemble{Members: 2, Sample: Sample{ContactNumberParameter: []float64{4, 0}}}
		}, field: "ensemble.sample.contact_number_parameter[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var validationErr *simerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	var validationErr *simerrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
	require.Equal(t, "config", validationErr.Field)
}

func TestParametersModelConversion(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Parameters.SeedIndex = 4
	p := cfg.Parameters.Model()
	require.Equal(t, cfg.Parameters.PopulationSize, p.PopulationSize)
	require.Equal(t, 4, p.SeedIndex)
	require.Equal(t, cfg.Parameters.InfectiousPeriod, p.InfectiousPeriod)
}
