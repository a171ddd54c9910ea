package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
name: "baseline"
description: "Sample config for parser tests"
parameters:
  population_size: 500
  contact_number_parameter: 6
  rate_per_infected_contact: 0
  infectious_period: 3
  initial_prevalence_in_contacts: 0.1
  simulation_time: 30
settings:
  seed: 42
  output: csv
`

	partialYAML := `version: "1.0"
name: "partial"
parameters:
  population_size: 50
`

	ensembleYAML := `version: "1.0"
name: "sweep"
ensemble:
  members: 5
  parallel: 2
  sample:
    rate_per_infected_contact: [0.1, 0.2, 0.3]
    contact_number_parameter: [5, 6, 7, 8, 9]
`

	invalidYAML := `version: [1, 0]
name: "Broken"
`

	unknownField := `version: "1.0"
name: "typo"
parameters:
  populaton_size: 10
`

	outOfRange := `version: "1.0"
name: "bad rate"
parameters:
  rate_per_infected_contact: 1.5
`

	badSample := `version: "1.0"
name: "bad sample"
ensemble:
  members: 2
  sample:
    initial_prevalence_in_contacts: [0.1, -0.2]
`

	badSeedIndex := `version: "1.0"
name: "bad seed"
parameters:
  population_size: 3
  seed_index: 3
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "baseline", cfg.Name)
				require.Equal(t, 500, cfg.Parameters.PopulationSize)
				require.Zero(t, cfg.Parameters.RatePerInfectedContact, "explicit zero overrides default")
				require.Equal(t, 30, cfg.Parameters.SimulationTime)
				require.NotNil(t, cfg.Settings.Seed)
				require.Equal(t, uint64(42), *cfg.Settings.Seed)
				require.Equal(t, OutputCSV, cfg.Settings.Output)
				require.Nil(t, cfg.Ensemble)
			},
		},
		{
			name:     "missing values fall back to defaults",
			contents: partialYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 50, cfg.Parameters.PopulationSize)
				require.Equal(t, 8.0, cfg.Parameters.ContactNumberParameter)
				require.Equal(t, 0.2, cfg.Parameters.RatePerInfectedContact)
				require.Equal(t, 20, cfg.Parameters.SimulationTime)
				require.Nil(t, cfg.Settings.Seed)
				require.Equal(t, OutputTable, cfg.Settings.Output)
			},
		},
		{
			name:     "ensemble block is parsed",
			contents: ensembleYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg.Ensemble)
				require.Equal(t, 5, cfg.Ensemble.Members)
				require.Equal(t, 2, cfg.Ensemble.Parallel)
				require.Equal(t, []float64{0.1, 0.2, 0.3}, cfg.Ensemble.Sample.RatePerInfectedContact)
				require.False(t, cfg.Ensemble.Sample.Empty())
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *simerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown fields are rejected",
			contents: unknownField,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *simerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "populaton_size")
				require.Equal(t, 4, parseErr.Line)
			},
		},
		{
			name:     "probability outside unit interval",
			contents: outOfRange,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *simerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "parameters.rate_per_infected_contact", validationErr.Field)
				require.Contains(t, validationErr.Message, "1.5")
			},
		},
		{
			name:     "sampled values are validated",
			contents: badSample,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *simerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "ensemble.sample.initial_prevalence_in_contacts[1]", validationErr.Field)
			},
		},
		{
			name:     "seed index must address an agent",
			contents: badSeedIndex,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *simerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "parameters.seed_index", validationErr.Field)
			},
		},
		{
			name:     "empty file",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *simerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "empty")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
			if err != nil {
				require.Nil(t, cfg)
			}
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *simerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadLayersEnvironmentOverFile(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, `version: "1.0"
name: "layered"
parameters:
  population_size: 100
  simulation_time: 10
settings:
  seed: 1
`)
	env := map[string]string{
		EnvSeed:           "77",
		EnvSimulationTime: "15",
		EnvOutput:         "JSON",
	}

	cfg, err := Load(path, mapLookup(env))
	require.NoError(t, err)
	require.Equal(t, uint64(77), *cfg.Settings.Seed)
	require.Equal(t, 100, cfg.Parameters.PopulationSize)
	require.Equal(t, 15, cfg.Parameters.SimulationTime)
	require.Equal(t, OutputJSON, cfg.Settings.Output)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "infection-toy-model", cfg.Name)
}

func TestLoadValidatesOverrides(t *testing.T) {
	t.Parallel()

	_, err := Load("", mapLookup(map[string]string{EnvPopulationSize: "0"}))
	var validationErr *simerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "parameters.population_size", validationErr.Field)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestExampleConfigsParse(t *testing.T) {
	t.Parallel()

	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig(path)
			require.NoError(t, err)
			require.NotNil(t, cfg.Settings.Seed)
		})
	}
}
