package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *Config)
		field string
	}{
		{
			name: "no overrides leaves config untouched",
			env:  map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name: "blank values are ignored",
			env:  map[string]string{EnvSeed: "  "},
			check: func(t *testing.T, cfg *Config) {
				require.Nil(t, cfg.Settings.Seed)
			},
		},
		{
			name: "verbose and population overrides",
			env:  map[string]string{EnvVerbose: "true", EnvPopulationSize: "25"},
			check: func(t *testing.T, cfg *Config) {
				require.True(t, cfg.Settings.Verbose)
				require.Equal(t, 25, cfg.Parameters.PopulationSize)
			},
		},
		{name: "malformed seed", env: map[string]string{EnvSeed: "-3"}, field: "env." + EnvSeed},
		{name: "malformed population", env: map[string]string{EnvPopulationSize: "many"}, field: "env." + EnvPopulationSize},
		{name: "malformed horizon", env: map[string]string{EnvSimulationTime: "1.5"}, field: "env." + EnvSimulationTime},
		{name: "malformed verbose", env: map[string]string{EnvVerbose: "loud"}, field: "env." + EnvVerbose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			err := ApplyEnv(cfg, mapLookup(tt.env))
			if tt.field == "" {
				require.NoError(t, err)
				tt.check(t, cfg)
				return
			}
			var validationErr *simerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}
