package config

import (
	"fmt"
	"strconv"
	"strings"

	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Environment variables that override configuration values.
const (
	EnvSeed           = "INFECTSIM_SEED"
	EnvPopulationSize = "INFECTSIM_POPULATION_SIZE"
	EnvSimulationTime = "INFECTSIM_SIMULATION_TIME"
	EnvOutput         = "INFECTSIM_OUTPUT"
	EnvVerbose        = "INFECTSIM_VERBOSE"
)

// ApplyEnv overwrites cfg with any override present in the environment.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if v, ok := nonEmpty(lookup, EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return envError(EnvSeed, v, err)
		}
		cfg.Settings.Seed = &seed
	}
	if v, ok := nonEmpty(lookup, EnvPopulationSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvPopulationSize, v, err)
		}
		cfg.Parameters.PopulationSize = n
	}
	if v, ok := nonEmpty(lookup, EnvSimulationTime); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvSimulationTime, v, err)
		}
		cfg.Parameters.SimulationTime = n
	}
	if v, ok := nonEmpty(lookup, EnvOutput); ok {
		cfg.Settings.Output = strings.ToLower(v)
	}
	if v, ok := nonEmpty(lookup, EnvVerbose); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(EnvVerbose, v, err)
		}
		cfg.Settings.Verbose = b
	}
	return nil
}

func nonEmpty(lookup LookupFunc, key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func envError(key, value string, err error) error {
	return simerrors.NewValidationError("env."+key, fmt.Sprintf("invalid value %q", value), err)
}
