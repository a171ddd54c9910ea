package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const smallConfig = `version: "1.0"
name: "cli-test"
parameters:
  population_size: 300
  contact_number_parameter: 6
  rate_per_infected_contact: 0.3
  infectious_period: 2
  initial_prevalence_in_contacts: 0.05
  simulation_time: 12
settings:
  seed: 7
`

const ensembleConfig = `version: "1.0"
name: "cli-sweep"
parameters:
  population_size: 200
  contact_number_parameter: 6
  rate_per_infected_contact: 0.3
  infectious_period: 2
  initial_prevalence_in_contacts: 0.05
  simulation_time: 10
settings:
  seed: 11
ensemble:
  members: 4
  parallel: 2
  sample:
    rate_per_infected_contact: [0.1, 0.3]
`

// isolate pins the environment, clock and terminal detection for one test.
func isolate(t *testing.T, env map[string]string) {
	t.Helper()

	originalLookup, originalNow, originalTerminal := lookupEnv, now, interactiveTerminal
	t.Cleanup(func() {
		lookupEnv, now, interactiveTerminal = originalLookup, originalNow, originalTerminal
	})

	lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	now = func() time.Time { return time.Unix(0, 123456789) }
	interactiveTerminal = func() bool { return false }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeCommand(cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
