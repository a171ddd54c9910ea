package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/infectsim/internal/config"
)

var validateCmdRunner = runValidate

func newValidateCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse and validate a configuration without running it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfigPath(path, true); err != nil {
				return err
			}
			return validateCmdRunner(cmd, path)
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "Path to configuration file")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	cfg, err := config.Load(path, lookupEnv)
	if err != nil {
		return err
	}

	p := cfg.Parameters
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid: %q, %d agents over %d steps\n",
		path, cfg.Name, p.PopulationSize, p.SimulationTime)
	if cfg.Ensemble != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "  ensemble: %d members\n", cfg.Ensemble.Members)
	}
	return nil
}
