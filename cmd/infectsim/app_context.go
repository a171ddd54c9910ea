package main

import (
	"io"
	"os"
	"time"

	"github.com/alexisbeaulieu97/infectsim/internal/config"
	"github.com/alexisbeaulieu97/infectsim/internal/logger"
)

// lookupEnv is swapped in tests.
var lookupEnv config.LookupFunc = os.LookupEnv

// now is swapped in tests.
var now = time.Now

// AppContext bundles the resolved configuration and logger for one command.
type AppContext struct {
	Config *config.Config
	Log    *logger.Logger
	Seed   uint64
}

// overrides carries command-line values that beat env and file settings.
type overrides struct {
	seed    *uint64
	output  string
	verbose bool
}

func newAppContext(configPath string, over overrides, logOut io.Writer) (*AppContext, error) {
	cfg, err := config.Load(configPath, lookupEnv)
	if err != nil {
		return nil, err
	}

	if over.seed != nil {
		cfg.Settings.Seed = over.seed
	}
	if over.output != "" {
		cfg.Settings.Output = over.output
	}
	if over.verbose {
		cfg.Settings.Verbose = true
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:         logger.LevelFor(cfg.Settings.Verbose),
		HumanReadable: true,
		Writer:        logOut,
	})
	if err != nil {
		return nil, err
	}

	app := &AppContext{Config: cfg, Log: log}
	if cfg.Settings.Seed != nil {
		app.Seed = *cfg.Settings.Seed
	} else {
		app.Seed = uint64(now().UnixNano())
		log.With("seed", app.Seed).Info("no seed configured, using time-derived seed")
	}

	return app, nil
}
