package container

import (
	"fmt"
	"log/slog"

	"strandkin/adapters/energy"
	"strandkin/adapters/settings"
	"strandkin/internal/config"
	"strandkin/internal/errors"
	"strandkin/internal/logging"
	"strandkin/internal/profiling"
	"strandkin/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Settings handle the parameters were read from; nil for builtin
	Settings ports.SettingsSource

	// Kinetic parameter provider, shared read-only by every consumer
	Energy ports.EnergyParameters

	RateProfiler *profiling.RateProfiler
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{
		Config:       cfg,
		Logger:       logging.New("container"),
		RateProfiler: profiling.NewRateProfiler(),
	}

	if err := c.initEnergy(); err != nil {
		return nil, err
	}

	c.Logger.Info("container initialised",
		"energy_source", cfg.Energy.Source,
		"temperature", c.Energy.Temperature())
	return c, nil
}

func (c *Container) initEnergy() error {
	opts := []energy.Option{energy.WithParameterDir(c.Config.Energy.ParameterDir)}

	if c.Config.Energy.Source == config.SourceBuiltin {
		c.Energy = energy.NewBuiltin(opts...)
		return nil
	}

	src, err := OpenSettings(c.Config.Energy)
	if err != nil {
		return err
	}
	params, err := energy.NewFromSettings(src, opts...)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s energy parameters", c.Config.Energy.Source)
	}
	c.Settings = src
	c.Energy = params
	return nil
}

// OpenSettings opens the settings handle named by cfg
func OpenSettings(cfg config.EnergyConfig) (ports.SettingsSource, error) {
	switch cfg.Source {
	case config.SourceEnv:
		src, err := settings.NewEnvSource()
		if err != nil {
			return nil, errors.ConfigInvalidf(err, "invalid settings environment")
		}
		return src, nil
	case config.SourceYAML:
		src, err := settings.LoadYAMLFile(cfg.SettingsFile)
		if err != nil {
			return nil, errors.ConfigInvalidf(err, "invalid yaml settings")
		}
		return src, nil
	case config.SourceJSON:
		src, err := settings.LoadJSONFile(cfg.SettingsFile)
		if err != nil {
			return nil, errors.ConfigInvalidf(err, "invalid json settings")
		}
		return src, nil
	}
	return nil, errors.ConfigInvalid(fmt.Sprintf("unknown settings source %q", cfg.Source))
}
