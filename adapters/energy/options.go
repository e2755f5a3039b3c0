package energy

import (
	"log/slog"
	"path/filepath"

	"strandkin/internal/logging"
)

// Option customises a parameter provider at construction
type Option func(*buildConfig)

type buildConfig struct {
	parameterDir string
	logger       *slog.Logger
}

// WithParameterDir sets the directory relative parameter files resolve against
func WithParameterDir(dir string) Option {
	return func(c *buildConfig) {
		c.parameterDir = dir
	}
}

// WithLogger overrides the component logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *buildConfig) {
		c.logger = logger
	}
}

func newBuildConfig(opts []Option) buildConfig {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.New("energy")
	}
	return cfg
}

func (c buildConfig) resolve(file string) string {
	if c.parameterDir == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.parameterDir, file)
}
