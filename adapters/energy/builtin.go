package energy

import (
	domain "strandkin/domain/energy"
	"strandkin/ports"
)

// BuiltinOptions serves the compiled-in parameter set
type BuiltinOptions struct {
	*domain.Options
	cfg buildConfig
}

var _ ports.EnergyParameters = (*BuiltinOptions)(nil)

// NewBuiltin builds the compiled-in defaults. The defaults are fixed, so a
// failure here is a defect and panics.
func NewBuiltin(opts ...Option) *BuiltinOptions {
	cfg := newBuildConfig(opts)
	options, err := domain.Build(domain.DefaultConfig())
	if err != nil {
		panic("compiled-in energy defaults are invalid: " + err.Error())
	}

	cfg.logger.Debug("energy parameters built",
		"source", "builtin",
		"run_id", options.RunID().String(),
		"temperature", options.Temperature(),
		"rate_method", options.RateMethod().String())

	return &BuiltinOptions{Options: options, cfg: cfg}
}

// CompareSubstrateType reports whether s is the compiled-in substrate
func (b *BuiltinOptions) CompareSubstrateType(s domain.Substrate) bool {
	return b.SameSubstrate(s)
}

// ParameterFile resolves the compiled-in table; the settings handle is unused
func (b *BuiltinOptions) ParameterFile(ports.SettingsSource) (string, error) {
	return b.cfg.resolve(domain.ParameterFileName(b.Substrate(), b.ParameterType())), nil
}
