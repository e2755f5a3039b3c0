package energy

import (
	stderrors "errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"strandkin/adapters/settings"
	"strandkin/domain/core"
	domain "strandkin/domain/energy"
	"strandkin/domain/moves"
	"strandkin/internal/errors"
	"strandkin/ports"
)

// SettingsOptions serves a parameter set extracted from a host settings handle
type SettingsOptions struct {
	*domain.Options
	source ports.SettingsSource
	cfg    buildConfig
}

var _ ports.EnergyParameters = (*SettingsOptions)(nil)

// settingsRecord is what gets pulled out of the handle before validation.
// Pointers distinguish an absent key from a zero value.
type settingsRecord struct {
	Temperature       *float64 `setting:"temperature" validate:"required,finite,gt=0"`
	Dangles           *int     `setting:"dangles" validate:"required,min=0,max=2"`
	SubstrateType     *int     `setting:"substrate_type" validate:"required,oneof=1 2"`
	RateMethod        *int     `setting:"rate_method" validate:"required,min=1,max=3"`
	JoinConcentration *float64 `setting:"join_concentration" validate:"required,finite,gt=0"`
	UniScale          *float64 `setting:"unimolecular_scaling" validate:"omitempty,finite,gt=0"`
	BiScale           *float64 `setting:"bimolecular_scaling" validate:"omitempty,finite,gt=0"`
	Alpha             *float64 `setting:"alpha" validate:"omitempty,finite,gt=0"`
	ParameterType     *string  `setting:"parameter_type" validate:"omitempty,oneof=nupack vienna"`
	LogML             *bool    `setting:"log_ml"`
	GTEnable          *bool    `setting:"gt_enable"`
	UseArrhenius      *bool    `setting:"use_arrhenius"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("setting")
	})
	// gt=0 alone lets +Inf through
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// NewFromSettings extracts and validates a parameter set from src. Missing
// required keys, values of the wrong kind and physically invalid values fail
// with a CONFIG_INVALID error naming the offending key.
func NewFromSettings(src ports.SettingsSource, opts ...Option) (*SettingsOptions, error) {
	if src == nil {
		return nil, errors.ConfigInvalid("energy settings source is nil")
	}
	cfg := newBuildConfig(opts)

	record, err := readRecord(src)
	if err != nil {
		return nil, errors.ConfigInvalidf(err, "invalid energy settings")
	}
	if err := validate.Struct(record); err != nil {
		return nil, errors.ConfigInvalidf(translate(err), "invalid energy settings")
	}

	domainCfg, err := toConfig(src, record)
	if err != nil {
		return nil, errors.ConfigInvalidf(err, "invalid energy settings")
	}

	options, err := domain.Build(domainCfg)
	if err != nil {
		return nil, errors.ConfigInvalidf(err, "invalid energy settings")
	}

	cfg.logger.Info("energy parameters built",
		"source", "settings",
		"run_id", options.RunID().String(),
		"temperature", options.Temperature(),
		"substrate", options.Substrate().String(),
		"rate_method", options.RateMethod().String(),
		"arrhenius", options.UsingArrhenius())

	return &SettingsOptions{Options: options, source: src, cfg: cfg}, nil
}

// CompareSubstrateType reports whether s is the substrate read from the handle
func (s *SettingsOptions) CompareSubstrateType(substrate domain.Substrate) bool {
	return s.SameSubstrate(substrate)
}

// ParameterFile asks src (or the handle the options were built from, when src
// is nil) for an explicit parameter_file, falling back to the table for the
// configured substrate and parameter family.
func (s *SettingsOptions) ParameterFile(src ports.SettingsSource) (string, error) {
	if src == nil {
		src = s.source
	}
	if src.Has(settings.KeyParameterFile) {
		file, ok := src.Text(settings.KeyParameterFile)
		if !ok || strings.TrimSpace(file) == "" {
			return "", errors.ConfigInvalidf(
				core.NewSettingTypeError(settings.KeyParameterFile, "non-empty string"),
				"cannot resolve parameter file")
		}
		return s.cfg.resolve(file), nil
	}
	return s.cfg.resolve(domain.ParameterFileName(s.Substrate(), s.ParameterType())), nil
}

// Source returns the handle the options were extracted from
func (s *SettingsOptions) Source() ports.SettingsSource {
	return s.source
}

func readRecord(src ports.SettingsSource) (*settingsRecord, error) {
	r := &settingsRecord{}
	var err error
	if r.Temperature, err = readFloat(src, settings.KeyTemperature); err != nil {
		return nil, err
	}
	if r.Dangles, err = readInt(src, settings.KeyDangles); err != nil {
		return nil, err
	}
	if r.SubstrateType, err = readInt(src, settings.KeySubstrateType); err != nil {
		return nil, err
	}
	if r.RateMethod, err = readInt(src, settings.KeyRateMethod); err != nil {
		return nil, err
	}
	if r.JoinConcentration, err = readFloat(src, settings.KeyJoinConcentration); err != nil {
		return nil, err
	}
	if r.UniScale, err = readFloat(src, settings.KeyUniScale); err != nil {
		return nil, err
	}
	if r.BiScale, err = readFloat(src, settings.KeyBiScale); err != nil {
		return nil, err
	}
	if r.Alpha, err = readFloat(src, settings.KeyAlpha); err != nil {
		return nil, err
	}
	if r.ParameterType, err = readText(src, settings.KeyParameterType); err != nil {
		return nil, err
	}
	if r.LogML, err = readBool(src, settings.KeyLogML); err != nil {
		return nil, err
	}
	if r.GTEnable, err = readBool(src, settings.KeyGTEnable); err != nil {
		return nil, err
	}
	if r.UseArrhenius, err = readBool(src, settings.KeyUseArrhenius); err != nil {
		return nil, err
	}
	return r, nil
}

func toConfig(src ports.SettingsSource, r *settingsRecord) (domain.Config, error) {
	cfg := domain.Config{
		Temperature:       *r.Temperature,
		Dangles:           domain.Dangles(*r.Dangles),
		Substrate:         domain.Substrate(*r.SubstrateType),
		RateMethod:        domain.RateMethod(*r.RateMethod),
		JoinConcentration: *r.JoinConcentration,
		GTEnabled:         true,
		UniScale:          domain.DefaultUniScale,
		BiScale:           domain.DefaultBiScale,
		Alpha:             domain.DefaultAlpha,
		Entropy:           domain.DefaultEntropy(),
		ParameterType:     domain.ParametersNupack,
	}
	if r.LogML != nil {
		cfg.LogML = *r.LogML
	}
	if r.GTEnable != nil {
		cfg.GTEnabled = *r.GTEnable
	}
	if r.UniScale != nil {
		cfg.UniScale = *r.UniScale
	}
	if r.BiScale != nil {
		cfg.BiScale = *r.BiScale
	}
	if r.Alpha != nil {
		cfg.Alpha = *r.Alpha
	}
	if r.ParameterType != nil {
		cfg.ParameterType = domain.ParameterType(*r.ParameterType)
	}
	cfg.UseArrhenius = cfg.RateMethod == domain.RateArrhenius
	if r.UseArrhenius != nil {
		cfg.UseArrhenius = cfg.UseArrhenius || *r.UseArrhenius
	}
	if !cfg.UseArrhenius {
		return cfg, nil
	}

	// Arrhenius kinetics need every constant; there is no partial default.
	for _, m := range moves.AllMoveTypes() {
		lnA, err := requireFloat(src, settings.KeyLnA(m))
		if err != nil {
			return cfg, err
		}
		e, err := requireFloat(src, settings.KeyE(m))
		if err != nil {
			return cfg, err
		}
		cfg.LnA[m] = lnA
		cfg.E[m] = e
	}
	return cfg, nil
}

func requireFloat(src ports.SettingsSource, key string) (float64, error) {
	v, err := readFloat(src, key)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, core.NewMissingSettingError(key)
	}
	return *v, nil
}

func readFloat(src ports.SettingsSource, key string) (*float64, error) {
	if !src.Has(key) {
		return nil, nil
	}
	v, ok := src.Float(key)
	if !ok {
		return nil, core.NewSettingTypeError(key, "number")
	}
	return &v, nil
}

func readInt(src ports.SettingsSource, key string) (*int, error) {
	if !src.Has(key) {
		return nil, nil
	}
	v, ok := src.Int(key)
	if !ok {
		return nil, core.NewSettingTypeError(key, "integer")
	}
	return &v, nil
}

func readBool(src ports.SettingsSource, key string) (*bool, error) {
	if !src.Has(key) {
		return nil, nil
	}
	v, ok := src.Bool(key)
	if !ok {
		return nil, core.NewSettingTypeError(key, "boolean")
	}
	return &v, nil
}

func readText(src ports.SettingsSource, key string) (*string, error) {
	if !src.Has(key) {
		return nil, nil
	}
	v, ok := src.Text(key)
	if !ok {
		return nil, core.NewSettingTypeError(key, "string")
	}
	return &v, nil
}

// translate turns validator output into domain settings errors, one per field
func translate(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err
	}
	out := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			out = append(out, core.NewMissingSettingError(fe.Field()))
			continue
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule = fmt.Sprintf("%s=%s", rule, fe.Param())
		}
		out = append(out, core.NewOutOfRangeError(fe.Field(), deref(fe.Value()), "violates "+rule))
	}
	return stderrors.Join(out...)
}

func deref(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}
