package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"strandkin/domain/moves"
)

// EnvPrefix namespaces every settings variable, e.g. MS_TEMPERATURE
const EnvPrefix = "MS_"

// envSettings mirrors the setting keys. Unset variables leave the pointer nil
// so that absence is visible to validation.
type envSettings struct {
	Temperature       *float64 `env:"TEMPERATURE"`
	Dangles           *int     `env:"DANGLES"`
	LogML             *bool    `env:"LOG_ML"`
	GTEnable          *bool    `env:"GT_ENABLE"`
	SubstrateType     *int     `env:"SUBSTRATE_TYPE"`
	RateMethod        *int     `env:"RATE_METHOD"`
	JoinConcentration *float64 `env:"JOIN_CONCENTRATION"`
	UniScale          *float64 `env:"UNIMOLECULAR_SCALING"`
	BiScale           *float64 `env:"BIMOLECULAR_SCALING"`
	UseArrhenius      *bool    `env:"USE_ARRHENIUS"`
	Alpha             *float64 `env:"ALPHA"`
	ParameterType     *string  `env:"PARAMETER_TYPE"`
	ParameterFile     *string  `env:"PARAMETER_FILE"`

	LnAEnd        *float64 `env:"LNA_END"`
	LnALoop       *float64 `env:"LNA_LOOP"`
	LnAStack      *float64 `env:"LNA_STACK"`
	LnAStackStack *float64 `env:"LNA_STACK_STACK"`
	LnALoopEnd    *float64 `env:"LNA_LOOP_END"`
	LnAStackEnd   *float64 `env:"LNA_STACK_END"`
	LnAStackLoop  *float64 `env:"LNA_STACK_LOOP"`

	EEnd        *float64 `env:"E_END"`
	ELoop       *float64 `env:"E_LOOP"`
	EStack      *float64 `env:"E_STACK"`
	EStackStack *float64 `env:"E_STACK_STACK"`
	ELoopEnd    *float64 `env:"E_LOOP_END"`
	EStackEnd   *float64 `env:"E_STACK_END"`
	EStackLoop  *float64 `env:"E_STACK_LOOP"`
}

// NewEnvSource reads MS_-prefixed variables from the process environment
func NewEnvSource() (*MapSource, error) {
	return parseEnv(env.Options{Prefix: EnvPrefix})
}

// NewEnvSourceFrom reads MS_-prefixed variables from the given environment
func NewEnvSourceFrom(environ map[string]string) (*MapSource, error) {
	return parseEnv(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parseEnv(opts env.Options) (*MapSource, error) {
	var raw envSettings
	if err := env.ParseWithOptions(&raw, opts); err != nil {
		return nil, fmt.Errorf("parse settings environment: %w", err)
	}

	src := NewMapSource(nil)
	setFloat(src, KeyTemperature, raw.Temperature)
	setInt(src, KeyDangles, raw.Dangles)
	setBool(src, KeyLogML, raw.LogML)
	setBool(src, KeyGTEnable, raw.GTEnable)
	setInt(src, KeySubstrateType, raw.SubstrateType)
	setInt(src, KeyRateMethod, raw.RateMethod)
	setFloat(src, KeyJoinConcentration, raw.JoinConcentration)
	setFloat(src, KeyUniScale, raw.UniScale)
	setFloat(src, KeyBiScale, raw.BiScale)
	setBool(src, KeyUseArrhenius, raw.UseArrhenius)
	setFloat(src, KeyAlpha, raw.Alpha)
	setString(src, KeyParameterType, raw.ParameterType)
	setString(src, KeyParameterFile, raw.ParameterFile)

	lnA := [moves.NumMoveTypes]*float64{
		raw.LnAEnd, raw.LnALoop, raw.LnAStack, raw.LnAStackStack,
		raw.LnALoopEnd, raw.LnAStackEnd, raw.LnAStackLoop,
	}
	e := [moves.NumMoveTypes]*float64{
		raw.EEnd, raw.ELoop, raw.EStack, raw.EStackStack,
		raw.ELoopEnd, raw.EStackEnd, raw.EStackLoop,
	}
	for _, m := range moves.AllMoveTypes() {
		setFloat(src, KeyLnA(m), lnA[m])
		setFloat(src, KeyE(m), e[m])
	}
	return src, nil
}

func setFloat(src *MapSource, key string, v *float64) {
	if v != nil {
		src.Set(key, *v)
	}
}

func setInt(src *MapSource, key string, v *int) {
	if v != nil {
		src.Set(key, *v)
	}
}

func setBool(src *MapSource, key string, v *bool) {
	if v != nil {
		src.Set(key, *v)
	}
}

func setString(src *MapSource, key string, v *string) {
	if v != nil {
		src.Set(key, *v)
	}
}
