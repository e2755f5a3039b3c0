package energy

import (
	"fmt"
	"math"
	"strings"

	"strandkin/domain/core"
	"strandkin/domain/moves"
)

// GasConstant in kcal/(mol K)
const GasConstant = 0.0019872036

// ArrheniusTable holds one value per move type, indexed by MoveType ordinal
type ArrheniusTable [moves.NumMoveTypes]float64

// At returns the entry for m
func (t ArrheniusTable) At(m moves.MoveType) float64 {
	return t[m]
}

// Config is the raw parameter set handed to Build by a parameter source
type Config struct {
	Temperature       float64 // Kelvin
	Dangles           Dangles
	LogML             bool
	GTEnabled         bool
	Substrate         Substrate
	RateMethod        RateMethod
	JoinConcentration float64 // molar
	UseArrhenius      bool
	UniScale          float64 // used when Arrhenius is off
	BiScale           float64 // used when Arrhenius is off
	Alpha             float64
	LnA               ArrheniusTable
	E                 ArrheniusTable
	Entropy           [moves.NumBases]float64
	ParameterType     ParameterType
}

// Options is a validated, immutable parameter set. All reads go through
// accessors; varying a parameter means building a new Options.
type Options struct {
	runID             core.RunID
	temperature       float64
	dangles           Dangles
	logML             bool
	gtEnabled         bool
	substrate         Substrate
	rateMethod        RateMethod
	joinConcentration float64
	useArrhenius      bool
	uniScale          float64
	biScale           float64
	alpha             float64
	lnA               ArrheniusTable
	e                 ArrheniusTable
	prefactor         ArrheniusTable
	entropy           [moves.NumBases]float64
	parameterType     ParameterType
}

// Build validates cfg and derives the rate scale factors and per-move
// prefactors.
//
// With Arrhenius kinetics each move type gets prefactor exp(lnA - E/(R T)),
// the unimolecular scale is 1 and the bimolecular scale is alpha. Otherwise
// prefactors are 1 and the configured scales are kept.
func Build(cfg Config) (*Options, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	o := &Options{
		runID:             core.NewRunID(),
		temperature:       cfg.Temperature,
		dangles:           cfg.Dangles,
		logML:             cfg.LogML,
		gtEnabled:         cfg.GTEnabled,
		substrate:         cfg.Substrate,
		rateMethod:        cfg.RateMethod,
		joinConcentration: cfg.JoinConcentration,
		useArrhenius:      cfg.UseArrhenius || cfg.RateMethod == RateArrhenius,
		uniScale:          cfg.UniScale,
		biScale:           cfg.BiScale,
		alpha:             cfg.Alpha,
		lnA:               cfg.LnA,
		e:                 cfg.E,
		entropy:           cfg.Entropy,
		parameterType:     cfg.ParameterType,
	}
	if o.parameterType == "" {
		o.parameterType = ParametersNupack
	}
	o.initializeArrheniusConstants()
	if err := o.checkPrefactors(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Options) initializeArrheniusConstants() {
	if !o.useArrhenius {
		for i := range o.prefactor {
			o.prefactor[i] = 1
		}
		return
	}

	rt := GasConstant * o.temperature
	for i := range o.prefactor {
		o.prefactor[i] = math.Exp(o.lnA[i] - o.e[i]/rt)
	}
	o.uniScale = 1
	o.biScale = o.alpha
}

// finite reports whether v is an ordinary number
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validate(cfg Config) error {
	if !finite(cfg.Temperature) || cfg.Temperature <= 0 {
		return core.NewOutOfRangeError("temperature", cfg.Temperature, "must be above absolute zero (Kelvin)")
	}
	if !finite(cfg.JoinConcentration) || cfg.JoinConcentration <= 0 {
		return core.NewOutOfRangeError("join_concentration", cfg.JoinConcentration, "must be positive and finite")
	}
	if !cfg.Dangles.Valid() {
		return core.NewOutOfRangeError("dangles", int(cfg.Dangles), "must be 0, 1 or 2")
	}
	if !cfg.Substrate.Valid() {
		return core.NewOutOfRangeError("substrate_type", int(cfg.Substrate), "must be 1 (RNA) or 2 (DNA)")
	}
	if !cfg.RateMethod.Valid() {
		return core.NewOutOfRangeError("rate_method", int(cfg.RateMethod), "must be 1, 2 or 3")
	}
	if cfg.ParameterType != "" && !cfg.ParameterType.Valid() {
		return core.NewOutOfRangeError("parameter_type", cfg.ParameterType, "must be nupack or vienna")
	}
	for i, v := range cfg.Entropy {
		if !finite(v) {
			return core.NewOutOfRangeError("entropy", moves.Base(i), "increment must be finite")
		}
	}

	if cfg.UseArrhenius || cfg.RateMethod == RateArrhenius {
		if !finite(cfg.Alpha) || cfg.Alpha <= 0 {
			return core.NewOutOfRangeError("alpha", cfg.Alpha, "must be positive and finite")
		}
		for i := range cfg.LnA {
			if !finite(cfg.LnA[i]) || !finite(cfg.E[i]) {
				return core.NewOutOfRangeError("arrhenius", moves.MoveType(i), "constants must be finite")
			}
		}
		return nil
	}

	if !finite(cfg.UniScale) || cfg.UniScale <= 0 {
		return core.NewOutOfRangeError("unimolecular_scaling", cfg.UniScale, "must be positive and finite")
	}
	if !finite(cfg.BiScale) || cfg.BiScale <= 0 {
		return core.NewOutOfRangeError("bimolecular_scaling", cfg.BiScale, "must be positive and finite")
	}
	return nil
}

// checkPrefactors rejects constants whose exp(lnA - E/(R T)) leaves the
// float64 range.
func (o *Options) checkPrefactors() error {
	for i, k := range o.prefactor {
		if !finite(k) || k <= 0 {
			return core.NewOutOfRangeError("arrhenius", moves.MoveType(i), fmt.Sprintf("prefactor %g is not a usable rate", k))
		}
	}
	return nil
}

func (o *Options) RunID() core.RunID { return o.runID }
func (o *Options) Temperature() float64 { return o.temperature }
func (o *Options) Dangles() Dangles { return o.dangles }
func (o *Options) LogML() bool { return o.logML }
func (o *Options) GTEnabled() bool { return o.gtEnabled }
func (o *Options) Substrate() Substrate { return o.substrate }
func (o *Options) RateMethod() RateMethod { return o.rateMethod }
func (o *Options) JoinConcentration() float64 { return o.joinConcentration }
func (o *Options) UsingArrhenius() bool { return o.useArrhenius }
func (o *Options) BiScale() float64 { return o.biScale }
func (o *Options) UniScale() float64 { return o.uniScale }
func (o *Options) Alpha() float64 { return o.alpha }
func (o *Options) ParameterType() ParameterType { return o.parameterType }
func (o *Options) ArrheniusA(m moves.MoveType) float64 { return o.lnA[m] }
func (o *Options) ArrheniusE(m moves.MoveType) float64 { return o.e[m] }

// Prefactor is the per-move rate factor prepared by Build
func (o *Options) Prefactor(m moves.MoveType) float64 {
	return o.prefactor[m]
}

// Prefactors returns a copy of the whole prefactor table
func (o *Options) Prefactors() ArrheniusTable {
	return o.prefactor
}

// EntropyIncrement is the per-base entropy contribution
func (o *Options) EntropyIncrement(b moves.Base) float64 {
	return o.entropy[b]
}

// SameSubstrate reports whether s is the configured substrate
func (o *Options) SameSubstrate(s Substrate) bool {
	return o.substrate == s
}

func (o *Options) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "run = %s\n", o.runID)
	fmt.Fprintf(&sb, "temperature = %.2f K\n", o.temperature)
	fmt.Fprintf(&sb, "dangles = %s\n", o.dangles)
	fmt.Fprintf(&sb, "substrate = %s\n", o.substrate)
	fmt.Fprintf(&sb, "parameter_type = %s\n", o.parameterType)
	fmt.Fprintf(&sb, "log_ml = %t\n", o.logML)
	fmt.Fprintf(&sb, "gt_enable = %t\n", o.gtEnabled)
	fmt.Fprintf(&sb, "rate_method = %s\n", o.rateMethod)
	fmt.Fprintf(&sb, "join_concentration = %g M\n", o.joinConcentration)
	fmt.Fprintf(&sb, "arrhenius = %t\n", o.useArrhenius)
	fmt.Fprintf(&sb, "uni_scale = %g\n", o.uniScale)
	fmt.Fprintf(&sb, "bi_scale = %g\n", o.biScale)
	if o.useArrhenius {
		fmt.Fprintf(&sb, "alpha = %g\n", o.alpha)
		for _, m := range moves.AllMoveTypes() {
			fmt.Fprintf(&sb, "%-10s lnA = %.4f  E = %.4f  k = %.6g\n", m, o.lnA[m], o.e[m], o.prefactor[m])
		}
	}
	for _, b := range moves.AllBases() {
		fmt.Fprintf(&sb, "dS_%s = %.2f\n", b, o.entropy[b])
	}
	return sb.String()
}

// PrimeRateString names the move pair encoded in a prime product, as produced
// by moves.TypeMult.
func PrimeRateString(rate float64) string {
	left, right, ok := moves.DecodeTypeMult(int(math.Round(rate)))
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s * %s", left, right)
}
