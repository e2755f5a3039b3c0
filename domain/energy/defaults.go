package energy

import "strandkin/domain/moves"

// Compiled-in DNA23 Arrhenius constants, in MoveType order:
// end, loop, stack, stackStack, loopEnd, stackEnd, stackLoop.
var (
	defaultLnA = [...]float64{31.49, 16.58, 6.10, 4.91, 8.55, 15.34, 10.83}
	defaultE   = [...]float64{12.38, 5.84, 0.75, 6.57, 3.80, -0.43, 3.83}
)

// Both tables must have exactly one entry per move type.
var (
	_ [0]struct{} = [len(defaultLnA) - moves.NumMoveTypes]struct{}{}
	_ [0]struct{} = [len(defaultE) - moves.NumMoveTypes]struct{}{}
)

// Per-base entropy increments in A, C, G, T order
var defaultEntropy = [moves.NumBases]float64{1.02, 4.41, -5.99, 0.55}

const (
	DefaultTemperature       = 310.15 // 37 C
	DefaultJoinConcentration = 1.0
	DefaultAlpha             = 0.045
	DefaultUniScale          = 4.4e8  // DNA23 Metropolis
	DefaultBiScale           = 1.26e6 // DNA23 Metropolis
)

// DefaultLnA returns the compiled-in ln(A) table
func DefaultLnA() ArrheniusTable { return ArrheniusTable(defaultLnA) }

// DefaultE returns the compiled-in activation energy table
func DefaultE() ArrheniusTable { return ArrheniusTable(defaultE) }

// DefaultEntropy returns the compiled-in per-base entropy increments
func DefaultEntropy() [moves.NumBases]float64 { return defaultEntropy }

// DefaultConfig is the compiled-in parameter set: DNA at 37 C with
// Arrhenius kinetics.
func DefaultConfig() Config {
	return Config{
		Temperature:       DefaultTemperature,
		Dangles:           DanglesSome,
		LogML:             false,
		GTEnabled:         true,
		Substrate:         SubstrateDNA,
		RateMethod:        RateArrhenius,
		JoinConcentration: DefaultJoinConcentration,
		UseArrhenius:      true,
		UniScale:          DefaultUniScale,
		BiScale:           DefaultBiScale,
		Alpha:             DefaultAlpha,
		LnA:               DefaultLnA(),
		E:                 DefaultE(),
		Entropy:           DefaultEntropy(),
		ParameterType:     ParametersNupack,
	}
}

// ParameterFileName resolves the nearest-neighbour table for a substrate and
// parameter family.
func ParameterFileName(s Substrate, p ParameterType) string {
	switch {
	case p == ParametersVienna && s == SubstrateRNA:
		return "rna_turner2004.par"
	case p == ParametersVienna:
		return "dna_mathews2004.par"
	case s == SubstrateRNA:
		return "rna_turner1999.dG"
	default:
		return "dna_mathews1999.dG"
	}
}
