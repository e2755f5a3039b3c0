package energy

import "fmt"

// Dangles selects how unpaired bases next to helices are treated
type Dangles int

const (
	DanglesNone Dangles = 0
	DanglesSome Dangles = 1
	DanglesAll  Dangles = 2
)

func (d Dangles) Valid() bool {
	return d >= DanglesNone && d <= DanglesAll
}

func (d Dangles) String() string {
	switch d {
	case DanglesNone:
		return "none"
	case DanglesSome:
		return "some"
	case DanglesAll:
		return "all"
	}
	return fmt.Sprintf("dangles(%d)", int(d))
}

// Substrate is the nucleic acid being simulated
type Substrate int

const (
	SubstrateInvalid Substrate = 0
	SubstrateRNA     Substrate = 1
	SubstrateDNA     Substrate = 2
)

func (s Substrate) Valid() bool {
	return s == SubstrateRNA || s == SubstrateDNA
}

func (s Substrate) String() string {
	switch s {
	case SubstrateRNA:
		return "RNA"
	case SubstrateDNA:
		return "DNA"
	}
	return fmt.Sprintf("substrate(%d)", int(s))
}

// RateMethod selects the kinetic model for unimolecular moves
type RateMethod int

const (
	RateMetropolis RateMethod = 1
	RateKawasaki   RateMethod = 2
	RateArrhenius  RateMethod = 3
)

func (m RateMethod) Valid() bool {
	return m >= RateMetropolis && m <= RateArrhenius
}

func (m RateMethod) String() string {
	switch m {
	case RateMetropolis:
		return "metropolis"
	case RateKawasaki:
		return "kawasaki"
	case RateArrhenius:
		return "arrhenius"
	}
	return fmt.Sprintf("rate_method(%d)", int(m))
}

// ParameterType names the family of nearest-neighbour tables to load
type ParameterType string

const (
	ParametersNupack ParameterType = "nupack"
	ParametersVienna ParameterType = "vienna"
)

func (p ParameterType) Valid() bool {
	return p == ParametersNupack || p == ParametersVienna
}
