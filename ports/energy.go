package ports

import (
	"strandkin/domain/energy"
	"strandkin/domain/moves"
)

// EnergyParameters is the kinetic parameter set consumed by rate computation.
// Implementations are built once per run and are read-only afterwards, so a
// single value may be shared by concurrent readers.
type EnergyParameters interface {
	Temperature() float64
	Dangles() energy.Dangles
	LogML() bool
	GTEnabled() bool
	RateMethod() energy.RateMethod
	JoinConcentration() float64
	UsingArrhenius() bool
	BiScale() float64
	UniScale() float64
	Alpha() float64

	// Per-move Arrhenius constants and the prefactor derived from them
	ArrheniusA(m moves.MoveType) float64
	ArrheniusE(m moves.MoveType) float64
	Prefactor(m moves.MoveType) float64
	EntropyIncrement(b moves.Base) float64

	// CompareSubstrateType reports whether s matches the configured substrate
	CompareSubstrateType(s energy.Substrate) bool

	// ParameterFile resolves the nearest-neighbour table to load. The
	// returned path is handed to the parameter-file loader; it is not opened here.
	ParameterFile(src SettingsSource) (string, error)

	String() string
}
