package settings

import "strandkin/domain/moves"

// Setting keys shared by every source
const (
	KeyTemperature       = "temperature"
	KeyDangles           = "dangles"
	KeyLogML             = "log_ml"
	KeyGTEnable          = "gt_enable"
	KeySubstrateType     = "substrate_type"
	KeyRateMethod        = "rate_method"
	KeyJoinConcentration = "join_concentration"
	KeyUniScale          = "unimolecular_scaling"
	KeyBiScale           = "bimolecular_scaling"
	KeyUseArrhenius      = "use_arrhenius"
	KeyAlpha             = "alpha"
	KeyParameterType     = "parameter_type"
	KeyParameterFile     = "parameter_file"
)

var arrheniusSuffix = [moves.NumMoveTypes]string{
	"End", "Loop", "Stack", "StackStack", "LoopEnd", "StackEnd", "StackLoop",
}

// KeyLnA is the ln(A) key for m, e.g. lnAStackLoop
func KeyLnA(m moves.MoveType) string {
	return "lnA" + arrheniusSuffix[m]
}

// KeyE is the activation energy key for m, e.g. EStackLoop
func KeyE(m moves.MoveType) string {
	return "E" + arrheniusSuffix[m]
}
