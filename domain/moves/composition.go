package moves

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ExposureSummary describes the base composition of the exposed bases
type ExposureSummary struct {
	Total     int               `json:"total"`
	Internal  int               `json:"internal"`
	Fractions [NumBases]float64 `json:"fractions"`
	Entropy   float64           `json:"entropy"` // nats
	ByMove    map[string]int    `json:"by_move"`
}

// Composition summarises the tally. An empty tally yields zero fractions and
// zero entropy.
func (o *OpenInfo) Composition() ExposureSummary {
	summary := ExposureSummary{
		Internal: o.numExposedInternal,
		ByMove:   make(map[string]int),
	}

	totals := o.Totals()
	weights := make([]float64, NumBases)
	for i, n := range totals {
		weights[i] = float64(n)
	}
	sum := floats.Sum(weights)
	summary.Total = int(sum)
	for con, count := range o.tally {
		summary.ByMove[con.MoveType().String()] += count.Total()
	}
	if sum == 0 {
		return summary
	}

	floats.Scale(1/sum, weights)
	copy(summary.Fractions[:], weights)
	summary.Entropy = stat.Entropy(weights)
	return summary
}
