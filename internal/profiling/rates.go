package profiling

import (
	"math"

	"github.com/montanaflynn/stats"

	"strandkin/domain/moves"
	"strandkin/internal/errors"
	"strandkin/ports"
)

// MoveRate is the unimolecular rate for one unordered pair of move types
type MoveRate struct {
	Left  string  `json:"left"`
	Right string  `json:"right"`
	Prime int     `json:"prime"`
	Rate  float64 `json:"rate"`
}

// Summary holds descriptive statistics over a set of rates
type Summary struct {
	Mean          float64 `json:"mean"`
	Median        float64 `json:"median"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	GeometricMean float64 `json:"geometric_mean"`
	Log10StdDev   float64 `json:"log10_std_dev"`
	Decades       float64 `json:"decades"` // log10(max/min)
}

// RateProfile describes the per-move prefactors of a parameter set and the
// pairwise rates they produce
type RateProfile struct {
	Prefactors map[string]float64 `json:"prefactors"`
	Prefactor  Summary            `json:"prefactor_summary"`
	Pairs      []MoveRate         `json:"pairs"`
	Pair       Summary            `json:"pair_summary"`
	UniScale   float64            `json:"uni_scale"`
	BiScale    float64            `json:"bi_scale"`
}

// RateProfiler builds rate profiles
type RateProfiler struct{}

// NewRateProfiler creates a new rate profiler
func NewRateProfiler() *RateProfiler {
	return &RateProfiler{}
}

// Profile summarises the prefactor table of p. Every unordered pair (l, r)
// contributes uniScale * k_l * k_r.
func (rp *RateProfiler) Profile(p ports.EnergyParameters) (RateProfile, error) {
	profile := RateProfile{
		Prefactors: make(map[string]float64, moves.NumMoveTypes),
		UniScale:   p.UniScale(),
		BiScale:    p.BiScale(),
	}

	prefactors := make([]float64, 0, moves.NumMoveTypes)
	all := moves.AllMoveTypes()
	for _, m := range all {
		k := p.Prefactor(m)
		profile.Prefactors[m.String()] = k
		prefactors = append(prefactors, k)
	}

	summary, err := summarize(prefactors)
	if err != nil {
		return profile, errors.Wrap(err, "failed to summarise prefactors")
	}
	profile.Prefactor = summary

	pairRates := make([]float64, 0, len(all)*(len(all)+1)/2)
	for i, left := range all {
		for _, right := range all[i:] {
			rate := p.UniScale() * p.Prefactor(left) * p.Prefactor(right)
			profile.Pairs = append(profile.Pairs, MoveRate{
				Left:  left.String(),
				Right: right.String(),
				Prime: moves.TypeMult(left, right),
				Rate:  rate,
			})
			pairRates = append(pairRates, rate)
		}
	}

	summary, err = summarize(pairRates)
	if err != nil {
		return profile, errors.Wrap(err, "failed to summarise pair rates")
	}
	profile.Pair = summary

	return profile, nil
}

func summarize(data []float64) (Summary, error) {
	var s Summary
	var err error

	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}
	if s.Min <= 0 {
		return s, errors.InvalidInput("rates must be positive")
	}
	if s.GeometricMean, err = stats.GeometricMean(data); err != nil {
		return s, err
	}

	logs := make([]float64, len(data))
	for i, v := range data {
		logs[i] = math.Log10(v)
	}
	if s.Log10StdDev, err = stats.StandardDeviation(logs); err != nil {
		return s, err
	}
	s.Decades = math.Log10(s.Max / s.Min)
	return s, nil
}
