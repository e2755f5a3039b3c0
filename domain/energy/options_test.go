package energy

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strandkin/domain/core"
	"strandkin/domain/moves"
)

func TestBuild_DefaultArrhenius(t *testing.T) {
	o, err := Build(DefaultConfig())
	require.NoError(t, err)

	assert.False(t, o.RunID().IsEmpty())
	assert.Equal(t, 310.15, o.Temperature())
	assert.Equal(t, DanglesSome, o.Dangles())
	assert.True(t, o.UsingArrhenius())
	assert.Equal(t, 1.0, o.UniScale())
	assert.Equal(t, DefaultAlpha, o.BiScale())
	assert.Equal(t, ParametersNupack, o.ParameterType())

	rt := GasConstant * 310.15
	for _, m := range moves.AllMoveTypes() {
		want := math.Exp(o.ArrheniusA(m) - o.ArrheniusE(m)/rt)
		assert.InDelta(t, want, o.Prefactor(m), want*1e-12, "prefactor %s", m)
	}
	assert.Equal(t, 6.10, o.ArrheniusA(moves.MoveStack))
	assert.Equal(t, -0.43, o.ArrheniusE(moves.MoveStackEnd))
	assert.Equal(t, 4.41, o.EntropyIncrement(moves.BaseC))
	assert.Equal(t, -5.99, o.EntropyIncrement(moves.BaseG))
}

func TestBuild_PrefactorsFallWithTemperature(t *testing.T) {
	cold := DefaultConfig()
	cold.Temperature = 278.15
	hot := DefaultConfig()
	hot.Temperature = 338.15

	c, err := Build(cold)
	require.NoError(t, err)
	h, err := Build(hot)
	require.NoError(t, err)

	// positive activation energy: hotter is faster
	assert.Greater(t, h.Prefactor(moves.MoveEnd), c.Prefactor(moves.MoveEnd))
	// negative activation energy: hotter is slower
	assert.Less(t, h.Prefactor(moves.MoveStackEnd), c.Prefactor(moves.MoveStackEnd))
}

func TestBuild_MetropolisKeepsScales(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateMethod = RateMetropolis
	cfg.UseArrhenius = false

	o, err := Build(cfg)
	require.NoError(t, err)
	assert.False(t, o.UsingArrhenius())
	assert.Equal(t, DefaultUniScale, o.UniScale())
	assert.Equal(t, DefaultBiScale, o.BiScale())
	for _, k := range o.Prefactors() {
		assert.Equal(t, 1.0, k)
	}
}

func TestBuild_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero kelvin", func(c *Config) { c.Temperature = 0 }, "temperature"},
		{"negative temperature", func(c *Config) { c.Temperature = -4 }, "temperature"},
		{"nan temperature", func(c *Config) { c.Temperature = math.NaN() }, "temperature"},
		{"negative concentration", func(c *Config) { c.JoinConcentration = -1e-6 }, "join_concentration"},
		{"dangles", func(c *Config) { c.Dangles = 3 }, "dangles"},
		{"substrate", func(c *Config) { c.Substrate = SubstrateInvalid }, "substrate_type"},
		{"rate method", func(c *Config) { c.RateMethod = 0 }, "rate_method"},
		{"parameter type", func(c *Config) { c.ParameterType = "mfold" }, "parameter_type"},
		{"alpha", func(c *Config) { c.Alpha = 0 }, "alpha"},
		{"infinite temperature", func(c *Config) { c.Temperature = math.Inf(1) }, "temperature"},
		{"infinite concentration", func(c *Config) { c.JoinConcentration = math.Inf(1) }, "join_concentration"},
		{"nan concentration", func(c *Config) { c.JoinConcentration = math.NaN() }, "join_concentration"},
		{"infinite alpha", func(c *Config) { c.Alpha = math.Inf(1) }, "alpha"},
		{"infinite lnA", func(c *Config) { c.LnA[moves.MoveEnd] = math.Inf(1) }, "arrhenius"},
		{"infinite E", func(c *Config) { c.E[moves.MoveStack] = math.Inf(-1) }, "arrhenius"},
		{"overflowing prefactor", func(c *Config) { c.LnA[moves.MoveEnd] = 1000 }, "arrhenius"},
		{"underflowing prefactor", func(c *Config) { c.LnA[moves.MoveLoop] = -1000 }, "arrhenius"},
		{"infinite entropy", func(c *Config) { c.Entropy[moves.BaseG] = math.Inf(-1) }, "entropy"},
		{"infinite uni scale", func(c *Config) {
			c.RateMethod, c.UseArrhenius, c.UniScale = RateKawasaki, false, math.Inf(1)
		}, "unimolecular_scaling"},
		{"infinite bi scale", func(c *Config) {
			c.RateMethod, c.UseArrhenius, c.BiScale = RateKawasaki, false, math.Inf(1)
		}, "bimolecular_scaling"},
		{"uni scale", func(c *Config) {
			c.RateMethod, c.UseArrhenius, c.UniScale = RateKawasaki, false, 0
		}, "unimolecular_scaling"},
		{"bi scale", func(c *Config) {
			c.RateMethod, c.UseArrhenius, c.BiScale = RateKawasaki, false, -1
		}, "bimolecular_scaling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			o, err := Build(cfg)
			require.Error(t, err)
			assert.Nil(t, o)
			assert.True(t, errors.Is(err, core.ErrSettingOutOfRange))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestOptions_String(t *testing.T) {
	o, err := Build(DefaultConfig())
	require.NoError(t, err)

	s := o.String()
	assert.Equal(t, s, o.String())
	assert.True(t, strings.HasPrefix(s, "run = "+o.RunID().String()))
	assert.Contains(t, s, "temperature = 310.15 K")
	assert.Contains(t, s, "rate_method = arrhenius")
	assert.Contains(t, s, "stackLoop")
	assert.Contains(t, s, "dS_T = 0.55")
}

func TestPrimeRateString(t *testing.T) {
	assert.Equal(t, "end * stackLoop", PrimeRateString(34))
	assert.Equal(t, "stack * stack", PrimeRateString(float64(moves.TypeMult(moves.MoveStack, moves.MoveStack))))
	assert.Equal(t, "unknown", PrimeRateString(1))
}

func TestParameterFileName(t *testing.T) {
	assert.Equal(t, "dna_mathews1999.dG", ParameterFileName(SubstrateDNA, ParametersNupack))
	assert.Equal(t, "rna_turner1999.dG", ParameterFileName(SubstrateRNA, ParametersNupack))
	assert.Equal(t, "dna_mathews2004.par", ParameterFileName(SubstrateDNA, ParametersVienna))
	assert.Equal(t, "rna_turner2004.par", ParameterFileName(SubstrateRNA, ParametersVienna))
}
