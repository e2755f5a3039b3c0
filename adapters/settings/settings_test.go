package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strandkin/domain/moves"
	"strandkin/ports"
)

var (
	_ ports.SettingsSource = (*MapSource)(nil)
	_ ports.SettingsSource = (*JSONSource)(nil)
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "lnAStackLoop", KeyLnA(moves.MoveStackLoop))
	assert.Equal(t, "EEnd", KeyE(moves.MoveEnd))
}

func TestMapSource_Coercion(t *testing.T) {
	src := NewMapSource(map[string]interface{}{
		"t":     310,
		"f":     0.5,
		"whole": 2.0,
		"b":     true,
		"s":     "dna",
	})

	f, ok := src.Float("t")
	assert.True(t, ok)
	assert.Equal(t, 310.0, f)

	i, ok := src.Int("whole")
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = src.Int("f")
	assert.False(t, ok, "fractional values are not ints")

	_, ok = src.Float("s")
	assert.False(t, ok)

	b, ok := src.Bool("b")
	assert.True(t, ok)
	assert.True(t, b)

	s, ok := src.Text("s")
	assert.True(t, ok)
	assert.Equal(t, "dna", s)

	assert.False(t, src.Has("missing"))
	src.Set("missing", 1)
	assert.True(t, src.Has("missing"))
	src.Delete("missing")
	assert.Equal(t, []string{"b", "f", "s", "t", "whole"}, src.Keys())
}

const sampleYAML = `
temperature: 298.15
dangles: 2
substrate_type: 1
rate_method: 3
join_concentration: 1.0e-6
gt_enable: false
parameter_type: vienna
lnAStack: 6.1
EStack: 0.75
`

func TestYAMLSource(t *testing.T) {
	src, err := NewYAMLSource([]byte(sampleYAML))
	require.NoError(t, err)

	temp, ok := src.Float(KeyTemperature)
	require.True(t, ok)
	assert.Equal(t, 298.15, temp)

	dangles, ok := src.Int(KeyDangles)
	require.True(t, ok)
	assert.Equal(t, 2, dangles)

	conc, ok := src.Float(KeyJoinConcentration)
	require.True(t, ok)
	assert.InDelta(t, 1e-6, conc, 1e-18)

	gt, ok := src.Bool(KeyGTEnable)
	require.True(t, ok)
	assert.False(t, gt)

	ptype, ok := src.Text(KeyParameterType)
	require.True(t, ok)
	assert.Equal(t, "vienna", ptype)

	_, err = NewYAMLSource([]byte("temperature: [unterminated"))
	assert.Error(t, err)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	src, err := LoadYAMLFile(path)
	require.NoError(t, err)
	assert.True(t, src.Has(KeyLnA(moves.MoveStack)))

	_, err = LoadYAMLFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestJSONSource(t *testing.T) {
	src, err := NewJSONSource([]byte(`{
		"temperature": 310.15,
		"dangles": 1,
		"join_concentration": 0.5,
		"log_ml": true,
		"parameter_file": "/opt/params/dna.dG",
		"rate_method": 1.5
	}`))
	require.NoError(t, err)

	temp, ok := src.Float(KeyTemperature)
	assert.True(t, ok)
	assert.Equal(t, 310.15, temp)

	d, ok := src.Int(KeyDangles)
	assert.True(t, ok)
	assert.Equal(t, 1, d)

	_, ok = src.Int(KeyRateMethod)
	assert.False(t, ok)
	assert.True(t, src.Has(KeyRateMethod))

	logML, ok := src.Bool(KeyLogML)
	assert.True(t, ok)
	assert.True(t, logML)

	file, ok := src.Text(KeyParameterFile)
	assert.True(t, ok)
	assert.Equal(t, "/opt/params/dna.dG", file)

	_, ok = src.Text(KeyTemperature)
	assert.False(t, ok)

	_, err = NewJSONSource([]byte(`{"temperature": `))
	assert.Error(t, err)
	_, err = NewJSONSource([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestEnvSource(t *testing.T) {
	src, err := NewEnvSourceFrom(map[string]string{
		"MS_TEMPERATURE":        "300",
		"MS_DANGLES":            "0",
		"MS_GT_ENABLE":          "true",
		"MS_LNA_STACK_LOOP":     "10.83",
		"MS_E_STACK_END":        "-0.43",
		"MS_PARAMETER_FILE":     "custom.dG",
		"UNPREFIXED_IS_IGNORED": "1",
	})
	require.NoError(t, err)

	temp, ok := src.Float(KeyTemperature)
	assert.True(t, ok)
	assert.Equal(t, 300.0, temp)

	d, ok := src.Int(KeyDangles)
	assert.True(t, ok)
	assert.Equal(t, 0, d)

	lnA, ok := src.Float(KeyLnA(moves.MoveStackLoop))
	assert.True(t, ok)
	assert.Equal(t, 10.83, lnA)

	e, ok := src.Float(KeyE(moves.MoveStackEnd))
	assert.True(t, ok)
	assert.Equal(t, -0.43, e)

	assert.False(t, src.Has(KeyJoinConcentration))
	assert.False(t, src.Has(KeyLnA(moves.MoveEnd)))

	_, err = NewEnvSourceFrom(map[string]string{"MS_TEMPERATURE": "warm"})
	assert.Error(t, err)
}
