package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strandkin/internal/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STRANDKIN_SOURCE", "builtin")
	t.Setenv("STRANDKIN_PARAM_DIR", "")
	t.Setenv("LOG_FORMAT", "text")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCombineCmd(t *testing.T) {
	out, err := run(t, "combine", "stack", "loop")
	require.NoError(t, err)
	assert.Equal(t, "stackLoop (prime 17)\n", out)

	_, err = run(t, "combine", "stack", "hairpin")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestDecodeCmd(t *testing.T) {
	out, err := run(t, "decode", "85")
	require.NoError(t, err)
	assert.Equal(t, "Types = stack stackLoop\n", out)

	_, err = run(t, "decode", "9999")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestTallyCmd(t *testing.T) {
	out, err := run(t, "tally", "stack:A:loop,stack:C:loop", "end:T:end", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Exposed, Intern/Total = 2 / 3")
	assert.Contains(t, out, "Entropy = ")

	_, err = run(t, "tally", "stack:A")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestOptionsCmd(t *testing.T) {
	out, err := run(t, "options")
	require.NoError(t, err)
	assert.Contains(t, out, "parameter file: dna_mathews1999.dG")
}

func TestProfileCmd(t *testing.T) {
	out, err := run(t, "profile")
	require.NoError(t, err)
	assert.Contains(t, out, `"pairs"`)
}
