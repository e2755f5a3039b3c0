package moves

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strandkin/domain/core"
)

func snapshot(o *OpenInfo) map[HalfContext]BaseCount {
	out := map[HalfContext]BaseCount{}
	for _, con := range o.Keys() {
		count, _ := o.Count(con)
		out[con] = count
	}
	return out
}

func assertConsistent(t *testing.T, o *OpenInfo) {
	t.Helper()
	assert.GreaterOrEqual(t, o.NumExposed(), o.NumExposedInternal())
	assert.GreaterOrEqual(t, o.NumExposedInternal(), 0)
	assert.Equal(t, o.NumExposed(), o.Totals().Total())
}

func TestOpenInfo_RepeatedStackLoop(t *testing.T) {
	o := NewOpenInfo()
	for i := 0; i < 3; i++ {
		o.Increment(ContextStack, BaseA, ContextLoop)
	}

	want := map[HalfContext]BaseCount{
		NewHalfContext(ContextStack, ContextLoop): {3, 0, 0, 0},
	}
	if diff := cmp.Diff(want, snapshot(o)); diff != "" {
		t.Errorf("tally mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, o.NumExposed())
	assert.Equal(t, 3, o.NumExposedInternal())
	assertConsistent(t, o)
}

func TestOpenInfo_IncrementSplitsByBase(t *testing.T) {
	o := NewOpenInfo()
	bases := []Base{BaseA, BaseC, BaseC, BaseG, BaseT, BaseT, BaseT}
	for _, b := range bases {
		o.Increment(ContextEnd, b, ContextStack)
	}

	count, ok := o.Count(NewHalfContext(ContextEnd, ContextStack))
	require.True(t, ok)
	assert.Equal(t, BaseCount{1, 2, 1, 3}, count)
	assert.Equal(t, len(bases), count.Total())
	assert.Equal(t, len(bases), o.NumExposed())
	assert.Equal(t, 0, o.NumExposedInternal())
	assert.Equal(t, 1, o.Len())
	assertConsistent(t, o)
}

func TestOpenInfo_IncrementCount(t *testing.T) {
	o := NewOpenInfo()
	con := NewHalfContext(ContextLoop, ContextStack)
	o.Increment(ContextLoop, BaseG, ContextStack)
	o.IncrementCount(con, BaseCount{1, 1, 0, 2})
	o.IncrementCount(NewHalfContext(ContextEnd, ContextEnd), BaseCount{0, 0, 5, 0})

	count, _ := o.Count(con)
	assert.Equal(t, BaseCount{1, 1, 1, 2}, count)
	assert.Equal(t, 10, o.NumExposed())
	assert.Equal(t, 5, o.NumExposedInternal())
	assertConsistent(t, o)
}

func TestOpenInfo_IncrementCountRejectsNegative(t *testing.T) {
	o := NewOpenInfo()
	con := NewHalfContext(ContextStack, ContextLoop)
	o.IncrementCount(con, BaseCount{2, 0, 0, 0})
	before := snapshot(o)

	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		o.IncrementCount(con, BaseCount{-3, 0, 0, 0})
	}()

	err, ok := recovered.(error)
	require.True(t, ok, "expected an error panic, got %v", recovered)
	assert.True(t, errors.Is(err, core.ErrNegativeCount))
	assert.True(t, core.IsInvariantError(err))

	assert.Empty(t, cmp.Diff(before, snapshot(o)))
	assert.Equal(t, 2, o.NumExposed())
	assertConsistent(t, o)
}

func TestOpenInfo_ClearMatchesFresh(t *testing.T) {
	o := NewOpenInfo()
	o.Increment(ContextStack, BaseA, ContextLoop)
	o.Increment(ContextEnd, BaseT, ContextEnd)
	o.IncrementCount(NewHalfContext(ContextLoop, ContextLoop), BaseCount{2, 2, 2, 2})

	o.Clear()
	assert.True(t, o.Equal(NewOpenInfo()))
	assert.Equal(t, 0, o.Len())
	assert.Equal(t, 0, o.NumExposed())
	assert.Equal(t, 0, o.NumExposedInternal())

	o.Clear()
	assert.True(t, o.Equal(NewOpenInfo()))

	o.Increment(ContextLoop, BaseC, ContextLoop)
	assert.Equal(t, 1, o.NumExposed())
}

func populated(seed int) *OpenInfo {
	o := NewOpenInfo()
	contexts := []QuartContext{ContextEnd, ContextLoop, ContextStack}
	for i := 0; i < 20+seed; i++ {
		l := contexts[(i*seed+1)%3]
		r := contexts[(i+seed)%3]
		o.Increment(l, Base((i+seed)%NumBases), r)
	}
	return o
}

func TestOpenInfo_MergeCommutativeAssociative(t *testing.T) {
	a, b, c := populated(1), populated(2), populated(5)

	ab := a.Clone()
	ab.Merge(b)
	ba := b.Clone()
	ba.Merge(a)
	assert.True(t, ab.Equal(ba), "A+B != B+A\n%s\n%s", ab, ba)

	abc1 := a.Clone()
	abc1.Merge(b)
	abc1.Merge(c)
	bc := b.Clone()
	bc.Merge(c)
	abc2 := a.Clone()
	abc2.Merge(bc)
	assert.True(t, abc1.Equal(abc2))

	assert.Equal(t, a.NumExposed()+b.NumExposed()+c.NumExposed(), abc1.NumExposed())
	assert.Equal(t, a.NumExposedInternal()+b.NumExposedInternal()+c.NumExposedInternal(), abc1.NumExposedInternal())
	assertConsistent(t, abc1)

	// sources are untouched
	assert.True(t, a.Equal(populated(1)))
}

func TestOpenInfo_MergeEdgeCases(t *testing.T) {
	o := populated(3)
	before := o.Clone()

	o.Merge(nil)
	assert.True(t, o.Equal(before))

	o.Merge(NewOpenInfo())
	assert.True(t, o.Equal(before))

	o.Merge(o)
	assert.Equal(t, 2*before.NumExposed(), o.NumExposed())
	assertConsistent(t, o)

	var zero OpenInfo
	zero.Merge(before)
	assert.True(t, zero.Equal(before))
	zero.Increment(ContextEnd, BaseA, ContextEnd)
	assert.Equal(t, before.NumExposed()+1, zero.NumExposed())
}

func TestOpenInfo_String(t *testing.T) {
	o := NewOpenInfo()
	o.Increment(ContextStack, BaseA, ContextLoop)
	o.Increment(ContextEnd, BaseC, ContextEnd)

	s := o.String()
	assert.True(t, strings.HasPrefix(s, "(end, end) A=0 C=1 G=0 T=0"), s)
	assert.Contains(t, s, "(stack, loop) A=1 C=0 G=0 T=0")
	assert.Contains(t, s, "Exposed, Intern/Total = 1 / 2")
}

func TestOpenInfo_Composition(t *testing.T) {
	empty := NewOpenInfo().Composition()
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 0.0, empty.Entropy)

	o := NewOpenInfo()
	for _, b := range AllBases() {
		o.Increment(ContextLoop, b, ContextStack)
		o.Increment(ContextEnd, b, ContextEnd)
	}
	summary := o.Composition()
	assert.Equal(t, 8, summary.Total)
	assert.Equal(t, 4, summary.Internal)
	for _, f := range summary.Fractions {
		assert.InDelta(t, 0.25, f, 1e-12)
	}
	assert.InDelta(t, math.Log(4), summary.Entropy, 1e-12)
	assert.Equal(t, map[string]int{"stackLoop": 4, "end": 4}, summary.ByMove)
}
