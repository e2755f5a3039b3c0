package moves

import (
	"fmt"

	"strandkin/domain/core"
)

// MoveType classifies a candidate transition by its two flanking contexts.
// Per-move kinetic tables are indexed by its ordinal.
type MoveType uint8

const (
	MoveEnd MoveType = iota
	MoveLoop
	MoveStack
	MoveStackStack
	MoveLoopEnd
	MoveStackEnd
	MoveStackLoop

	NumMoveTypes = iota
)

var moveTypeNames = [NumMoveTypes]string{
	"end", "loop", "stack", "stackStack", "loopEnd", "stackEnd", "stackLoop",
}

// moveTypePrimes gives each move type a distinct prime so that the product of
// two identifies the unordered pair.
var moveTypePrimes = [NumMoveTypes]int{2, 3, 5, 7, 11, 13, 17}

// AllMoveTypes lists every move type in ordinal order
func AllMoveTypes() [NumMoveTypes]MoveType {
	var out [NumMoveTypes]MoveType
	for i := range out {
		out[i] = MoveType(i)
	}
	return out
}

// Valid reports whether m is one of the seven move types
func (m MoveType) Valid() bool {
	return m < NumMoveTypes
}

func (m MoveType) String() string {
	if !m.Valid() {
		return fmt.Sprintf("move(%d)", uint8(m))
	}
	return moveTypeNames[m]
}

// ParseMoveType maps a display name back to its move type
func ParseMoveType(name string) (MoveType, bool) {
	for i, n := range moveTypeNames {
		if n == name {
			return MoveType(i), true
		}
	}
	return 0, false
}

// Combine maps a pair of contexts to its move type:
//
//	left \ right | end      loop      stack
//	end          | end      loopEnd   stackEnd
//	loop         | loopEnd  loop      stackLoop
//	stack        | stackEnd stackLoop stackStack
//
// Combine panics on a context outside the enumeration; a guessed move type
// would silently index the wrong rate constants.
func Combine(left, right QuartContext) MoveType {
	m, err := TryCombine(left, right)
	if err != nil {
		panic(err)
	}
	return m
}

// TryCombine is Combine returning the invariant violation as an error
func TryCombine(left, right QuartContext) (MoveType, error) {
	switch left {
	case ContextEnd:
		switch right {
		case ContextEnd:
			return MoveEnd, nil
		case ContextLoop:
			return MoveLoopEnd, nil
		case ContextStack:
			return MoveStackEnd, nil
		}
	case ContextLoop:
		switch right {
		case ContextEnd:
			return MoveLoopEnd, nil
		case ContextLoop:
			return MoveLoop, nil
		case ContextStack:
			return MoveStackLoop, nil
		}
	case ContextStack:
		switch right {
		case ContextEnd:
			return MoveStackEnd, nil
		case ContextLoop:
			return MoveStackLoop, nil
		case ContextStack:
			return MoveStackStack, nil
		}
	}
	return NumMoveTypes, core.NewUnknownContextError(left, right)
}

// Prime returns the prime assigned to m, or 0 for an invalid move type
func (m MoveType) Prime() int {
	if !m.Valid() {
		return 0
	}
	return moveTypePrimes[m]
}

// TypeMult encodes an unordered pair of move types as a product of primes
func TypeMult(left, right MoveType) int {
	return left.Prime() * right.Prime()
}

// DecodeTypeMult recovers the pair encoded by TypeMult. The lower ordinal is
// returned first.
func DecodeTypeMult(product int) (MoveType, MoveType, bool) {
	for i := 0; i < NumMoveTypes; i++ {
		p := moveTypePrimes[i]
		if product%p != 0 {
			continue
		}
		rest := product / p
		for j := i; j < NumMoveTypes; j++ {
			if moveTypePrimes[j] == rest {
				return MoveType(i), MoveType(j), true
			}
		}
	}
	return 0, 0, false
}
