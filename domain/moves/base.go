package moves

import (
	"fmt"
	"strings"
	"unicode"

	"strandkin/domain/core"
)

// Base is a nucleotide identity. RNA uracil is folded onto BaseT.
type Base uint8

const (
	BaseA Base = iota
	BaseC
	BaseG
	BaseT

	NumBases = iota
)

var baseLetters = [NumBases]byte{'A', 'C', 'G', 'T'}

// AllBases lists every base in ordinal order
func AllBases() [NumBases]Base {
	return [NumBases]Base{BaseA, BaseC, BaseG, BaseT}
}

// Valid reports whether b is one of the four bases
func (b Base) Valid() bool {
	return b < NumBases
}

func (b Base) String() string {
	if !b.Valid() {
		return fmt.Sprintf("base(%d)", uint8(b))
	}
	return string(baseLetters[b])
}

// ParseBase accepts A, C, G, T or U in either case
func ParseBase(r rune) (Base, error) {
	switch unicode.ToUpper(r) {
	case 'A':
		return BaseA, nil
	case 'C':
		return BaseC, nil
	case 'G':
		return BaseG, nil
	case 'T', 'U':
		return BaseT, nil
	}
	return 0, fmt.Errorf("%w: %q", core.ErrUnknownBase, r)
}

// Complement returns the Watson-Crick partner of b
func (b Base) Complement() Base {
	return NumBases - 1 - b
}

// IsPair reports whether two bases can pair. G-T wobble pairs count only when
// gtEnabled is set.
func IsPair(one, two Base, gtEnabled bool) bool {
	if !one.Valid() || !two.Valid() {
		return false
	}
	if one.Complement() == two {
		return true
	}
	return gtEnabled && ((one == BaseG && two == BaseT) || (one == BaseT && two == BaseG))
}

// BaseCount tallies occurrences of each base
type BaseCount [NumBases]int

// Add increments the counter for b
func (c *BaseCount) Add(b Base) {
	c[b]++
}

// Merge adds other element-wise
func (c *BaseCount) Merge(other BaseCount) {
	for i := range c {
		c[i] += other[i]
	}
}

// Get returns the count for b
func (c BaseCount) Get(b Base) int {
	return c[b]
}

// Total is the sum over all bases
func (c BaseCount) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

func (c BaseCount) String() string {
	var sb strings.Builder
	for i, n := range c {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%c=%d", baseLetters[i], n)
	}
	return sb.String()
}
