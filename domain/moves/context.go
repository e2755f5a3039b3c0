package moves

import "fmt"

// QuartContext is the structural state on one side of an exposed region
type QuartContext uint8

const (
	ContextEnd   QuartContext = iota // no neighbouring pair; complex terminal
	ContextLoop                      // open single-stranded region
	ContextStack                     // adjacent base pair

	numQuartContexts = iota
)

var quartContextNames = [numQuartContexts]string{"end", "loop", "stack"}

// Valid reports whether c is one of the three context symbols
func (c QuartContext) Valid() bool {
	return c < numQuartContexts
}

func (c QuartContext) String() string {
	if !c.Valid() {
		return fmt.Sprintf("context(%d)", uint8(c))
	}
	return quartContextNames[c]
}

// ParseQuartContext maps a display name back to its context
func ParseQuartContext(name string) (QuartContext, bool) {
	for i, n := range quartContextNames {
		if n == name {
			return QuartContext(i), true
		}
	}
	return 0, false
}

// Classify reduces the exterior pairing signal at a position to a context.
// A positive signal means a base pair sits immediately outward.
func Classify(exterior int) QuartContext {
	if exterior > 0 {
		return ContextStack
	}
	return ContextEnd
}

// ClassifyPaired is Classify for callers that already hold a boolean
func ClassifyPaired(paired bool) QuartContext {
	if paired {
		return ContextStack
	}
	return ContextEnd
}

// HalfContext is the pair of contexts bounding an exposed region.
// It is comparable and used directly as a map key.
type HalfContext struct {
	Left  QuartContext
	Right QuartContext
}

// NewHalfContext creates a HalfContext
func NewHalfContext(left, right QuartContext) HalfContext {
	return HalfContext{Left: left, Right: right}
}

// Less orders by left ordinal, then right ordinal
func (h HalfContext) Less(other HalfContext) bool {
	return h.Left < other.Left || (h.Left == other.Left && h.Right < other.Right)
}

// Compare returns -1, 0 or +1 following Less
func (h HalfContext) Compare(other HalfContext) int {
	switch {
	case h.Less(other):
		return -1
	case other.Less(h):
		return 1
	default:
		return 0
	}
}

// Internal reports whether the region is away from both complex ends
func (h HalfContext) Internal() bool {
	return h.Left != ContextEnd && h.Right != ContextEnd
}

// MoveType is the move category this pair of contexts combines into
func (h HalfContext) MoveType() MoveType {
	return Combine(h.Left, h.Right)
}

func (h HalfContext) String() string {
	return fmt.Sprintf("(%s, %s)", h.Left, h.Right)
}
