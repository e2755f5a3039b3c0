package moves

import (
	"fmt"
	"sort"
	"strings"

	"strandkin/domain/core"
)

// OpenInfo aggregates base counts over exposed regions, keyed by the
// HalfContext bounding each region. It is owned by a single traversal and
// reused across visits via Clear.
type OpenInfo struct {
	tally              map[HalfContext]BaseCount
	numExposed         int
	numExposedInternal int
}

// NewOpenInfo creates an empty OpenInfo
func NewOpenInfo() *OpenInfo {
	return &OpenInfo{tally: make(map[HalfContext]BaseCount)}
}

// Clear drops every tally entry and zeroes both counters
func (o *OpenInfo) Clear() {
	clear(o.tally)
	o.numExposed = 0
	o.numExposedInternal = 0
}

// Increment records one exposed base between left and right
func (o *OpenInfo) Increment(left QuartContext, base Base, right QuartContext) {
	con := NewHalfContext(left, right)
	count := o.tally[con]
	count.Add(base)
	o.store(con, count, 1)
}

// IncrementCount folds a whole BaseCount into the entry for con. Every entry
// of count must be non-negative; a negative entry panics with
// core.ErrNegativeCount, leaving o unchanged.
func (o *OpenInfo) IncrementCount(con HalfContext, count BaseCount) {
	for _, n := range count {
		if n < 0 {
			panic(core.NewNegativeCountError(con, count))
		}
	}
	merged := o.tally[con]
	merged.Merge(count)
	o.store(con, merged, count.Total())
}

// Merge folds other into o: key union, per-key merge and both counters.
func (o *OpenInfo) Merge(other *OpenInfo) {
	if other == nil {
		return
	}
	if other == o {
		other = o.Clone()
	}
	if o.tally == nil {
		o.tally = make(map[HalfContext]BaseCount, len(other.tally))
	}
	for con, count := range other.tally {
		merged := o.tally[con]
		merged.Merge(count)
		o.tally[con] = merged
	}
	o.numExposed += other.numExposed
	o.numExposedInternal += other.numExposedInternal
}

func (o *OpenInfo) store(con HalfContext, count BaseCount, added int) {
	if o.tally == nil {
		o.tally = make(map[HalfContext]BaseCount)
	}
	o.tally[con] = count
	o.numExposed += added
	if con.Internal() {
		o.numExposedInternal += added
	}
}

// Len is the number of distinct HalfContext keys
func (o *OpenInfo) Len() int {
	return len(o.tally)
}

// Count returns the tally for con
func (o *OpenInfo) Count(con HalfContext) (BaseCount, bool) {
	count, ok := o.tally[con]
	return count, ok
}

// NumExposed is the total number of exposed bases recorded
func (o *OpenInfo) NumExposed() int {
	return o.numExposed
}

// NumExposedInternal counts exposed bases not adjacent to a complex end
func (o *OpenInfo) NumExposedInternal() int {
	return o.numExposedInternal
}

// Keys returns the tallied contexts in HalfContext order
func (o *OpenInfo) Keys() []HalfContext {
	keys := make([]HalfContext, 0, len(o.tally))
	for con := range o.tally {
		keys = append(keys, con)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Totals sums the tally over every context
func (o *OpenInfo) Totals() BaseCount {
	var total BaseCount
	for _, count := range o.tally {
		total.Merge(count)
	}
	return total
}

// Equal reports whether both aggregates hold the same tally and counters
func (o *OpenInfo) Equal(other *OpenInfo) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.numExposed != other.numExposed || o.numExposedInternal != other.numExposedInternal {
		return false
	}
	if len(o.tally) != len(other.tally) {
		return false
	}
	for con, count := range o.tally {
		if otherCount, ok := other.tally[con]; !ok || otherCount != count {
			return false
		}
	}
	return true
}

// Clone returns an independent copy
func (o *OpenInfo) Clone() *OpenInfo {
	out := NewOpenInfo()
	out.Merge(o)
	return out
}

func (o *OpenInfo) String() string {
	var sb strings.Builder
	for _, con := range o.Keys() {
		fmt.Fprintf(&sb, "%s %s   --   ", con, o.tally[con])
	}
	fmt.Fprintf(&sb, "Exposed, Intern/Total = %d / %d\n", o.numExposedInternal, o.numExposed)
	return sb.String()
}
