// internal/hit/relation.go
package hit

// DefaultNeighbourGap is the widest gap, in scaffold positions, between two
// disjoint hits that still counts as a near neighbour.
const DefaultNeighbourGap = 50

// Relation classifies how a candidate hit relates to a comparator.
type Relation uint8

const (
	Unrelated Relation = iota
	Superset           // candidate lies inside the comparator
	NearNeighbour      // disjoint, separated by at most the neighbour gap
	RangeExtension     // partial overlap or abutment
)

func (r Relation) String() string {
	switch r {
	case Superset:
		return "superset"
	case NearNeighbour:
		return "near-neighbour"
	case RangeExtension:
		return "range-extension"
	default:
		return "unrelated"
	}
}

// Mergeable reports whether the relation calls for Merge.
func (r Relation) Mergeable() bool { return r == NearNeighbour || r == RangeExtension }

func (h Hit) sameStrand(c Hit) bool {
	return h.Frame == c.Frame && h.Direction == c.Direction
}

// IsSuperset reports whether c contains h. The name follows the comparator's
// point of view: c is the superset that replaces h.
func (h Hit) IsSuperset(c Hit) bool {
	return h.sameStrand(c) && h.Start >= c.Start && h.End <= c.End
}

// IsNearNeighbour reports whether h and c are disjoint and separated by a gap
// of 1..maxGap positions on either side.
func (h Hit) IsNearNeighbour(c Hit, maxGap int) bool {
	if !h.sameStrand(c) {
		return false
	}
	gap1 := h.Start - c.End
	gap2 := c.Start - h.End
	near1 := gap1 > 0 && gap1 <= maxGap
	near2 := gap2 > 0 && gap2 <= maxGap
	return near1 != near2
}

// IsRangeExtension reports whether the ranges interleave so that one extends
// past the end of the other.
func (h Hit) IsRangeExtension(c Hit) bool {
	if !h.sameStrand(c) {
		return false
	}
	return (h.Start <= c.Start && c.Start <= h.End && h.End < c.End) ||
		(c.Start <= h.Start && h.Start <= c.End && c.End < h.End) ||
		(h.End >= c.End && c.Start <= h.Start && h.Start < c.End) ||
		(c.End >= h.End && h.Start <= c.Start && c.Start < h.End)
}

// Classify tests m against c in priority order: superset, near neighbour,
// range extension. Hits on different scaffolds are always unrelated.
func Classify(m, c Hit, maxGap int) Relation {
	switch {
	case m.ScaffoldID != c.ScaffoldID:
		return Unrelated
	case m.IsSuperset(c):
		return Superset
	case m.IsNearNeighbour(c, maxGap):
		return NearNeighbour
	case m.IsRangeExtension(c):
		return RangeExtension
	default:
		return Unrelated
	}
}
