// internal/engine/group.go
package engine

import (
	"fmt"
	"sort"

	"ervin/internal/common"
	"ervin/internal/hit"
)

// Groups maps a scaffold id to the hits on that scaffold.
type Groups map[string][]hit.Hit

// Group partitions hits by scaffold, preserving input order within a group.
func Group(hits []hit.Hit) Groups {
	g := make(Groups)
	for _, h := range hits {
		g[h.ScaffoldID] = append(g[h.ScaffoldID], h)
	}
	return g
}

// Scaffolds returns the group keys in sorted order.
func (g Groups) Scaffolds() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len is the total number of hits across all groups.
func (g Groups) Len() int {
	n := 0
	for _, hs := range g {
		n += len(hs)
	}
	return n
}

func (g Groups) validate() error {
	for scaf, hs := range g {
		for _, h := range hs {
			if h.ScaffoldID != scaf {
				return fmt.Errorf("%w: hit %s grouped under scaffold %q", hit.ErrInvariant, h, scaf)
			}
		}
	}
	return nil
}

// equal reports whether both groupings hold structurally equal hits in the
// same order.
func (g Groups) equal(o Groups) bool {
	if len(g) != len(o) {
		return false
	}
	for scaf, hs := range g {
		other, ok := o[scaf]
		if !ok || len(other) != len(hs) {
			return false
		}
		for i := range hs {
			if !hs[i].Equal(other[i]) {
				return false
			}
		}
	}
	return true
}

// FilterByAlignmentLength keeps hits whose alignment length is strictly
// greater than threshold. A threshold of zero or less keeps everything.
func FilterByAlignmentLength(hits []hit.Hit, threshold int) []hit.Hit {
	if threshold <= 0 {
		return hits
	}
	out := make([]hit.Hit, 0, len(hits))
	for _, h := range hits {
		if h.AlignmentLength > threshold {
			out = append(out, h)
		}
	}
	return out
}

// Flatten returns every hit in g ordered by scaffold, start, end and source.
func Flatten(g Groups) []hit.Hit {
	out := make([]hit.Hit, 0, g.Len())
	for _, hs := range g {
		out = append(out, hs...)
	}
	common.SortHits(out)
	return out
}
