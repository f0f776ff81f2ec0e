// internal/common/sort.go
package common

import (
	"sort"

	"ervin/internal/hit"
)

// LessHit defines the stable output order for consolidated hits:
// ScaffoldID, Start, End, SourceID, Frame, Direction.
func LessHit(a, b hit.Hit) bool {
	if a.ScaffoldID != b.ScaffoldID {
		return a.ScaffoldID < b.ScaffoldID
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.End != b.End {
		return a.End < b.End
	}
	if as, bs := a.SourceID(), b.SourceID(); as != bs {
		return as < bs
	}
	if a.Frame != b.Frame {
		return a.Frame < b.Frame
	}
	return a.Direction < b.Direction
}

func SortHits(hs []hit.Hit) {
	sort.SliceStable(hs, func(i, j int) bool { return LessHit(hs[i], hs[j]) })
}
