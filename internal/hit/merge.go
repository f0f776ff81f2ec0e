// internal/hit/merge.go
package hit

import (
	"fmt"
	"strings"
)

// Defaults for MergeOptions.
const (
	DefaultCodonRatio = 3   // nucleotides per aligned residue
	DefaultGapFill    = '-' // placeholder for unaligned residues
)

// MergeOptions controls how aligned text is reconciled across a gap or overlap.
// Zero values fall back to the defaults.
type MergeOptions struct {
	CodonRatio int
	GapFill    byte
}

func (o MergeOptions) withDefaults() MergeOptions {
	if o.CodonRatio <= 0 {
		o.CodonRatio = DefaultCodonRatio
	}
	if o.GapFill == 0 {
		o.GapFill = DefaultGapFill
	}
	return o
}

// Merge combines two related hits into a new hit spanning both.
//
// The scaffold alignments are joined in coordinate order. A gap between the
// hits is filled with ceil(gap/CodonRatio) GapFill characters; an overlap
// trims ceil(overlap/CodonRatio) leading characters from the later hit.
// Inputs on different scaffolds, frames or strands are rejected with
// ErrInvariant; the classifier never relates such pairs.
func Merge(a, b Hit, opts MergeOptions) (Hit, error) {
	switch {
	case a.ScaffoldID != b.ScaffoldID:
		return Hit{}, fmt.Errorf("%w: merge across scaffolds %q and %q", ErrInvariant, a.ScaffoldID, b.ScaffoldID)
	case a.Frame != b.Frame:
		return Hit{}, fmt.Errorf("%w: merge across frames %d and %d (%s, %s)", ErrInvariant, a.Frame, b.Frame, a.SourceID(), b.SourceID())
	case a.Direction != b.Direction:
		return Hit{}, fmt.Errorf("%w: merge across strands (%s, %s)", ErrInvariant, a.SourceID(), b.SourceID())
	}
	opts = opts.withDefaults()

	first, second := a, b
	if b.Start < a.Start || (b.Start == a.Start && b.End < a.End) {
		first, second = b, a
	}

	var aln strings.Builder
	aln.Grow(len(first.ScaffoldAlignment) + len(second.ScaffoldAlignment))
	aln.WriteString(first.ScaffoldAlignment)
	switch {
	case first.End < second.Start:
		n := ceilDiv(second.Start-first.End, opts.CodonRatio)
		aln.WriteString(strings.Repeat(string(opts.GapFill), n))
		aln.WriteString(second.ScaffoldAlignment)
	case first.End > second.Start:
		n := ceilDiv(first.End-second.Start, opts.CodonRatio)
		if n < len(second.ScaffoldAlignment) {
			aln.WriteString(second.ScaffoldAlignment[n:])
		}
	default:
		aln.WriteString(second.ScaffoldAlignment)
	}
	merged := aln.String()

	sources := make([]string, 0, len(first.SourceIDs)+len(second.SourceIDs))
	sources = append(sources, first.SourceIDs...)
	sources = append(sources, second.SourceIDs...)

	out := first
	out.SourceIDs = sources
	out.Start = first.Start
	out.End = second.End
	out.ScaffoldAlignment = merged
	out.AlignmentLength = (out.End - out.Start) - strings.Count(merged, string(opts.GapFill))
	return out, nil
}

func ceilDiv(n, d int) int { return (n + d - 1) / d }
