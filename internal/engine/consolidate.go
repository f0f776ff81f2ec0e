// internal/engine/consolidate.go
package engine

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"ervin/internal/hit"
)

// Consolidate combines two scaffold groupings into one.
//
// Scaffolds present on only one side are copied through unchanged. For each
// shared scaffold, every candidate from a is folded over b's hits on that
// scaffold: a containing comparator replaces the candidate, a near neighbour
// or range extension is merged into it, anything else leaves it alone. The
// final candidates form a set under structural equality, kept in insertion
// order. Shared scaffolds are processed concurrently.
func (e *Engine) Consolidate(a, b Groups) (Groups, Stats, error) {
	if err := a.validate(); err != nil {
		return nil, Stats{}, err
	}
	if err := b.validate(); err != nil {
		return nil, Stats{}, err
	}

	out := make(Groups, len(a)+len(b))
	var st Stats
	var shared []string
	for _, scaf := range a.Scaffolds() {
		if _, ok := b[scaf]; ok {
			shared = append(shared, scaf)
			continue
		}
		out[scaf] = append([]hit.Hit(nil), a[scaf]...)
		st.PassThrough++
	}
	for _, scaf := range b.Scaffolds() {
		if _, ok := a[scaf]; !ok {
			out[scaf] = append([]hit.Hit(nil), b[scaf]...)
			st.PassThrough++
		}
	}

	type result struct {
		hits  []hit.Hit
		stats Stats
	}
	results := make([]result, len(shared))

	var g errgroup.Group
	g.SetLimit(e.cfg.Threads)
	for i, scaf := range shared {
		g.Go(func() error {
			hs, s, err := e.consolidateScaffold(scaf, a[scaf], b)
			results[i] = result{hits: hs, stats: s}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	for i, scaf := range shared {
		out[scaf] = results[i].hits
		st.add(results[i].stats)
	}
	st.Steps = 1
	return out, st, nil
}

func (e *Engine) consolidateScaffold(scaf string, records []hit.Hit, b Groups) ([]hit.Hit, Stats, error) {
	var st Stats
	comparators, ok := b[scaf]
	if !ok {
		return nil, st, fmt.Errorf("%w: scaffold %q missing from comparator batch", hit.ErrInvariant, scaf)
	}

	seen := make(map[hit.Key]struct{}, len(records))
	out := make([]hit.Hit, 0, len(records))
	add := func(h hit.Hit) bool {
		k := h.Key()
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
		out = append(out, h)
		return true
	}

	related := make([]bool, len(comparators))
	for _, rec := range records {
		if e.cfg.MinAlignmentLength > 0 && rec.AlignmentLength <= e.cfg.MinAlignmentLength {
			st.Filtered++
			continue
		}
		cand, err := e.scan(rec, comparators, related, &st)
		if err != nil {
			return nil, st, err
		}
		if !add(cand) {
			st.Collapsed++
		}
	}

	if e.cfg.KeepUnrelated {
		for j, c := range comparators {
			if !related[j] && add(c) {
				st.Retained++
			}
		}
	}
	return out, st, nil
}

// scan folds comparators into a candidate. Each step sees the candidate left
// by the previous one. related[j] is set when comparator j took part.
func (e *Engine) scan(cand hit.Hit, comparators []hit.Hit, related []bool, st *Stats) (hit.Hit, error) {
	for j, c := range comparators {
		next, rel, err := e.step(cand, c)
		if err != nil {
			return hit.Hit{}, err
		}
		if rel != hit.Unrelated {
			related[j] = true
		}
		switch {
		case rel == hit.Superset && !next.Equal(cand):
			st.Supersets++
		case rel.Mergeable():
			st.Merges++
		}
		cand = next
	}
	return cand, nil
}

func (e *Engine) step(cand, c hit.Hit) (hit.Hit, hit.Relation, error) {
	rel := hit.Classify(cand, c, e.cfg.NeighbourGap)
	switch {
	case rel == hit.Superset:
		return c, rel, nil
	case rel.Mergeable():
		m, err := hit.Merge(cand, c, e.mergeOptions())
		return m, rel, err
	default:
		return cand, rel, nil
	}
}
