// internal/engine/reduce.go
package engine

// Reduce folds batches left to right with Consolidate. A single batch is
// consolidated against itself to resolve redundancy inside it.
func (e *Engine) Reduce(batches []Groups) (Groups, Stats, error) {
	if len(batches) == 0 {
		return nil, Stats{}, ErrNoBatches
	}
	st := Stats{Batches: len(batches)}

	acc := batches[0]
	rest := batches[1:]
	if len(rest) == 0 {
		rest = batches[:1]
	}
	for i, b := range rest {
		next, s, err := e.Consolidate(acc, b)
		if err != nil {
			return nil, Stats{}, err
		}
		st.add(s)
		acc = next
		if e.cfg.Progress != nil {
			e.cfg.Progress(i+1, len(rest))
		}
	}

	if e.cfg.Settle {
		for round := 0; round < e.cfg.MaxSettleRounds; round++ {
			next, s, err := e.Consolidate(acc, acc)
			if err != nil {
				return nil, Stats{}, err
			}
			s.SettleRounds = 1
			st.add(s)
			if next.equal(acc) {
				break
			}
			acc = next
		}
	}
	return acc, st, nil
}
