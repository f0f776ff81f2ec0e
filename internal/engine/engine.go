// internal/engine/engine.go
package engine

import (
	"errors"
	"runtime"

	"ervin/internal/hit"
)

// ErrNoBatches is returned when a reduction is asked to fold nothing.
var ErrNoBatches = errors.New("no hit batches to consolidate")

// DefaultMaxSettleRounds bounds the extra self-folds run when Settle is on.
const DefaultMaxSettleRounds = 8

// Config controls consolidation. Zero values select the defaults.
type Config struct {
	NeighbourGap       int  // widest near-neighbour gap; 0 = 50, negative disables near-neighbour merges
	CodonRatio         int  // nucleotides per aligned residue; 0 = 3
	GapFill            byte // gap-fill character; 0 = '-'
	MinAlignmentLength int  // candidates must exceed this; <= 0 disables the threshold
	Threads            int  // scaffold workers per pairwise step; <= 0 = all CPUs

	// KeepUnrelated also emits comparator hits that related to no candidate
	// on a shared scaffold. By default only candidates survive a step.
	KeepUnrelated bool

	// Settle repeats self-folds of the final result until nothing changes
	// (at most MaxSettleRounds times).
	Settle          bool
	MaxSettleRounds int

	// Progress, if set, is called after each pairwise step of the fold.
	Progress func(done, total int)
}

type Engine struct{ cfg Config }

func New(c Config) *Engine {
	if c.NeighbourGap == 0 {
		c.NeighbourGap = hit.DefaultNeighbourGap
	}
	if c.CodonRatio <= 0 {
		c.CodonRatio = hit.DefaultCodonRatio
	}
	if c.GapFill == 0 {
		c.GapFill = hit.DefaultGapFill
	}
	if c.Threads <= 0 {
		c.Threads = runtime.NumCPU()
	}
	if c.MaxSettleRounds <= 0 {
		c.MaxSettleRounds = DefaultMaxSettleRounds
	}
	return &Engine{cfg: c}
}

// Config returns the effective configuration after defaults.
func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) mergeOptions() hit.MergeOptions {
	return hit.MergeOptions{CodonRatio: e.cfg.CodonRatio, GapFill: e.cfg.GapFill}
}

// MergeTwo merges two related hits with the engine's codon ratio and gap fill.
func (e *Engine) MergeTwo(a, b hit.Hit) (hit.Hit, error) {
	return hit.Merge(a, b, e.mergeOptions())
}

// Stats counts what a consolidation did.
type Stats struct {
	Batches      int // input batches folded
	InputHits    int // raw hits across all batches
	Steps        int // pairwise consolidations, settle rounds included
	SettleRounds int
	Merges       int // near-neighbour and range-extension merges
	Supersets    int // candidates replaced by a containing comparator
	Filtered     int // candidates skipped by the alignment-length threshold
	Collapsed    int // candidates absorbed as structural duplicates
	Retained     int // unrelated comparators kept by KeepUnrelated
	PassThrough  int // scaffold groups copied without comparison
	Scaffolds    int // scaffolds in the final result
	OutputHits   int
}

func (s *Stats) add(o Stats) {
	s.Steps += o.Steps
	s.SettleRounds += o.SettleRounds
	s.Merges += o.Merges
	s.Supersets += o.Supersets
	s.Filtered += o.Filtered
	s.Collapsed += o.Collapsed
	s.Retained += o.Retained
	s.PassThrough += o.PassThrough
}

// Result is the flattened, ordered outcome of ConsolidateBatches.
type Result struct {
	Hits  []hit.Hit
	Stats Stats
}

// Empty reports whether no consolidated hits were found. An empty result is
// not an error; the caller decides what it means.
func (r Result) Empty() bool { return len(r.Hits) == 0 }

// ConsolidateBatches groups each raw batch by scaffold, folds the batches in
// order and returns the flattened, ordered hits.
func (e *Engine) ConsolidateBatches(batches [][]hit.Hit) (Result, error) {
	groups := make([]Groups, len(batches))
	input := 0
	for i, b := range batches {
		groups[i] = Group(b)
		input += len(b)
	}
	final, st, err := e.Reduce(groups)
	if err != nil {
		return Result{}, err
	}
	st.InputHits = input
	hits := Flatten(final)
	st.Scaffolds = len(final)
	st.OutputHits = len(hits)
	return Result{Hits: hits, Stats: st}, nil
}
