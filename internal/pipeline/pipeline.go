// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"ervin/internal/engine"
	"ervin/internal/hit"
	"ervin/internal/records"
)

// Config controls batch loading.
type Config struct {
	Threads int // concurrent batch readers (>=1)

	// Load reads one batch file. Defaults to records.LoadTSV.
	Load func(path string) ([]hit.Hit, error)

	// Loaded, if set, is called once per batch as it finishes loading.
	Loaded func(path string, n int)
}

// Batch describes one loaded input batch.
type Batch struct {
	Path      string
	Hits      int
	Scaffolds int
}

// Report summarizes a pipeline run.
type Report struct {
	Batches []Batch
	Stats   engine.Stats

	// Inputs counts raw hits per scaffold across all batches.
	Inputs map[string]int
	// Outputs counts consolidated hits per scaffold.
	Outputs map[string]int
}

// Scaffolds returns every scaffold seen on input, sorted.
func (r Report) Scaffolds() []string {
	out := make([]string, 0, len(r.Inputs))
	for s := range r.Inputs {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// LoadBatches reads the batch files concurrently. The result keeps the order
// of paths, which is the fold order.
func LoadBatches(ctx context.Context, cfg Config, paths []string) ([][]hit.Hit, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	load := cfg.Load
	if load == nil {
		load = records.LoadTSV
	}

	batches := make([][]hit.Hit, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hs, err := load(p)
			if err != nil {
				return fmt.Errorf("load batch %s: %w", p, err)
			}
			batches[i] = hs
			slog.Debug("Loaded batch", "path", p, "hits", len(hs))
			if cfg.Loaded != nil {
				cfg.Loaded(p, len(hs))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return batches, nil
}

// ForEachHit loads paths, consolidates them with c and calls visit for every
// consolidated hit in output order. It returns the first error encountered,
// including context cancellation.
func ForEachHit(
	ctx context.Context,
	cfg Config,
	paths []string,
	c Consolidator,
	visit func(hit.Hit) error,
) (Report, error) {
	batches, err := LoadBatches(ctx, cfg, paths)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Batches: make([]Batch, len(paths)),
		Inputs:  make(map[string]int),
		Outputs: make(map[string]int),
	}
	for i, b := range batches {
		scafs := make(map[string]struct{})
		for _, h := range b {
			scafs[h.ScaffoldID] = struct{}{}
			rep.Inputs[h.ScaffoldID]++
		}
		rep.Batches[i] = Batch{Path: paths[i], Hits: len(b), Scaffolds: len(scafs)}
	}

	slog.Info("Consolidating batches", "batches", len(batches))
	res, err := c.ConsolidateBatches(batches)
	if err != nil {
		return Report{}, err
	}
	rep.Stats = res.Stats
	slog.Info("Consolidation finished",
		"input", res.Stats.InputHits,
		"output", res.Stats.OutputHits,
		"merges", res.Stats.Merges,
		"supersets", res.Stats.Supersets)

	for _, h := range res.Hits {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		rep.Outputs[h.ScaffoldID]++
		if err := visit(h); err != nil {
			return rep, err
		}
	}
	return rep, nil
}
