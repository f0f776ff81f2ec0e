// internal/pipeline/sim.go
package pipeline

import (
	"ervin/internal/engine"
	"ervin/internal/hit"
)

// Consolidator is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Consolidator interface {
	ConsolidateBatches(batches [][]hit.Hit) (engine.Result, error)
}

var _ Consolidator = (*engine.Engine)(nil)
