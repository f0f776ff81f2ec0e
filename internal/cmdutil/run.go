package cmdutil

import (
	"context"

	"ervin/internal/hit"
	"ervin/internal/pipeline"
)

// RunStream runs the shared pipeline and streams each consolidated hit via
// send. It returns the number of hits sent, the run report and the first
// error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	paths []string,
	c pipeline.Consolidator,
	send func(hit.Hit) error,
) (int, pipeline.Report, error) {
	total := 0
	rep, err := pipeline.ForEachHit(ctx, cfg, paths, c, func(h hit.Hit) error {
		if err := send(h); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, rep, err
}
