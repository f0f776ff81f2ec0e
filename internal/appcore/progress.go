package appcore

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// progressBars shows batch loading and fold steps on stderr.
type progressBars struct {
	p          *mpb.Progress
	load, fold *mpb.Bar
}

func newProgressBars(w io.Writer, batches int) *progressBars {
	folds := batches - 1
	if folds < 1 {
		folds = 1
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := func(label string, total int) *mpb.Bar {
		return p.AddBar(int64(total),
			mpb.PrependDecorators(
				decor.Name(label, decor.WC{W: len(label), C: decor.DindentRight}),
				decor.Name("", decor.WCSyncSpaceR),
				decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
			),
		)
	}
	return &progressBars{
		p:    p,
		load: bar("loaded batches: ", batches),
		fold: bar("fold steps: ", folds),
	}
}

func (pb *progressBars) loaded(string, int) { pb.load.Increment() }

func (pb *progressBars) folded(done, _ int) { pb.fold.SetCurrent(int64(done)) }

// wait aborts unfinished bars (after an error) and waits for rendering.
func (pb *progressBars) wait() {
	for _, b := range []*mpb.Bar{pb.load, pb.fold} {
		if !b.Completed() {
			b.Abort(false)
		}
	}
	pb.p.Wait()
}
