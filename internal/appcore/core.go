// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ervin/internal/cmdutil"
	"ervin/internal/engine"
	"ervin/internal/hit"
	"ervin/internal/metrics"
	"ervin/internal/pipeline"
	"ervin/internal/summary"
	"ervin/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags, unreadable or malformed input
	ExitFailure  = 3 // output or invariant failure
	ExitCanceled = 130
)

// OutputPrefix names the files written in --output-dir mode.
const OutputPrefix = "probe_finder"

// TimestampLayout is the run timestamp embedded in output file names.
const TimestampLayout = "2006-01-02_15-04-05"

type Options struct {
	Batches []string
	Engine  engine.Config

	Threads         int // concurrent batch loaders; 0 = Engine.Threads
	Quiet           bool
	NoMatchExitCode int

	OutputDir   string
	Header      bool // TSV header in --output-dir mode
	Summary     bool
	Progress    bool
	MetricsFile string

	Now func() time.Time
}

// sink is one open destination with its writer goroutine.
type sink struct {
	name  string
	buf   *bufio.Writer
	in    chan<- hit.Hit
	done  <-chan error
	close func() error
}

func startSink(name string, out io.Writer, closer func() error, wf WriterFactory, bufSize int) sink {
	bw := bufio.NewWriter(out)
	in, done := wf.Start(bw, bufSize)
	if closer == nil {
		closer = func() error { return nil }
	}
	return sink{name: name, buf: bw, in: in, done: done, close: closer}
}

// finish waits for the writer, flushes and closes. Broken pipes are not errors.
func (s sink) finish() error {
	werr := <-s.done
	ferr := s.buf.Flush()
	cerr := s.close()
	for _, err := range []error{werr, ferr, cerr} {
		if err != nil && !writers.IsBrokenPipe(err) {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// openDirSinks creates dir if needed and opens one file per factory.
func openDirSinks(dir, stamp string, header bool, bufSize int) ([]sink, []string, error) {
	if fi, err := os.Stat(dir); err == nil && !fi.IsDir() {
		return nil, nil, fmt.Errorf("invalid output path %q: not a directory", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	var (
		sinks []sink
		paths []string
	)
	for _, wf := range DirFactories(header) {
		p := filepath.Join(dir, fmt.Sprintf("%s-%s.%s", OutputPrefix, stamp, wf.Ext()))
		fh, err := os.Create(p)
		if err != nil {
			for _, s := range sinks {
				close(s.in)
				_ = s.finish()
			}
			return nil, nil, err
		}
		sinks = append(sinks, startSink(p, fh, fh.Close, wf, bufSize))
		paths = append(paths, p)
	}
	return sinks, paths, nil
}

// Run consolidates o.Batches and writes the result through wf, or to the
// TSV and FASTA files of o.OutputDir.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	wf WriterFactory,
) int {
	started := time.Now()
	now := o.Now
	if now == nil {
		now = time.Now
	}

	var pb *progressBars
	if o.Progress {
		pb = newProgressBars(stderr, len(o.Batches))
		o.Engine.Progress = pb.folded
	}
	eng := engine.New(o.Engine)
	thr := o.Threads
	if thr <= 0 {
		thr = eng.Config().Threads
	}
	pcfg := pipeline.Config{Threads: thr}
	if pb != nil {
		pcfg.Loaded = pb.loaded
	}

	var (
		sinks []sink
		paths []string
	)
	if o.OutputDir != "" {
		var err error
		sinks, paths, err = openDirSinks(o.OutputDir, now().Format(TimestampLayout), o.Header, thr*4)
		if err != nil {
			if pb != nil {
				pb.wait()
			}
			fmt.Fprintln(stderr, err)
			return ExitFailure
		}
	} else {
		sinks = []sink{startSink("stdout", stdout, nil, wf, thr*4)}
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, rep, perr := cmdutil.RunStream(ctx, pcfg, o.Batches, eng, func(h hit.Hit) error {
		for _, s := range sinks {
			select {
			case s.in <- h:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for _, s := range sinks {
		close(s.in)
	}
	if pb != nil {
		pb.wait()
	}

	var werr error
	for _, s := range sinks {
		if err := s.finish(); err != nil && werr == nil {
			werr = err
		}
	}

	if perr != nil {
		return reportPipelineError(stderr, perr)
	}
	if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitFailure
	}

	for _, p := range paths {
		slog.Info("Wrote output", "path", p, "hits", total)
	}
	if o.Summary {
		if err := summary.Write(stderr, rep); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitFailure
		}
	}
	if o.MetricsFile != "" {
		m := metrics.New()
		m.Observe(rep, time.Since(started), now())
		if err := m.WriteFile(o.MetricsFile); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitFailure
		}
	}

	if total == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "no hits survived consolidation")
		return o.NoMatchExitCode
	}
	return ExitOK
}

// reportPipelineError maps a pipeline error to an exit code.
func reportPipelineError(stderr io.Writer, err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, hit.ErrInvariant):
		slog.Error("Consolidation failed", "error", err)
		fmt.Fprintln(stderr, err)
		return ExitFailure
	case writers.IsBrokenPipe(err):
		return ExitOK
	default:
		slog.Error("Run failed", "error", err)
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
}
