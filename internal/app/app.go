// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ervin/internal/appcore"
	"ervin/internal/cli"
	"ervin/internal/cliutil"
	"ervin/internal/cmdutil"
)

// RunContext executes the ervin command line and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	v := cli.NewConfig()
	root := cli.NewRootCommand(v, cli.Hooks{Consolidate: consolidate(v, stdout, stderr)})
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	var exit *cli.ExitError
	switch {
	case err == nil:
		return appcore.ExitOK
	case errors.As(err, &exit):
		return exit.Code
	default:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}
}

func consolidate(v *viper.Viper, stdout, stderr io.Writer) cli.ConsolidateFunc {
	return func(ctx context.Context, _ *cobra.Command, o cli.Options) error {
		closer := cmdutil.ConfigureLogger(v)
		defer closer.Close()

		batches, err := cliutil.ResolveBatches(o.Batches, o.Manifest)
		if err != nil {
			return err
		}
		slog.Info("Starting consolidation", "batches", len(batches), "format", o.Format)
		if len(batches) == 1 {
			cmdutil.Warnf(stderr, o.Quiet, "single batch %s is consolidated against itself", batches[0])
		}

		code := appcore.Run(ctx, stdout, stderr, appcore.Options{
			Batches:         batches,
			Engine:          o.EngineConfig(),
			Threads:         o.Threads,
			Quiet:           o.Quiet,
			NoMatchExitCode: o.NoMatchExitCode,
			OutputDir:       o.OutputDir,
			Header:          o.Header,
			Summary:         o.Summary,
			Progress:        o.Progress,
			MetricsFile:     o.MetricsFile,
		}, appcore.NewHitWriterFactory(o.Format, o.Header))
		if code != appcore.ExitOK {
			return &cli.ExitError{Code: code}
		}
		return nil
	}
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
