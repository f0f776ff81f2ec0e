// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/viper"

	"ervin/internal/engine"
	"ervin/internal/output"
)

// Options holds everything the consolidate command needs, resolved from
// flags, environment and config file.
type Options struct {
	// Input
	Batches  []string // positional batch files, globs unexpanded
	Manifest string

	// Consolidation
	AlignThreshold int
	NeighbourGap   int
	CodonRatio     int
	GapFill        byte
	Threads        int
	Settle         bool
	KeepUnrelated  bool

	// Output
	Format    string
	Header    bool
	OutputDir string
	Summary   bool

	// Run
	NoMatchExitCode int
	Quiet           bool
	Progress        bool
	MetricsFile     string
}

// OptionsFromConfig reads the consolidate options from v and validates them.
func OptionsFromConfig(v *viper.Viper, args []string, manifest string) (Options, error) {
	o := Options{
		Batches:         args,
		Manifest:        manifest,
		AlignThreshold:  v.GetInt(alignThresholdKey),
		NeighbourGap:    v.GetInt(neighbourGapKey),
		CodonRatio:      v.GetInt(codonRatioKey),
		Threads:         v.GetInt(threadsKey),
		Settle:          v.GetBool(settleKey),
		KeepUnrelated:   v.GetBool(keepUnrelatedKey),
		Format:          v.GetString(formatKey),
		Header:          v.GetBool(headerKey),
		OutputDir:       v.GetString(outputDirKey),
		Summary:         v.GetBool(summaryKey),
		NoMatchExitCode: v.GetInt(noMatchExitCodeKey),
		Quiet:           v.GetBool(quietKey),
		Progress:        v.GetBool(progressKey),
		MetricsFile:     v.GetString(metricsFileKey),
	}

	fill := v.GetString(gapFillKey)
	if len(fill) != 1 {
		return o, fmt.Errorf("--gap-fill must be a single character, got %q", fill)
	}
	o.GapFill = fill[0]

	return o, o.Validate()
}

// Validate checks option ranges and combinations.
func (o Options) Validate() error {
	switch {
	case len(o.Batches) == 0 && o.Manifest == "":
		return errors.New("provide batch files or --manifest")
	case len(o.Batches) > 0 && o.Manifest != "":
		return errors.New("--manifest conflicts with positional batch files")
	case o.AlignThreshold < 0:
		return errors.New("--alignment-threshold must be ≥ 0")
	case o.NeighbourGap < 0:
		return errors.New("--neighbour-gap must be ≥ 0")
	case o.CodonRatio < 1:
		return errors.New("--codon-ratio must be ≥ 1")
	case o.Threads < 0:
		return errors.New("--threads must be ≥ 0")
	case !slices.Contains(output.Formats, o.Format):
		return fmt.Errorf("invalid --format %q", o.Format)
	case o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255:
		return errors.New("--no-match-exit-code must be in 0..255")
	}
	return nil
}

// EngineConfig maps the options onto engine.Config. Progress is left to
// the caller.
func (o Options) EngineConfig() engine.Config {
	gap := o.NeighbourGap
	if gap == 0 {
		gap = -1 // zero disables near-neighbour merges
	}
	return engine.Config{
		NeighbourGap:       gap,
		CodonRatio:         o.CodonRatio,
		GapFill:            o.GapFill,
		MinAlignmentLength: o.AlignThreshold,
		Threads:            o.Threads,
		KeepUnrelated:      o.KeepUnrelated,
		Settle:             o.Settle,
	}
}
