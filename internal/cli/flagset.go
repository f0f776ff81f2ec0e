// internal/cli/flagset.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ervin/internal/output"
)

const (
	configFlagName   = "config"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"
	manifestFlagName = "manifest"
	noHeaderFlagName = "no-header"
)

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(v *viper.Viper, flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}
	cobra.CheckErr(v.BindPFlag(key, flag))
}

func configureRootFlags(cmd *cobra.Command, v *viper.Viper, configPath *string) {
	pf := cmd.PersistentFlags()
	pf.StringVar(configPath, configFlagName, "", "config file (default ./"+configFileName+")")

	pf.BoolP(verboseFlagName, "v", v.GetBool(LogVerboseKey), "debug logging")
	bindFlagToConfig(v, pf.Lookup(verboseFlagName), LogVerboseKey)

	pf.String(logFileFlagName, v.GetString(LogFilenameKey), "log file path")
	bindFlagToConfig(v, pf.Lookup(logFileFlagName), LogFilenameKey)
}

func configureConsolidateFlags(cmd *cobra.Command, v *viper.Viper, manifest *string, noHeader *bool) {
	f := cmd.Flags()

	f.StringVar(manifest, manifestFlagName, "", "file listing batch paths in fold order (text or YAML)")

	f.IntP("alignment-threshold", "a", v.GetInt(alignThresholdKey), "skip candidates with alignment length ≤ N (0 = off)")
	bindFlagToConfig(v, f.Lookup("alignment-threshold"), alignThresholdKey)

	f.Int("neighbour-gap", v.GetInt(neighbourGapKey), "widest gap merged as a near neighbour (0 = never)")
	bindFlagToConfig(v, f.Lookup("neighbour-gap"), neighbourGapKey)

	f.Int("codon-ratio", v.GetInt(codonRatioKey), "scaffold positions per aligned residue")
	bindFlagToConfig(v, f.Lookup("codon-ratio"), codonRatioKey)

	f.String("gap-fill", v.GetString(gapFillKey), "character padding merge gaps")
	bindFlagToConfig(v, f.Lookup("gap-fill"), gapFillKey)

	f.Int("threads", v.GetInt(threadsKey), "worker goroutines (0 = all CPUs)")
	bindFlagToConfig(v, f.Lookup("threads"), threadsKey)

	f.Bool("settle", v.GetBool(settleKey), "self-fold the result until it stops changing")
	bindFlagToConfig(v, f.Lookup("settle"), settleKey)

	f.Bool("keep-unrelated", v.GetBool(keepUnrelatedKey), "also emit comparator hits that matched no candidate")
	bindFlagToConfig(v, f.Lookup("keep-unrelated"), keepUnrelatedKey)

	f.StringP("format", "f", v.GetString(formatKey), "output format: "+strings.Join(output.Formats, " | "))
	bindFlagToConfig(v, f.Lookup("format"), formatKey)

	f.BoolVar(noHeader, noHeaderFlagName, false, "suppress the TSV header line")

	f.StringP("output-dir", "o", v.GetString(outputDirKey), "write TSV and FASTA files here instead of stdout")
	bindFlagToConfig(v, f.Lookup("output-dir"), outputDirKey)

	f.Bool("summary", v.GetBool(summaryKey), "print a per-scaffold summary to stderr")
	bindFlagToConfig(v, f.Lookup("summary"), summaryKey)

	f.Bool("progress", v.GetBool(progressKey), "show progress bars on stderr")
	bindFlagToConfig(v, f.Lookup("progress"), progressKey)

	f.String("metrics-file", v.GetString(metricsFileKey), "write Prometheus textfile metrics here")
	bindFlagToConfig(v, f.Lookup("metrics-file"), metricsFileKey)

	f.Int("no-match-exit-code", v.GetInt(noMatchExitCodeKey), "exit code when no hits survive")
	bindFlagToConfig(v, f.Lookup("no-match-exit-code"), noMatchExitCodeKey)

	f.BoolP("quiet", "q", v.GetBool(quietKey), "suppress warnings")
	bindFlagToConfig(v, f.Lookup("quiet"), quietKey)
}
