// internal/cli/config.go
package cli

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"ervin/internal/hit"
	"ervin/internal/output"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "ervin"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "ERVIN"

	alignThresholdKey = "consolidate.align_len_threshold"
	neighbourGapKey   = "consolidate.neighbour_gap"
	codonRatioKey     = "consolidate.codon_ratio"
	gapFillKey        = "consolidate.gap_fill"
	threadsKey        = "consolidate.threads"
	settleKey         = "consolidate.settle"
	keepUnrelatedKey  = "consolidate.keep_unrelated"

	formatKey    = "output.format"
	headerKey    = "output.header"
	outputDirKey = "output.dir"
	summaryKey   = "output.summary"

	noMatchExitCodeKey = "run.no_match_exit_code"
	quietKey           = "run.quiet"
	progressKey        = "run.progress"
	metricsFileKey     = "run.metrics_file"

	LogFilenameKey   = "log.filename"
	LogLevelKey      = "log.level"
	LogVerboseKey    = "log.verbose"
	LogMaxSizeKey    = "log.max_size"
	LogMaxBackupsKey = "log.max_backups"
	LogMaxAgeKey     = "log.max_age"
	LogCompressKey   = "log.compress"

	defaultNoMatchExitCode = 1

	DefaultLogFilename   = ".ervin.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
)

// NewConfig returns a viper instance with every default set and environment
// lookup enabled (ERVIN_CONSOLIDATE_NEIGHBOUR_GAP and so on). Call ReadConfig
// once flags are parsed.
func NewConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configFolderPath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(configVersionKey, currentConfigVersion)

	v.SetDefault(alignThresholdKey, 0)
	v.SetDefault(neighbourGapKey, hit.DefaultNeighbourGap)
	v.SetDefault(codonRatioKey, hit.DefaultCodonRatio)
	v.SetDefault(gapFillKey, string(rune(hit.DefaultGapFill)))
	v.SetDefault(threadsKey, 0)
	v.SetDefault(settleKey, false)
	v.SetDefault(keepUnrelatedKey, false)

	v.SetDefault(formatKey, output.FormatTSV)
	v.SetDefault(headerKey, true)
	v.SetDefault(outputDirKey, "")
	v.SetDefault(summaryKey, false)

	v.SetDefault(noMatchExitCodeKey, defaultNoMatchExitCode)
	v.SetDefault(quietKey, false)
	v.SetDefault(progressKey, false)
	v.SetDefault(metricsFileKey, "")

	v.SetDefault(LogFilenameKey, DefaultLogFilename)
	v.SetDefault(LogLevelKey, defaultLogLevel)
	v.SetDefault(LogVerboseKey, false)
	v.SetDefault(LogMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(LogMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(LogMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(LogCompressKey, true)
	return v
}

// ReadConfig loads path, or ./ervin.yaml when path is empty. A missing
// default file is not an error; a missing explicit file is.
func ReadConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		return v.ReadInConfig()
	}
	v.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
