// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"ervin/internal/cli"
)

// Warnf prints a user-facing warning unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// ParseLevel accepts debug/info/warn/error or a numeric slog level.
func ParseLevel(value string, def slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	switch level {
	case "":
		return def
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}
	return def
}

// ConfigureLogger installs a text slog logger writing to the rotating file
// named by log.filename. The returned closer releases the file.
func ConfigureLogger(v *viper.Viper) io.Closer {
	path := strings.TrimSpace(v.GetString(cli.LogFilenameKey))
	if path == "" {
		path = cli.DefaultLogFilename
	}

	level := ParseLevel(v.GetString(cli.LogLevelKey), slog.LevelInfo)
	if v.GetBool(cli.LogVerboseKey) {
		level = slog.LevelDebug
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    v.GetInt(cli.LogMaxSizeKey),
		MaxBackups: v.GetInt(cli.LogMaxBackupsKey),
		MaxAge:     v.GetInt(cli.LogMaxAgeKey),
		Compress:   v.GetBool(cli.LogCompressKey),
	}
	handler := slog.NewTextHandler(sink, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})
	slog.SetDefault(slog.New(handler))
	return sink
}
