// Package logger wires log/slog for the service: tint on terminals, JSON
// otherwise, and call-site source only on the levels that need it.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/mif-gmao/gmao/internal/shared/config"
)

var (
	Logger      *slog.Logger
	atomicLevel *slog.LevelVar
)

// ParseLevel maps a configured level name to a slog level. Unknown names fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init builds the process-wide logger. debugMode adds source locations to every level.
func Init(cfg config.LoggerConfig, debugMode bool) error {
	writer, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	Logger = slog.New(newHandler(writer, cfg.Format, ParseLevel(cfg.Level), debugMode))
	slog.SetDefault(Logger)
	return nil
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

func newHandler(w io.Writer, format string, level slog.Level, debugMode bool) slog.Handler {
	atomicLevel = new(slog.LevelVar)
	atomicLevel.Set(level)

	sourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if debugMode {
		sourceLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	}

	if format == "json" {
		base := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: atomicLevel})
		return newSourceHandler(base, sourceLevels...)
	}

	base := tint.NewHandler(w, &tint.Options{
		Level:      atomicLevel,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
	return newSourceHandler(base, sourceLevels...)
}

// SetLevel changes the level of the process-wide logger at runtime.
func SetLevel(level string) {
	if atomicLevel != nil {
		atomicLevel.Set(ParseLevel(level))
	}
}

// Get returns the process-wide slog logger, falling back to slog's default before Init.
func Get() *slog.Logger {
	if Logger == nil {
		return slog.Default()
	}
	return Logger
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
