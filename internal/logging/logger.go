package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"albumdupes/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Output is "stderr", "stdout", or a file path. Empty means stderr.
	Output string
	RunID  string
	// Writer, when set, takes precedence over Output and is never closed.
	Writer io.Writer
}

// New constructs a slog logger using the provided options. The returned
// close function releases the log file opened for Output; it is a no-op for
// the standard streams and for caller-supplied writers.
func New(opts Options) (*slog.Logger, func() error, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)
	addSource := level <= slog.LevelDebug

	var handler func(io.Writer) slog.Handler
	switch format := strings.ToLower(strings.TrimSpace(opts.Format)); format {
	case "", "console":
		handler = func(w io.Writer) slog.Handler { return newPrettyHandler(w, levelVar, addSource) }
	case "json":
		handler = func(w io.Writer) slog.Handler {
			return slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level:       levelVar,
				AddSource:   addSource,
				ReplaceAttr: renameJSONKeys,
			})
		}
	default:
		return nil, nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	writer, closeFn := opts.Writer, noClose
	if writer == nil {
		var err error
		writer, closeFn, err = openWriter(opts.Output)
		if err != nil {
			return nil, nil, err
		}
	}

	h := handler(writer)
	if id := strings.TrimSpace(opts.RunID); id != "" {
		h = newRunIDHandler(h, id)
	}
	return slog.New(h), closeFn, nil
}

// NewFromConfig creates a logger from the [logging] section of cfg.
func NewFromConfig(cfg *config.Config, runID string) (*slog.Logger, func() error, error) {
	if cfg == nil {
		return New(Options{Level: "warn", Format: "console", RunID: runID})
	}
	return New(Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
		RunID:  runID,
	})
}

// renameJSONKeys shortens the built-in keys to ts/level/msg, renders the
// timestamp in UTC and reduces the source to file:line.
func renameJSONKeys(_ []string, attr slog.Attr) slog.Attr {
	switch attr.Key {
	case slog.TimeKey:
		if attr.Value.Kind() == slog.KindTime {
			return slog.String("ts", attr.Value.Time().UTC().Format(time.RFC3339))
		}
		attr.Key = "ts"
	case slog.LevelKey:
		return slog.String("level", strings.ToLower(attr.Value.String()))
	case slog.MessageKey:
		attr.Key = "msg"
	case slog.SourceKey:
		if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
			return slog.String(slog.SourceKey, filepath.Base(src.File)+":"+strconv.Itoa(src.Line))
		}
	}
	return attr
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func noClose() error { return nil }

func openWriter(output string) (io.Writer, func() error, error) {
	target := strings.TrimSpace(output)
	switch target {
	case "", "stderr":
		return os.Stderr, noClose, nil
	case "stdout":
		return os.Stdout, noClose, nil
	}
	if dir := filepath.Dir(target); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("ensure log directory: %w", err)
		}
	}
	file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", target, err)
	}
	return file, file.Close, nil
}
