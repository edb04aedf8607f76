package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// OpenLog builds the application logger from cfg. The terminal belongs to
// the TUI, so logs only ever go to a file. An empty file or "-" disables
// logging. The returned closer releases the file and is never nil.
func OpenLog(cfg LoggingConfig) (*slog.Logger, io.Closer, error) {
	if cfg.File == "" || cfg.File == "-" {
		return NullLogger(), nopCloser{}, nil
	}

	path, err := ExpandPath(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	f, err := openAppend(path)
	if err != nil {
		return nil, nil, err
	}
	return NewLogger(f, cfg.Level), f, nil
}

// ExpandPath resolves a leading ~ and $VAR references in a user supplied path
func ExpandPath(p string) (string, error) {
	p = os.ExpandEnv(p)
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, `~\`) {
		return filepath.Clean(p), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", p, err)
	}
	return filepath.Join(home, p[1:]), nil
}

// openAppend opens path for appending, creating missing parent directories
func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// NewLogger creates a JSON logger writing to w. Debug output records the call site.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl := parseLogLevel(level)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	}))
}

// parseLogLevel accepts slog's level names in any case, plus "warning".
// Anything else logs at INFO.
func parseLogLevel(level string) slog.Level {
	if strings.EqualFold(level, "warning") {
		level = "warn"
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// NullLogger returns a logger that discards all output
func NullLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
