package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Logger defines the flatdb logging contract. Arguments are slog-style
// alternating key/value pairs.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

// SlogLogger implements the flatdb logging contract over log/slog with a
// tinted handler.
type SlogLogger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// New creates a SlogLogger writing tinted output to stderr. Color is
// suppressed when stderr is not a terminal.
func New(level slog.Level) *SlogLogger {
	lv := &slog.LevelVar{}
	lv.Set(level)
	h := tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      lv,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
	return &SlogLogger{logger: slog.New(h), level: lv}
}

// NewWithWriter creates a SlogLogger writing uncolored output to w.
// Used by tests.
func NewWithWriter(w io.Writer, level slog.Level) *SlogLogger {
	lv := &slog.LevelVar{}
	lv.Set(level)
	h := tint.NewHandler(w, &tint.Options{
		Level:   lv,
		NoColor: true,
	})
	return &SlogLogger{logger: slog.New(h), level: lv}
}

// SetLevel adjusts the minimum level at runtime.
func (l *SlogLogger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// Default provides a global default logger instance.
var Default Logger = New(slog.LevelInfo)
