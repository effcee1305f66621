package telemetry

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = newLogger("info", "json", os.Stdout)
)

// Init reconfigures the process logger. Unknown levels fall back to info and
// any format other than "console" emits JSON lines.
func Init(level, format string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	l := newLogger(level, format, out)
	mu.Lock()
	logger = l
	mu.Unlock()
}

func newLogger(level, format string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if strings.EqualFold(strings.TrimSpace(format), "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug writes a debug-level log line with the given fields.
func Debug(msg string, fields map[string]any) {
	l := current()
	l.Debug().Fields(fields).Msg(msg)
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	l := current()
	l.Info().Fields(fields).Msg(msg)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	l := current()
	l.Warn().Fields(fields).Msg(msg)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	l := current()
	l.Error().Fields(fields).Msg(msg)
}
