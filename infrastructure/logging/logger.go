package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LevelEnv overrides the configured level, e.g. JERRY_LOG_LEVEL=debug.
const LevelEnv = "JERRY_LOG_LEVEL"

type Options struct {
	// Dir receives the daily log files. Empty disables file logging.
	Dir string
	// Console also writes human-readable output to Stdout.
	Console bool
	Stdout  io.Writer
	Level   zerolog.Level
}

// New builds the application logger. The returned closer flushes and closes
// the log file.
func New(app string, opts Options) (zerolog.Logger, io.Closer, error) {
	level := ResolveLevel(opts.Level, os.Getenv(LevelEnv))

	var writers []io.Writer
	var closer io.Closer = nopCloser{}
	if opts.Dir != "" {
		file, err := NewDailyFile(opts.Dir, "dbg")
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		writers = append(writers, file)
		closer = file
	}
	if opts.Console {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		writers = append(writers, zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("app", app).
		Logger()
	return logger, closer, nil
}

// ResolveLevel returns the level named by env, or fallback when env is empty
// or not a known level.
func ResolveLevel(fallback zerolog.Level, env string) zerolog.Level {
	env = strings.TrimSpace(env)
	if env == "" {
		return fallback
	}
	level, err := zerolog.ParseLevel(strings.ToLower(env))
	if err != nil {
		return fallback
	}
	return level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
