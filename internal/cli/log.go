// Package cli implements the matchain command-line interface.
//
// # Commands
//
//   - solve: print the optimal parenthesization of one chain
//   - battery: run the reference chains plus any configured cases
//   - tree: emit the split tree as DOT, or render it to SVG
//   - serve: expose the solver over HTTP
//
// # Logging
//
// Log lines go to stderr; results go to stdout. --verbose (-v) lowers the
// level to debug. The logger and the loaded config are carried on the
// command's context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/matchain/internal/config"
)

// newLogger returns a logger for w that stamps each line with the wall
// clock time and drops anything below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
}

// stopwatch times a single step of a command.
type stopwatch time.Time

func startStopwatch() stopwatch { return stopwatch(time.Now()) }

// lap logs msg at info level with the time since the stopwatch started
// under the "took" key.
func (s stopwatch) lap(l *log.Logger, msg string, keyvals ...any) {
	took := time.Since(time.Time(s)).Round(time.Microsecond)
	l.Info(msg, append(keyvals, "took", took)...)
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the attached config, or config.Default().
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}
