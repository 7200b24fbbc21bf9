package log

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// GooseLogger routes migration output into the application log. Progress
// lines are debug-only; a goose fatal still exits.
type GooseLogger struct {
	logger zerolog.Logger
}

func NewGooseLogger(logger zerolog.Logger) *GooseLogger {
	return &GooseLogger{
		logger: logger.With().Str("component", "migrations").Logger(),
	}
}

func NewGooseLoggerFromCtx(ctx context.Context) *GooseLogger {
	return NewGooseLogger(*FromCtx(ctx))
}

func (g *GooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Debug().Msgf(trimFormat(format), v...)
}

func (g *GooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Fatal().Msgf(trimFormat(format), v...)
}

// goose terminates most formats with a newline, which zerolog would keep
func trimFormat(format string) string {
	return strings.TrimRight(format, "\n")
}
