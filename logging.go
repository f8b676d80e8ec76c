package lookup

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LookupEvent describes one completed lookup for logging.
type LookupEvent struct {
	Target   string
	Path     Path
	Matched  int
	Halted   bool
	Fallback bool
	Duration time.Duration
}

// LookupLogger records lookup events.
type LookupLogger interface {
	LogLookup(LookupEvent)
}

// LookupLoggerFunc adapts a function to LookupLogger.
type LookupLoggerFunc func(LookupEvent)

// LogLookup implements LookupLogger.
func (f LookupLoggerFunc) LogLookup(event LookupEvent) {
	if f != nil {
		f(event)
	}
}

type noopLookupLogger struct{}

func (noopLookupLogger) LogLookup(LookupEvent) {}

// ZerologLookupLogger emits lookup events on logger at debug level.
func ZerologLookupLogger(logger zerolog.Logger) LookupLogger {
	return LookupLoggerFunc(func(event LookupEvent) {
		logger.Debug().
			Str("target", event.Target).
			Str("path", event.Path.String()).
			Int("matched", event.Matched).
			Bool("halted", event.Halted).
			Bool("fallback", event.Fallback).
			Dur("duration", event.Duration).
			Msg("lookup")
	})
}

func defaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
