// Package logging provides structured logging for gtfsmerge using zerolog.
// Terminals get human-readable console output and redirected streams get
// JSON. A logger travels through a context.Context into the merge engine,
// where tables and feeds are attached as fields.
//
// Example usage:
//
//	ctx := logging.WithLogger(context.Background(), logging.Default())
//	ctx = logging.WithTable(ctx, "stops.txt")
//	logging.FromContext(ctx).Debug().Int("files", 3).Msg("Selected header")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is used whenever a context carries no logger.
var defaultLogger = NewLoggerFromConfig(DefaultConfig())

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the default logger and zerolog's global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
