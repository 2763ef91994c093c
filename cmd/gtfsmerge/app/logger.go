package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/gtfsmerge/pkg/logging"
)

// levelWarnings receives notices about conflicting or invalid level settings.
var levelWarnings io.Writer = os.Stderr

// NewLogger builds the CLI logger from config. See resolveLogLevel for how
// the level is chosen.
func NewLogger(config *Config) zerolog.Logger {
	level := resolveLogLevel(config)
	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	})
}

// levelSource is one place a log level can be set.
type levelSource struct {
	name  string
	value string
}

// levelSources lists the level settings in config, strongest first:
// --log-level, then the -v/-q shortcuts, then log_level from the config
// file (which viper fills from GTFSMERGE_LOG_LEVEL) or LOG_LEVEL.
func levelSources(config *Config) []levelSource {
	var shortcut string
	switch {
	case config.Quiet:
		shortcut = "warn"
	case config.Verbose:
		shortcut = "debug"
	}
	return []levelSource{
		{"--log-level", config.LogLevel},
		{"-v/-q", shortcut},
		{"log_level", config.ConfigLogLevel},
	}
}

// resolveLogLevel returns the first level that is set. An invalid value
// yields info rather than falling through to a weaker source.
func resolveLogLevel(config *Config) string {
	if config.Verbose && config.Quiet && config.LogLevel == "" {
		fmt.Fprintln(levelWarnings, "Warning: both --verbose and --quiet specified, using --quiet")
	}

	for _, src := range levelSources(config) {
		if src.value == "" {
			continue
		}
		level, ok := normalizeLogLevel(src.value)
		if !ok {
			fmt.Fprintf(levelWarnings, "Warning: invalid %s %q, using \"info\"\n", src.name, src.value)
			return "info"
		}
		return level
	}
	return "info"
}

func normalizeLogLevel(s string) (string, bool) {
	switch level := strings.ToLower(strings.TrimSpace(s)); level {
	case "trace", "debug", "info", "warn", "error":
		return level, true
	case "warning":
		return "warn", true
	}
	return "", false
}
