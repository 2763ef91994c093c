// Package app provides the application context and dependency management
// for the gtfsmerge CLI. It centralizes configuration, logging, and
// construction of the merger that commands run against.
package app

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/gtfsmerge"
	"github.com/agentstation/gtfsmerge/internal/cmd/application"
	"github.com/agentstation/gtfsmerge/pkg/errors"
)

// App represents the gtfsmerge application with all its dependencies.
type App struct {
	build  application.BuildInfo
	config *Config
	logger *zerolog.Logger

	// applied to every merger before per-command options
	mergerOpts []gtfsmerge.Option
}

// New loads configuration from .env files, the environment and the
// optional config file, builds the logger, and applies opts.
func New(build application.BuildInfo, opts ...Option) (*App, error) {
	app := &App{build: build}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Build returns the version information the binary was stamped with.
func (a *App) Build() application.BuildInfo {
	return a.build
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// MergeDefaults returns merge settings from the config file and environment.
func (a *App) MergeDefaults() application.MergeDefaults {
	return application.MergeDefaults{
		Header:         a.config.Header,
		Archives:       a.config.Archives,
		SkipHeaderless: a.config.SkipHeaderless,
	}
}

// Merger creates a merger with the app's options followed by opts.
func (a *App) Merger(opts ...gtfsmerge.Option) (gtfsmerge.Merger, error) {
	all := append(append([]gtfsmerge.Option(nil), a.mergerOpts...), opts...)
	m, err := gtfsmerge.New(all...)
	if err != nil {
		return nil, errors.WrapResource("create", "merger", "", err)
	}
	return m, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithMergerOptions adds options applied to every merger (useful for testing).
func WithMergerOptions(opts ...gtfsmerge.Option) Option {
	return func(a *App) error {
		a.mergerOpts = append(a.mergerOpts, opts...)
		return nil
	}
}

var _ application.Application = (*App)(nil)
