// Package application provides the application interface for gtfsmerge
// commands.
//
// Commands accept an Application rather than the concrete app type so they
// can be tested against a Mock:
//
//	mock := &application.Mock{
//	    MergerFunc: func(opts ...gtfsmerge.Option) (gtfsmerge.Merger, error) {
//	        return gtfsmerge.New(append(opts, gtfsmerge.WithFilesystem(fs))...)
//	    },
//	}
//	cmd := merge.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/gtfsmerge"
)

// MergeDefaults are merge settings taken from the configuration file or
// environment. Command-line flags override them.
type MergeDefaults struct {
	Header         string
	Archives       bool
	SkipHeaderless bool
}

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	BuiltBy string `json:"built_by" yaml:"built_by"`
}

// Application provides what commands need from the running application.
type Application interface {
	// Merger returns a merger configured with opts.
	Merger(opts ...gtfsmerge.Option) (gtfsmerge.Merger, error)

	// MergeDefaults returns configured defaults for the merge command.
	MergeDefaults() MergeDefaults

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Build returns version information stamped at release time.
	Build() BuildInfo
}
