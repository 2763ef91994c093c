// Package main provides the entry point for the gtfsmerge CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/gtfsmerge/cmd/gtfsmerge/app"
	appinfo "github.com/agentstation/gtfsmerge/internal/cmd/application"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(appinfo.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
		BuiltBy: builtBy,
	})
	if err != nil {
		app.ExitOnError(err)
	}

	// Interrupts stop the merge before the next table.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		cancel()
		app.ExitOnError(err)
	}
}
