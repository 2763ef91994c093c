package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gtfsmerge/cmd/gtfsmerge/cmd/merge"
	"github.com/agentstation/gtfsmerge/cmd/gtfsmerge/cmd/tables"
	"github.com/agentstation/gtfsmerge/cmd/gtfsmerge/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(merge.NewCommand(a))
	rootCmd.AddCommand(tables.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
