// Package tables provides the tables command, which lists the recognized
// tables and the identifier columns rows are deduplicated on.
package tables

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gtfsmerge/internal/cmd/application"
	"github.com/agentstation/gtfsmerge/internal/cmd/output"
	"github.com/agentstation/gtfsmerge/pkg/catalog"
)

// NewCommand creates the tables command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "tables",
		GroupID: "core",
		Short:   "List recognized tables and their identifier columns",
		Long: `Tables lists every table file merge recognizes, in the order output
files are written, with the identifier columns used to deduplicate rows.

Tables without identifier columns keep every row. Other files in a feed
are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			format = output.DetectFormat(string(format))

			c := catalog.GTFS()
			var data any = c.Tables()
			if format == output.FormatTable {
				data = output.CatalogData(c)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}
}
