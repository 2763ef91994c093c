// Package version provides the version command.
package version

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/gtfsmerge/internal/cmd/application"
	"github.com/agentstation/gtfsmerge/internal/cmd/output"
)

// Info is the build information printed by the version command.
type Info struct {
	application.BuildInfo `yaml:",inline"`
	GoVersion             string `json:"go_version" yaml:"go_version"`
	Platform              string `json:"platform" yaml:"platform"`
}

// NewCommand creates the version command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := Info{
				BuildInfo: app.Build(),
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			format = output.DetectFormat(string(format))

			var data any = info
			if format == output.FormatTable {
				data = info.tableData()
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}
}

func (i Info) tableData() output.Data {
	return output.Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{output.Title("version"), i.Version},
			{output.Title("commit"), i.Commit},
			{output.Title("date"), i.Date},
			{output.Title("built_by"), i.BuiltBy},
			{output.Title("go_version"), i.GoVersion},
			{output.Title("platform"), i.Platform},
		},
	}
}
