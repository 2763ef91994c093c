package merge

import (
	"fmt"
	"io"

	"github.com/agentstation/gtfsmerge/internal/cmd/alerts"
	"github.com/agentstation/gtfsmerge/internal/cmd/output"
	"github.com/agentstation/gtfsmerge/pkg/merge"
)

// printResult writes the merge report. Table output gets a per-table
// table and a summary line; JSON and YAML get the structured report.
func printResult(stdout, stderr io.Writer, format output.Format, result *merge.Result) error {
	if !result.Merged() {
		warning := alerts.NewWarning("Nothing to merge").WithError(result.Reason)
		if err := alerts.NewFormatWriter(stderr, output.FormatTable).WriteAlert(warning); err != nil {
			return err
		}
	}

	if len(result.Skipped) > 0 {
		warning := alerts.NewWarning(fmt.Sprintf("Skipped %d table(s) without a header", len(result.Skipped)))
		for _, s := range result.Skipped {
			warning.WithDetails(s.Name)
		}
		if err := alerts.NewFormatWriter(stderr, output.FormatTable).WriteAlert(warning); err != nil {
			return err
		}
	}

	if format != output.FormatTable {
		return output.NewFormatter(format).Format(stdout, output.NewReport(result))
	}
	if !result.Merged() {
		return nil
	}

	if len(result.Tables) > 0 || len(result.Skipped) > 0 {
		if err := output.NewFormatter(format).Format(stdout, output.ResultData(result)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(stdout, "%s into %s\n", result.Summary(), result.OutputDir)
	return err
}
