// Package merge provides the merge command implementation.
package merge

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/gtfsmerge"
	"github.com/agentstation/gtfsmerge/internal/cmd/application"
	"github.com/agentstation/gtfsmerge/internal/cmd/output"
	"github.com/agentstation/gtfsmerge/pkg/errors"
	"github.com/agentstation/gtfsmerge/pkg/logging"
)

// NewCommand creates the merge command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "merge <input-folder> <output-folder>",
		GroupID: "core",
		Short:   "Merge the feeds in a folder into one feed",
		Args:    cobra.ExactArgs(2),
		Long: `Merge reads every feed found in the input folder and writes one merged
file per recognized table into the output folder.

Feeds are the immediate subfolders of the input folder, or with --archives
the .zip files inside it, taken in name order. For every table the rows of
all feeds are aligned to one reference header chosen by --header and
deduplicated on the table's identifier columns: a later feed replaces an
earlier row with the same identifier, keeping the earlier row's position.

The output folder must not be the input folder or lie inside it.`,
		Example: `  gtfsmerge merge feeds merged                    # Merge feed folders
  gtfsmerge merge downloads merged --archives     # Merge zip archives
  gtfsmerge merge feeds merged --header long      # Keep the widest header
  gtfsmerge merge feeds merged -o json            # JSON report`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.resolve(cmd, app.MergeDefaults(), app.Logger())
			return Execute(cmd.Context(), app, flags, args[0], args[1], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags = addMergeFlags(cmd)

	return cmd
}

// Execute runs a merge with the given flags and prints the report to
// stdout. When there is nothing to merge a warning goes to stderr and no
// error is returned.
func Execute(ctx context.Context, app application.Application, flags *Flags, input, outputDir string, stdout, stderr io.Writer) error {
	logger := app.Logger()
	ctx = logging.WithLogger(ctx, logger)

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}
	format = output.DetectFormat(string(format))

	var opts []gtfsmerge.Option
	if flags.TempDir != "" {
		opts = append(opts, gtfsmerge.WithTempDir(flags.TempDir))
	}
	merger, err := app.Merger(opts...)
	if err != nil {
		return err
	}

	run := merger.MergeFolders
	if flags.Archives {
		run = merger.MergeArchives
	}

	logger.Debug().
		Str("input", input).
		Str("output", outputDir).
		Bool("archives", flags.Archives).
		Str("header", flags.Header).
		Msg("Starting merge")

	result, err := run(ctx, input, outputDir, flags.mergeOptions()...)
	if errors.IsCanceled(err) {
		logger.Warn().Str("output", outputDir).Msg("Merge interrupted, tables already written are kept")
	}
	if err != nil {
		return err
	}

	return printResult(stdout, stderr, format, result)
}
