package merge

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/agentstation/utc"
	"github.com/spf13/afero"

	"github.com/agentstation/gtfsmerge/internal/feeds"
	"github.com/agentstation/gtfsmerge/internal/tabular"
	"github.com/agentstation/gtfsmerge/pkg/catalog"
	"github.com/agentstation/gtfsmerge/pkg/constants"
	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
	"github.com/agentstation/gtfsmerge/pkg/logging"
)

// MergeFeeds merges every recognized table found in feedDirs and writes
// one file per table into outputDir.
//
// Tables are processed in catalog order. A table is merged from the feeds
// that contain it, in the order of feedDirs; tables no feed contains are
// not written. With no feed directories the result carries
// ErrNoFeedsFound as its Reason and nothing is created.
//
// Output files already written stay on disk when a later table fails.
func MergeFeeds(ctx context.Context, fs afero.Fs, feedDirs []string, outputDir string, opts ...Option) (*Result, error) {
	o := Defaults().Apply(opts...)
	logger := logging.FromContext(ctx)

	result := &Result{
		Feeds:      append([]string(nil), feedDirs...),
		OutputDir:  outputDir,
		HeaderMode: o.HeaderMode,
		StartedAt:  utc.Now(),
	}

	if len(feedDirs) == 0 {
		result.Reason = pkgerrors.ErrNoFeedsFound
		result.FinishedAt = utc.Now()
		logger.Warn().Msg("No feeds to merge")
		return result, nil
	}

	if err := feeds.CheckOutput(outputDir, feedDirs...); err != nil {
		return nil, err
	}
	if err := fs.MkdirAll(outputDir, constants.DirPermissions); err != nil {
		return nil, pkgerrors.WrapIO("mkdir", outputDir, err)
	}

	logger.Info().
		Int("feeds", len(feedDirs)).
		Str("output", outputDir).
		Str("header_mode", o.HeaderMode.String()).
		Msg("Merging feeds")

	for _, table := range catalog.GTFS().Tables() {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("%w: %w", pkgerrors.ErrCanceled, err)
		}

		files := feeds.TableFiles(fs, feedDirs, table.Name)
		if len(files) == 0 {
			logger.Debug().Str("table", table.Name).Msg("Table not present in any feed")
			continue
		}

		tctx := logging.WithTable(ctx, table.Name)
		merged, err := MergeTable(tctx, fs, files, table.IDFields, o.HeaderMode)
		if err != nil {
			if o.SkipHeaderless && pkgerrors.IsNoHeader(err) {
				logger.Warn().Str("table", table.Name).Int("files", len(files)).Msg("Skipping table without header")
				result.Skipped = append(result.Skipped, SkippedTable{Name: table.Name, Reason: err.Error()})
				continue
			}
			return result, pkgerrors.NewMergeError(table.Name, feedsOf(files), err)
		}

		path := filepath.Join(outputDir, table.Name)
		if err := tabular.WriteTable(fs, path, merged.Header, merged.Rows); err != nil {
			return result, pkgerrors.NewMergeError(table.Name, feedsOf(files), err)
		}

		logger.Info().
			Str("table", table.Name).
			Int("files", merged.Stats.Files).
			Int("rows_read", merged.Stats.RowsRead).
			Int("rows_written", merged.Stats.RowsWritten).
			Int("replaced", merged.Stats.Replaced).
			Int("dropped", merged.Stats.Dropped).
			Msg("Merged table")

		result.Tables = append(result.Tables, TableResult{
			Name:    table.Name,
			Path:    path,
			Feeds:   len(files),
			Columns: len(merged.Header),
			Stats:   merged.Stats,
		})
	}

	result.FinishedAt = utc.Now()
	return result, nil
}

// feedsOf returns the feed directory of each table file.
func feedsOf(files []string) []string {
	dirs := make([]string, len(files))
	for i, f := range files {
		dirs[i] = filepath.Dir(f)
	}
	return dirs
}
