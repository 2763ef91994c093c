// Package gtfsmerge merges GTFS feeds that share file and column naming
// conventions into one consolidated feed. Feeds are read either from the
// subdirectories of an input folder or from the zip archives inside it.
//
// Example:
//
//	m, err := gtfsmerge.New()
//	if err != nil {
//		return err
//	}
//	result, err := m.MergeFolders(ctx, "feeds", "merged", merge.WithHeaderMode(merge.HeaderLong))
//	if err != nil {
//		return err
//	}
//	fmt.Println(result.Summary())
package gtfsmerge

import (
	"context"
	"fmt"

	"github.com/agentstation/utc"

	"github.com/agentstation/gtfsmerge/internal/archive"
	"github.com/agentstation/gtfsmerge/internal/feeds"
	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
	"github.com/agentstation/gtfsmerge/pkg/logging"
	"github.com/agentstation/gtfsmerge/pkg/merge"
)

// Merger merges feed sets found under an input folder.
type Merger interface {
	// MergeFolders merges every immediate subdirectory of inputRoot.
	MergeFolders(ctx context.Context, inputRoot, outputRoot string, opts ...merge.Option) (*merge.Result, error)

	// MergeArchives merges every zip archive directly inside inputRoot.
	MergeArchives(ctx context.Context, inputRoot, outputRoot string, opts ...merge.Option) (*merge.Result, error)

	// OnTableMerged registers a callback for every table written
	OnTableMerged(TableMergedHook)

	// OnTableSkipped registers a callback for every headerless table skipped
	OnTableSkipped(TableSkippedHook)
}

// Expander expands one archive into a directory of table files.
type Expander = archive.Expander

// merger is the internal implementation of the Merger interface
type merger struct {
	config *config
	hooks  *hooks
}

// New creates a new Merger with the given options
func New(opts ...Option) (Merger, error) {
	m := &merger{
		config: defaultConfig(),
		hooks:  newHooks(),
	}

	if err := m.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	return m, nil
}

// MergeFolders validates the paths, lists the subdirectories of inputRoot
// in name order and merges them into outputRoot.
func (m *merger) MergeFolders(ctx context.Context, inputRoot, outputRoot string, opts ...merge.Option) (*merge.Result, error) {
	ctx = logging.WithOperation(ctx, "merge-folders")
	if err := m.checkPaths(inputRoot, outputRoot); err != nil {
		return nil, err
	}

	dirs, err := feeds.Folders(m.config.fs, inputRoot)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Str("input", inputRoot).Int("feeds", len(dirs)).Msg("Discovered feed folders")

	result, err := merge.MergeFeeds(ctx, m.config.fs, dirs, outputRoot, opts...)
	m.hooks.trigger(result)
	return result, err
}

// MergeArchives validates the paths, expands every archive in inputRoot
// into its own temporary directory and merges those into outputRoot. The
// temporary directories are removed before returning, including on error.
func (m *merger) MergeArchives(ctx context.Context, inputRoot, outputRoot string, opts ...merge.Option) (result *merge.Result, err error) {
	ctx = logging.WithOperation(ctx, "merge-archives")
	logger := logging.FromContext(ctx)
	if err := m.checkPaths(inputRoot, outputRoot); err != nil {
		return nil, err
	}

	archives, err := feeds.Archives(m.config.fs, inputRoot)
	if err != nil {
		return nil, err
	}
	if len(archives) == 0 {
		logger.Warn().Str("input", inputRoot).Msg("No archives to merge")
		now := utc.Now()
		return &merge.Result{
			OutputDir:  outputRoot,
			HeaderMode: merge.Defaults().Apply(opts...).HeaderMode,
			Reason:     pkgerrors.ErrNoArchivesFound,
			StartedAt:  now,
			FinishedAt: now,
		}, nil
	}

	var dirs []string
	defer func() {
		for _, dir := range dirs {
			if rerr := m.config.fs.RemoveAll(dir); rerr != nil {
				logger.Warn().Err(rerr).Str("dir", dir).Msg("Failed to remove expanded archive")
			}
		}
	}()

	for _, path := range archives {
		dir, err := m.config.expander.Expand(ctx, m.config.fs, path)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, dir)
	}

	result, err = merge.MergeFeeds(ctx, m.config.fs, dirs, outputRoot, opts...)
	if result != nil {
		result.Feeds = archives
	}
	m.hooks.trigger(result)
	return result, err
}

// OnTableMerged registers a callback for every table written
func (m *merger) OnTableMerged(fn TableMergedHook) {
	m.hooks.OnTableMerged(fn)
}

// OnTableSkipped registers a callback for every headerless table skipped
func (m *merger) OnTableSkipped(fn TableSkippedHook) {
	m.hooks.OnTableSkipped(fn)
}

// checkPaths rejects a missing input folder and an output folder inside
// the input folder before anything is created.
func (m *merger) checkPaths(inputRoot, outputRoot string) error {
	if err := feeds.ValidateRoot(m.config.fs, inputRoot); err != nil {
		return err
	}
	return feeds.CheckOutput(outputRoot, inputRoot)
}
