package merge

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/agentstation/gtfsmerge/internal/tabular"
	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
	"github.com/agentstation/gtfsmerge/pkg/logging"
)

// Table is the merged content of one table name across feeds.
type Table struct {
	Name   string     `json:"name" yaml:"name"`
	Header Header     `json:"header" yaml:"header"`
	Rows   [][]string `json:"-" yaml:"-"`
	Stats  Stats      `json:"stats" yaml:"stats"`
}

// Stats counts what happened while merging one table.
type Stats struct {
	Files        int `json:"files" yaml:"files"`                 // files merged
	FilesSkipped int `json:"files_skipped" yaml:"files_skipped"` // files without a header row
	RowsRead     int `json:"rows_read" yaml:"rows_read"`         // data records read
	RowsWritten  int `json:"rows_written" yaml:"rows_written"`   // rows in the merged table
	Replaced     int `json:"replaced" yaml:"replaced"`           // rows overwritten by a later duplicate key
	Dropped      int `json:"dropped" yaml:"dropped"`             // rows with an empty single-column key
	Synthetic    int `json:"synthetic" yaml:"synthetic"`         // rows given a generated key
}

// MergeTable merges every file in paths into one table. All paths are
// expected to name the same table in different feeds; the table name is
// taken from the first path.
//
// The reference header is picked by mode. Each file is then read from the
// start, its own header used to align its rows, and rows are deduplicated
// on idFields with the last occurrence winning while keeping the position
// where the key was first seen.
func MergeTable(ctx context.Context, fs afero.Fs, paths []string, idFields []string, mode HeaderMode) (*Table, error) {
	name := ""
	if len(paths) > 0 {
		name = filepath.Base(paths[0])
	}
	logger := logging.FromContext(ctx).With().Str("table", name).Logger()

	reference, err := SelectHeader(fs, paths, mode)
	if err != nil {
		var nh *pkgerrors.NoHeaderError
		if errors.As(err, &nh) {
			nh.Table = name
		}
		return nil, err
	}
	logger.Debug().
		Str("mode", ParseHeaderMode(string(mode)).String()).
		Int("columns", len(reference)).
		Strs("header", reference).
		Msg("Selected reference header")

	t := &Table{Name: name, Header: reference}
	keys := NewKeyBuilder(reference, idFields)
	rows := newRowSet()

	for _, path := range paths {
		before := t.Stats
		if err := mergeFile(fs, path, reference, keys, rows, &t.Stats); err != nil {
			return nil, err
		}
		fctx := logging.WithFeed(logging.WithLogger(ctx, &logger), filepath.Dir(path))
		logging.FromContext(fctx).Trace().
			Int("rows_read", t.Stats.RowsRead-before.RowsRead).
			Int("replaced", t.Stats.Replaced-before.Replaced).
			Bool("headerless", t.Stats.FilesSkipped > before.FilesSkipped).
			Msg("Read table file")
	}

	t.Rows = rows.values()
	t.Stats.RowsWritten = rows.len()
	return t, nil
}

// mergeFile streams one table file into rows.
func mergeFile(fs afero.Fs, path string, reference Header, keys *KeyBuilder, rows *rowSet, stats *Stats) (err error) {
	r, err := tabular.Open(fs, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := r.Close(); err == nil {
			err = cerr
		}
	}()

	source, err := r.Next()
	if err == io.EOF || (err == nil && len(source) == 0) {
		stats.FilesSkipped++
		return nil
	}
	if err != nil {
		return err
	}
	stats.Files++

	aligner := NewAligner(source, reference)
	for {
		record, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(record) == 0 {
			continue
		}
		stats.RowsRead++

		aligned := aligner.Align(record)
		key, keep := keys.Key(aligned)
		if !keep {
			stats.Dropped++
			continue
		}
		if keys.Synthetic() {
			stats.Synthetic++
		}
		if rows.put(key, aligned) {
			stats.Replaced++
		}
	}
}
