package merge

import (
	"fmt"

	"github.com/agentstation/utc"
)

// Result describes a completed feed-set merge.
type Result struct {
	// Feeds are the feed directories that were merged, in input order.
	Feeds []string `json:"feeds" yaml:"feeds"`

	// OutputDir is where table files were written.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// HeaderMode is the header selection mode that was applied.
	HeaderMode HeaderMode `json:"header_mode" yaml:"header_mode"`

	// Tables holds one entry per table file written, in catalog order.
	Tables []TableResult `json:"tables" yaml:"tables"`

	// Skipped lists tables left out because none of their files had a header.
	Skipped []SkippedTable `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	// Reason is set when there was nothing to merge: ErrNoFeedsFound or
	// ErrNoArchivesFound.
	Reason error `json:"-" yaml:"-"`

	StartedAt  utc.Time `json:"started_at" yaml:"started_at"`
	FinishedAt utc.Time `json:"finished_at" yaml:"finished_at"`
}

// TableResult reports one written table.
type TableResult struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path" yaml:"path"`
	Feeds   int    `json:"feeds" yaml:"feeds"`
	Columns int    `json:"columns" yaml:"columns"`
	Stats   Stats  `json:"stats" yaml:"stats"`
}

// SkippedTable reports a table left out of the output.
type SkippedTable struct {
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
}

// Merged reports whether a merge ran. It is false only when there was
// nothing to merge.
func (r *Result) Merged() bool {
	return r != nil && r.Reason == nil
}

// RowsWritten returns the total number of rows across all written tables.
func (r *Result) RowsWritten() int {
	total := 0
	for _, t := range r.Tables {
		total += t.Stats.RowsWritten
	}
	return total
}

// Summary returns a one-line description of the result.
func (r *Result) Summary() string {
	if !r.Merged() {
		return fmt.Sprintf("Nothing to merge: %v", r.Reason)
	}
	summary := fmt.Sprintf("Merged %d feed(s) into %d table(s), %d row(s) written",
		len(r.Feeds), len(r.Tables), r.RowsWritten())
	if len(r.Skipped) > 0 {
		summary += fmt.Sprintf(", %d table(s) skipped", len(r.Skipped))
	}
	return summary
}
