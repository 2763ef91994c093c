package output

import (
	"strconv"
	"strings"

	"github.com/agentstation/gtfsmerge/pkg/catalog"
	"github.com/agentstation/gtfsmerge/pkg/merge"
)

// Report is the structured form of a merge result.
type Report struct {
	Merged       bool   `json:"merged" yaml:"merged"`
	Reason       string `json:"reason,omitempty" yaml:"reason,omitempty"`
	merge.Result `json:",inline" yaml:",inline"`
}

// NewReport wraps result for JSON or YAML output.
func NewReport(result *merge.Result) Report {
	r := Report{Merged: result.Merged(), Result: *result}
	if result.Reason != nil {
		r.Reason = result.Reason.Error()
	}
	return r
}

// ResultData lays out a merge result as one row per table. Skipped tables
// appear after written ones with a status of "skipped".
func ResultData(result *merge.Result) Data {
	headers := []string{"table", "status", "feeds", "columns", "rows_read", "rows_written", "replaced", "dropped"}
	data := Data{
		Headers:         make([]string, len(headers)),
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight},
	}
	for i, h := range headers {
		data.Headers[i] = Title(h)
	}

	for _, t := range result.Tables {
		data.Rows = append(data.Rows, []string{
			t.Name,
			"merged",
			strconv.Itoa(t.Feeds),
			strconv.Itoa(t.Columns),
			strconv.Itoa(t.Stats.RowsRead),
			strconv.Itoa(t.Stats.RowsWritten),
			strconv.Itoa(t.Stats.Replaced),
			strconv.Itoa(t.Stats.Dropped),
		})
	}
	for _, s := range result.Skipped {
		data.Rows = append(data.Rows, []string{s.Name, "skipped", "-", "-", "-", "-", "-", "-"})
	}
	return data
}

// CatalogData lays out the recognized tables and their identifier columns.
func CatalogData(c catalog.Catalog) Data {
	data := Data{Headers: []string{Title("table"), Title("id_fields"), Title("key")}}
	for _, t := range c.Tables() {
		key := "single"
		switch {
		case !t.HasNaturalKey():
			key = "none"
		case t.IsComposite():
			key = "composite"
		}
		fields := strings.Join(t.IDFields, ", ")
		if fields == "" {
			fields = "-"
		}
		data.Rows = append(data.Rows, []string{t.Name, fields, key})
	}
	return data
}
