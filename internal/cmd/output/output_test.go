package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gtfsmerge/pkg/catalog"
	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
	"github.com/agentstation/gtfsmerge/pkg/merge"
)

func sampleResult() *merge.Result {
	return &merge.Result{
		Feeds:      []string{"/in/a", "/in/b"},
		OutputDir:  "/out",
		HeaderMode: merge.HeaderLong,
		Tables: []merge.TableResult{{
			Name:    "stops.txt",
			Path:    "/out/stops.txt",
			Feeds:   2,
			Columns: 3,
			Stats:   merge.Stats{Files: 2, RowsRead: 4, RowsWritten: 3, Replaced: 1},
		}},
		Skipped: []merge.SkippedTable{{Name: "routes.txt", Reason: "no header"}},
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"table", "JSON", " yaml ", ""} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "format")
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Rows Written", Title("rows_written"))
	assert.Equal(t, "Table", Title("table"))
}

func TestResultData(t *testing.T) {
	data := ResultData(sampleResult())

	assert.Equal(t, []string{"Table", "Status", "Feeds", "Columns", "Rows Read", "Rows Written", "Replaced", "Dropped"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"stops.txt", "merged", "2", "3", "4", "3", "1", "0"}, data.Rows[0])
	assert.Equal(t, "routes.txt", data.Rows[1][0])
	assert.Equal(t, "skipped", data.Rows[1][1])
}

func TestCatalogData(t *testing.T) {
	data := CatalogData(catalog.GTFS())

	require.Len(t, data.Rows, catalog.GTFS().Len())
	assert.Equal(t, []string{"agency.txt", "agency_id", "single"}, data.Rows[0])
	assert.Equal(t, []string{"stop_times.txt", "trip_id, stop_sequence", "composite"}, data.Rows[3])
	assert.Equal(t, []string{"feed_info.txt", "-", "none"}, data.Rows[8])
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatTable).Format(&buf, ResultData(sampleResult()))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "stops.txt")
	assert.Contains(t, out, "routes.txt")
	assert.Contains(t, out, "skipped")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a":1}`, buf.String())
}

func TestReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, NewReport(sampleResult())))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, true, got["merged"])
	assert.Equal(t, "/out", got["output_dir"])
	assert.Equal(t, "long", got["header_mode"])
	assert.NotContains(t, got, "reason")
	assert.Len(t, got["tables"], 1)
}

func TestReportNothingToMerge(t *testing.T) {
	r := NewReport(&merge.Result{Reason: pkgerrors.ErrNoFeedsFound})
	assert.False(t, r.Merged)
	assert.Equal(t, "no feeds found", r.Reason)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, catalog.GTFS().Tables()))

	out := buf.String()
	assert.Contains(t, out, "name: agency.txt")
	assert.Contains(t, out, "- agency_id")
}
