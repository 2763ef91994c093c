package tables

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gtfsmerge/internal/cmd/application"
	"github.com/agentstation/gtfsmerge/pkg/catalog"
)

func TestTablesCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand(&application.Mock{})
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	for _, name := range catalog.GTFS().Names() {
		assert.Contains(t, out.String(), name)
	}
	assert.Contains(t, out.String(), "composite")
}

func TestTablesCommandJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand(&application.Mock{OutputFormatFunc: func() string { return "json" }})
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())

	var tables []catalog.Table
	require.NoError(t, json.Unmarshal(out.Bytes(), &tables))
	require.Len(t, tables, catalog.GTFS().Len())
	assert.Equal(t, "agency.txt", tables[0].Name)
	assert.Equal(t, []string{"trip_id", "stop_sequence"}, tables[3].IDFields)
}

func TestTablesCommandInvalidFormat(t *testing.T) {
	cmd := NewCommand(&application.Mock{OutputFormatFunc: func() string { return "xml" }})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs(nil)

	assert.Error(t, cmd.Execute())
}
