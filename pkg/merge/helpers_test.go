package merge

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gtfsmerge/pkg/logging"
)

// newFs returns an in-memory filesystem holding files.
func newFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return fs
}

// readFile returns the content of path as a string.
func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

// testContext carries a logger that records into memory instead of stderr.
func testContext(t *testing.T) context.Context {
	t.Helper()
	return logging.NewTestLogger(t).Context()
}
