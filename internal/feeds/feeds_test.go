package feeds

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
)

func newFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return fs
}

func TestValidateRoot(t *testing.T) {
	fs := newFs(t, map[string]string{"/in/a/stops.txt": "stop_id\n", "/file.txt": "x"})

	assert.NoError(t, ValidateRoot(fs, "/in"))

	for _, root := range []string{"", "  ", "/missing", "/file.txt"} {
		err := ValidateRoot(fs, root)
		assert.Error(t, err, root)
		assert.True(t, pkgerrors.IsConfigError(err), root)
	}
}

func TestCheckOutput(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		roots   []string
		wantErr bool
	}{
		{"sibling", "/data/out", []string{"/data/in"}, false},
		{"same directory", "/data/in", []string{"/data/in"}, true},
		{"nested", "/data/in/merged", []string{"/data/in"}, true},
		{"nested with trailing slash", "/data/in/merged/", []string{"/data/in"}, true},
		{"dot segments", "/data/in/../in/x", []string{"/data/in"}, true},
		{"shared prefix is not nesting", "/data/input-merged", []string{"/data/in"}, false},
		{"parent of root", "/data", []string{"/data/in"}, false},
		{"second root", "/b/out", []string{"/a", "/b"}, true},
		{"empty output", "", []string{"/data/in"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckOutput(tt.output, tt.roots...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, pkgerrors.IsConfigError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFolders(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/in/zeta/stops.txt":  "stop_id\n",
		"/in/alpha/stops.txt": "stop_id\n",
		"/in/mid/agency.txt":  "agency_id\n",
		"/in/readme.txt":      "not a feed",
	})

	dirs, err := Folders(fs, "/in")
	require.NoError(t, err)
	assert.Equal(t, []string{"/in/alpha", "/in/mid", "/in/zeta"}, dirs)

	_, err = Folders(fs, "/missing")
	assert.Error(t, err)
}

func TestArchives(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/in/b.ZIP":       "",
		"/in/a.zip":       "",
		"/in/c.Zip":       "",
		"/in/notes.txt":   "",
		"/in/zip":         "",
		"/in/d.zip/x.txt": "",
	})

	archives, err := Archives(fs, "/in")
	require.NoError(t, err)
	assert.Equal(t, []string{"/in/a.zip", "/in/b.ZIP", "/in/c.Zip"}, archives)
}

func TestTableFiles(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/in/a/stops.txt":   "stop_id\n",
		"/in/c/stops.txt":   "stop_id\n",
		"/in/b/agency.txt":  "agency_id\n",
		"/in/d/stops.txt/x": "",
	})

	dirs := []string{"/in/a", "/in/b", "/in/c", "/in/d"}
	assert.Equal(t, []string{"/in/a/stops.txt", "/in/c/stops.txt"}, TableFiles(fs, dirs, "stops.txt"))
	assert.Empty(t, TableFiles(fs, dirs, "shapes.txt"))
	assert.True(t, HasTable(fs, "/in/b", "agency.txt"))
	assert.False(t, HasTable(fs, "/in/d", "stops.txt"))
}
