package tabular

import (
	"encoding/csv"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/agentstation/gtfsmerge/pkg/constants"
	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
)

// WriteTable writes header followed by rows to path, replacing any
// existing file. Data goes to a temporary file in the same directory that
// is renamed over path only once fully written.
func WriteTable(fs afero.Fs, path string, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return pkgerrors.WrapIO("create", path, err)
	}
	tmpPath := tmp.Name()

	fail := func(op string, err error) error {
		_ = tmp.Close()
		_ = fs.Remove(tmpPath)
		return pkgerrors.WrapIO(op, path, err)
	}

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		return fail("write", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpPath)
		return pkgerrors.WrapIO("close", path, err)
	}
	if err := fs.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = fs.Remove(tmpPath)
		return pkgerrors.WrapIO("chmod", path, err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return pkgerrors.WrapIO("rename", path, err)
	}
	return nil
}
