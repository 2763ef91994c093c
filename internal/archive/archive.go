// Package archive expands feed archives into ephemeral directories that
// expose the same one-file-per-table layout as a feed folder.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/agentstation/gtfsmerge/internal/feeds"
	"github.com/agentstation/gtfsmerge/pkg/constants"
	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
	"github.com/agentstation/gtfsmerge/pkg/logging"
)

// Expander turns one archive into a directory of table files. The caller
// owns the returned directory and removes it when done.
type Expander interface {
	Expand(ctx context.Context, fs afero.Fs, archivePath string) (string, error)
}

// Zip expands .zip archives.
type Zip struct {
	// TempRoot is the parent of the created directories. Empty means the
	// system temporary directory.
	TempRoot string
}

// NewZip returns a zip Expander creating directories under tempRoot.
func NewZip(tempRoot string) *Zip {
	return &Zip{TempRoot: tempRoot}
}

// Expand extracts archivePath into a new directory named after the
// archive. Entries that would land outside that directory are rejected.
// On error the partially filled directory is removed.
func (z *Zip) Expand(ctx context.Context, fs afero.Fs, archivePath string) (dir string, err error) {
	stem := strings.TrimSuffix(filepath.Base(archivePath), filepath.Ext(archivePath))
	dir, err = afero.TempDir(fs, z.TempRoot, constants.TempDirPrefix+stem+"-")
	if err != nil {
		return "", pkgerrors.WrapIO("mkdir", z.TempRoot, err)
	}
	defer func() {
		if err != nil {
			_ = fs.RemoveAll(dir)
			dir = ""
		}
	}()

	f, err := fs.Open(archivePath)
	if err != nil {
		return "", pkgerrors.WrapIO("open", archivePath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", pkgerrors.WrapIO("stat", archivePath, err)
	}

	r, err := zip.NewReader(f, info.Size())
	if err != nil {
		return "", pkgerrors.WrapParse("zip", archivePath, err)
	}

	for _, entry := range r.File {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", pkgerrors.ErrCanceled, err)
		}
		if err := extract(fs, dir, entry); err != nil {
			return "", pkgerrors.WrapResource("expand", "archive", archivePath, err)
		}
	}

	logging.FromContext(ctx).Debug().
		Str("archive", archivePath).
		Str("dir", dir).
		Int("entries", len(r.File)).
		Msg("Expanded archive")
	return dir, nil
}

// extract writes one entry below dir.
func extract(fs afero.Fs, dir string, entry *zip.File) error {
	target, err := entryPath(dir, entry.Name)
	if err != nil {
		return err
	}

	if entry.FileInfo().IsDir() {
		return pkgerrors.WrapIO("mkdir", target, fs.MkdirAll(target, constants.DirPermissions))
	}
	if err := fs.MkdirAll(filepath.Dir(target), constants.DirPermissions); err != nil {
		return pkgerrors.WrapIO("mkdir", filepath.Dir(target), err)
	}

	src, err := entry.Open()
	if err != nil {
		return pkgerrors.WrapParse("zip", entry.Name, err)
	}
	defer src.Close()

	dst, err := fs.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return pkgerrors.WrapIO("create", target, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return pkgerrors.WrapIO("write", target, err)
	}
	return pkgerrors.WrapIO("close", target, dst.Close())
}

// entryPath resolves an entry name below dir, refusing absolute names and
// names that climb out of dir.
func entryPath(dir, name string) (string, error) {
	if name == "" || filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", pkgerrors.NewValidationError("entry", name, "illegal path in archive")
	}
	target := filepath.Join(dir, filepath.FromSlash(name))
	if !feeds.Within(dir, target) {
		return "", pkgerrors.NewValidationError("entry", name, "illegal path in archive")
	}
	return target, nil
}
