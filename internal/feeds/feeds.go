// Package feeds locates the feeds under an input root and enforces the
// path rules every merge must satisfy before anything is written.
package feeds

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/agentstation/gtfsmerge/pkg/constants"
	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
)

// ValidateRoot checks that root names an existing directory.
func ValidateRoot(fs afero.Fs, root string) error {
	if strings.TrimSpace(root) == "" {
		return pkgerrors.NewConfigError("input", "input folder is required", nil)
	}
	info, err := fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return pkgerrors.NewConfigError("input", "input folder "+root+" does not exist", err)
		}
		return pkgerrors.NewConfigError("input", "cannot access input folder "+root, err)
	}
	if !info.IsDir() {
		return pkgerrors.NewConfigError("input", root+" is not a folder", nil)
	}
	return nil
}

// CheckOutput rejects an output directory that is empty, equal to, or
// nested inside any of roots. Paths are compared after cleaning and
// resolving to absolute form, so "out" and "./out/" name the same place.
func CheckOutput(output string, roots ...string) error {
	if strings.TrimSpace(output) == "" {
		return pkgerrors.NewConfigError("output", "output folder is required", nil)
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return pkgerrors.NewConfigError("output", "cannot resolve output folder "+output, err)
	}
	for _, root := range roots {
		in, err := filepath.Abs(root)
		if err != nil {
			return pkgerrors.NewConfigError("input", "cannot resolve input folder "+root, err)
		}
		if Within(in, out) {
			return pkgerrors.NewConfigError("output", "output folder cannot be inside input folder", nil)
		}
	}
	return nil
}

// Within reports whether path is root itself or lies beneath it. Both
// arguments must be absolute.
func Within(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Folders returns the immediate subdirectories of root, sorted by name.
// Plain files at the top level are ignored.
func Folders(fs afero.Fs, root string) ([]string, error) {
	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, pkgerrors.WrapIO("read", root, err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(root, e.Name()))
		}
	}
	return dirs, nil
}

// Archives returns the regular files directly under root whose extension
// is .zip in any letter case, sorted by name.
func Archives(fs afero.Fs, root string) ([]string, error) {
	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, pkgerrors.WrapIO("read", root, err)
	}

	var archives []string
	for _, e := range entries {
		if e.Mode().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), constants.ArchiveExtension) {
			archives = append(archives, filepath.Join(root, e.Name()))
		}
	}
	return archives, nil
}

// HasTable reports whether dir contains a regular file named table.
func HasTable(fs afero.Fs, dir, table string) bool {
	info, err := fs.Stat(filepath.Join(dir, table))
	return err == nil && info.Mode().IsRegular()
}

// TableFiles returns the path of table in each dir that has it, preserving
// the order of dirs.
func TableFiles(fs afero.Fs, dirs []string, table string) []string {
	var files []string
	for _, dir := range dirs {
		if HasTable(fs, dir, table) {
			files = append(files, filepath.Join(dir, table))
		}
	}
	return files
}
