package gtfsmerge

import (
	"github.com/spf13/afero"

	"github.com/agentstation/gtfsmerge/internal/archive"
	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
)

// config holds the collaborators a merger works with
type config struct {
	fs       afero.Fs
	expander Expander
}

// defaultConfig reads and writes the OS filesystem and expands zip
// archives into the system temporary directory.
func defaultConfig() *config {
	return &config{
		fs:       afero.NewOsFs(),
		expander: archive.NewZip(""),
	}
}

// Option is a function that configures a Merger instance
type Option func(*config) error

// options applies the given options to the merger
func (m *merger) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(m.config); err != nil {
			return err
		}
	}
	return nil
}

// WithFilesystem configures the filesystem feeds are read from and
// output is written to
func WithFilesystem(fs afero.Fs) Option {
	return func(c *config) error {
		if fs == nil {
			return pkgerrors.NewValidationError("filesystem", nil, "filesystem cannot be nil")
		}
		c.fs = fs
		return nil
	}
}

// WithExpander configures how archives are expanded
func WithExpander(e Expander) Option {
	return func(c *config) error {
		if e == nil {
			return pkgerrors.NewValidationError("expander", nil, "expander cannot be nil")
		}
		c.expander = e
		return nil
	}
}

// WithTempDir configures where zip archives are expanded
func WithTempDir(dir string) Option {
	return func(c *config) error {
		c.expander = archive.NewZip(dir)
		return nil
	}
}
