// Package tabular reads and writes the comma-separated table files that
// make up a GTFS feed. It owns tokenization and quoting; callers deal only
// in records ([]string).
package tabular

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
)

// Reader yields the records of one table file. The first record returned
// is the file's header row.
type Reader struct {
	path string
	file afero.File
	csv  *csv.Reader
}

// Open opens path on fs for reading. A leading UTF-8 byte order mark is
// stripped so the first header column matches by name; every other byte
// passes through untouched, whatever the file's encoding.
func Open(fs afero.Fs, path string) (*Reader, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, pkgerrors.WrapIO("open", path, err)
	}

	decoded := transform.NewReader(f, unicode.BOMOverride(transform.Nop))
	r := csv.NewReader(decoded)
	r.FieldsPerRecord = -1

	return &Reader{path: path, file: f, csv: r}, nil
}

// Next returns the next record, or io.EOF when the file is exhausted.
func (r *Reader) Next() ([]string, error) {
	record, err := r.csv.Read()
	if err == nil || err == io.EOF {
		return record, err
	}

	var pe *csv.ParseError
	if errors.As(err, &pe) {
		parseErr := pkgerrors.NewParseError("csv", r.path, pe.Err.Error(), err)
		parseErr.Line, parseErr.Column = pe.Line, pe.Column
		return nil, parseErr
	}
	return nil, pkgerrors.WrapIO("read", r.path, err)
}

// Path returns the path the reader was opened on.
func (r *Reader) Path() string {
	return r.path
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return pkgerrors.WrapIO("close", r.path, r.file.Close())
}

// ReadHeader returns the first record of the file at path. An empty file
// yields a nil header and no error.
func ReadHeader(fs afero.Fs, path string) (header []string, err error) {
	r, err := Open(fs, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := r.Close(); err == nil {
			err = cerr
		}
	}()

	header, err = r.Next()
	if err == io.EOF {
		return nil, nil
	}
	return header, err
}
