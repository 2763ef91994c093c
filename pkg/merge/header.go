package merge

import (
	"strings"

	"github.com/spf13/afero"

	"github.com/agentstation/gtfsmerge/internal/tabular"
	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
)

// Header is an ordered sequence of column names taken from a table file's
// first row.
type Header []string

// Index returns the position of column name in the header, or -1.
func (h Header) Index(name string) int {
	for i, col := range h {
		if col == name {
			return i
		}
	}
	return -1
}

// HeaderMode selects which input header becomes the reference header.
type HeaderMode string

const (
	// HeaderLong picks the header with the most columns.
	HeaderLong HeaderMode = "long"
	// HeaderShort picks the header with the fewest columns.
	HeaderShort HeaderMode = "short"
	// HeaderDefault picks the first usable header in input order.
	HeaderDefault HeaderMode = "default"
)

// ParseHeaderMode maps a caller-supplied choice onto a HeaderMode. Matching
// is case-insensitive; anything other than long or short, including the
// empty string, is HeaderDefault.
func ParseHeaderMode(s string) HeaderMode {
	switch HeaderMode(strings.ToLower(strings.TrimSpace(s))) {
	case HeaderLong:
		return HeaderLong
	case HeaderShort:
		return HeaderShort
	default:
		return HeaderDefault
	}
}

// String implements fmt.Stringer.
func (m HeaderMode) String() string {
	return string(m)
}

// SelectHeader reads the first row of every file in paths and returns the
// one chosen by mode. Files whose first row is missing or empty contribute
// nothing. Each file is closed before the next is opened.
func SelectHeader(fs afero.Fs, paths []string, mode HeaderMode) (Header, error) {
	headers := make([]Header, 0, len(paths))
	for _, path := range paths {
		h, err := tabular.ReadHeader(fs, path)
		if err != nil {
			return nil, err
		}
		if len(h) > 0 {
			headers = append(headers, h)
		}
	}

	ref, ok := chooseHeader(headers, mode)
	if !ok {
		return nil, pkgerrors.NewNoHeaderError("", paths)
	}
	return ref, nil
}

// chooseHeader applies the selection rule. Ties go to the earliest header.
func chooseHeader(headers []Header, mode HeaderMode) (Header, bool) {
	if len(headers) == 0 {
		return nil, false
	}

	chosen := headers[0]
	switch ParseHeaderMode(string(mode)) {
	case HeaderLong:
		for _, h := range headers[1:] {
			if len(h) > len(chosen) {
				chosen = h
			}
		}
	case HeaderShort:
		for _, h := range headers[1:] {
			if len(h) < len(chosen) {
				chosen = h
			}
		}
	}
	return chosen, true
}
