package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
)

func TestParseHeaderMode(t *testing.T) {
	tests := []struct {
		in   string
		want HeaderMode
	}{
		{"long", HeaderLong},
		{"LONG", HeaderLong},
		{" Long ", HeaderLong},
		{"short", HeaderShort},
		{"Short", HeaderShort},
		{"default", HeaderDefault},
		{"", HeaderDefault},
		{"widest", HeaderDefault},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseHeaderMode(tt.in), tt.in)
	}
}

func TestSelectHeader(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/a/stops.txt": "c1,c2,c3\n1,2,3\n",
		"/b/stops.txt": "c1,c2,c3,c4,c5\n",
		"/c/stops.txt": "c1,c2\n",
	})
	paths := []string{"/a/stops.txt", "/b/stops.txt", "/c/stops.txt"}

	tests := []struct {
		mode HeaderMode
		want int
	}{
		{HeaderLong, 5},
		{HeaderShort, 2},
		{HeaderDefault, 3},
		{"", 3},
		{"LONG", 5},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			h, err := SelectHeader(fs, paths, tt.mode)
			require.NoError(t, err)
			assert.Len(t, h, tt.want)
		})
	}
}

func TestSelectHeaderTiesKeepFirst(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/a/t.txt": "x,y\n",
		"/b/t.txt": "p,q\n",
		"/c/t.txt": "m,n,o\n",
		"/d/t.txt": "r,s,t\n",
	})
	paths := []string{"/a/t.txt", "/b/t.txt", "/c/t.txt", "/d/t.txt"}

	h, err := SelectHeader(fs, paths, HeaderShort)
	require.NoError(t, err)
	assert.Equal(t, Header{"x", "y"}, h)

	h, err = SelectHeader(fs, paths, HeaderLong)
	require.NoError(t, err)
	assert.Equal(t, Header{"m", "n", "o"}, h)
}

func TestSelectHeaderSkipsEmptyFiles(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/a/t.txt": "",
		"/b/t.txt": "id,name\n",
	})

	h, err := SelectHeader(fs, []string{"/a/t.txt", "/b/t.txt"}, HeaderDefault)
	require.NoError(t, err)
	assert.Equal(t, Header{"id", "name"}, h)
}

func TestSelectHeaderNoHeader(t *testing.T) {
	fs := newFs(t, map[string]string{"/a/t.txt": "", "/b/t.txt": ""})

	_, err := SelectHeader(fs, []string{"/a/t.txt", "/b/t.txt"}, HeaderLong)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNoHeader(err))

	_, err = SelectHeader(fs, nil, HeaderLong)
	assert.True(t, pkgerrors.IsNoHeader(err))
}

func TestSelectHeaderMissingFile(t *testing.T) {
	fs := newFs(t, nil)

	_, err := SelectHeader(fs, []string{"/nope/t.txt"}, HeaderDefault)
	require.Error(t, err)
	var ioErr *pkgerrors.IOError
	assert.ErrorAs(t, err, &ioErr)
}
