package tabular

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/gtfsmerge/pkg/errors"
)

func readAll(t *testing.T, fs afero.Fs, path string) [][]string {
	t.Helper()
	r, err := Open(fs, path)
	require.NoError(t, err)
	defer r.Close()

	var records [][]string
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records
		}
		require.NoError(t, err)
		records = append(records, rec)
	}
}

func TestReadHeader(t *testing.T) {
	fs := afero.NewMemMapFs()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"plain", "stop_id,stop_name\nA,Main\n", []string{"stop_id", "stop_name"}},
		{"byte order mark", "\ufeffstop_id,stop_name\r\nA,Main\r\n", []string{"stop_id", "stop_name"}},
		{"quoted", "\"stop_id\",\"stop, name\"\n", []string{"stop_id", "stop, name"}},
		{"empty file", "", nil},
		{"header only", "agency_id", []string{"agency_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, afero.WriteFile(fs, "/feed/"+tt.name, []byte(tt.content), 0o644))
			header, err := ReadHeader(fs, "/feed/"+tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, header)
		})
	}
}

func TestReaderKeepsNonUTF8Bytes(t *testing.T) {
	fs := afero.NewMemMapFs()
	// Latin-1 "Café" and "Zürich"
	require.NoError(t, afero.WriteFile(fs, "/latin1.txt", []byte("stop_id,stop_name\nS1,Caf\xe9\nS2,Z\xfcrich\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/bom.txt", []byte("\xef\xbb\xbfstop_id,stop_name\nS1,Caf\xe9\n"), 0o644))

	assert.Equal(t, [][]string{
		{"stop_id", "stop_name"},
		{"S1", "Caf\xe9"},
		{"S2", "Z\xfcrich"},
	}, readAll(t, fs, "/latin1.txt"))

	records := readAll(t, fs, "/bom.txt")
	assert.Equal(t, []string{"stop_id", "stop_name"}, records[0])

	require.NoError(t, fs.MkdirAll("/out", 0o755))
	require.NoError(t, WriteTable(fs, "/out/stops.txt", records[0], records[1:]))
	data, err := afero.ReadFile(fs, "/out/stops.txt")
	require.NoError(t, err)
	assert.Equal(t, "stop_id,stop_name\nS1,Caf\xe9\n", string(data))
}

func TestReadHeaderMissingFile(t *testing.T) {
	_, err := ReadHeader(afero.NewMemMapFs(), "/nope/stops.txt")
	require.Error(t, err)

	var ioErr *pkgerrors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Operation)
}

func TestReaderVariableFieldCounts(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "a,b,c\n1,2\n1,2,3,4\n\n5,6,7\n"
	require.NoError(t, afero.WriteFile(fs, "/t.txt", []byte(content), 0o644))

	records := readAll(t, fs, "/t.txt")
	assert.Equal(t, [][]string{
		{"a", "b", "c"},
		{"1", "2"},
		{"1", "2", "3", "4"},
		{"5", "6", "7"},
	}, records)
}

func TestReaderMalformedQuoting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.txt", []byte("a,b\n1,x\"y\n"), 0o644))

	r, err := Open(fs, "/bad.txt")
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	require.Error(t, err)

	var pe *pkgerrors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "csv", pe.Format)
	assert.Equal(t, "/bad.txt", pe.File)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "/bad.txt", r.Path())
}

func TestWriteTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))

	header := []string{"stop_id", "stop_name"}
	rows := [][]string{{"A", "Main, North"}, {"B", ""}, {"C", `say "hi"`}}
	require.NoError(t, WriteTable(fs, "/out/stops.txt", header, rows))

	data, err := afero.ReadFile(fs, "/out/stops.txt")
	require.NoError(t, err)
	assert.Equal(t, "stop_id,stop_name\nA,\"Main, North\"\nB,\nC,\"say \"\"hi\"\"\"\n", string(data))

	// round trip through the reader
	assert.Equal(t, append([][]string{header}, rows...), readAll(t, fs, "/out/stops.txt"))

	// no temporary files are left behind
	entries, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "stops.txt", entries[0].Name())
}

func TestWriteTableReplacesExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/agency.txt", []byte("stale,content\nx,y\nz,w\n"), 0o644))

	require.NoError(t, WriteTable(fs, "/out/agency.txt", []string{"agency_id"}, [][]string{{"1"}}))

	data, err := afero.ReadFile(fs, "/out/agency.txt")
	require.NoError(t, err)
	assert.Equal(t, "agency_id\n1\n", string(data))
}

func TestWriteTableReadOnlyFs(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/out", 0o755))
	fs := afero.NewReadOnlyFs(base)

	err := WriteTable(fs, "/out/stops.txt", []string{"stop_id"}, nil)
	require.Error(t, err)
	var ioErr *pkgerrors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "/out/stops.txt", ioErr.Path)
}
