// internal/records/records_test.go
package records

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ervin/internal/hit"
)

const batch = "source_id\tscaffold_id\tscaffold_length\tstart\tend\te_value\talignment_length\tquery\thit\tframe\n" +
	"# comment\n" +
	"A\tS1\t5000\t100\t200\t1e-20\t100\tMKVLA\tMKVLA\t1\n" +
	"\n" +
	"B\tS1\t5000\t300\t210\t1e-15\t90\tQRSTU\tQRSTU\t-2\r\n"

func TestReadTSV(t *testing.T) {
	hs, err := ReadTSV(strings.NewReader(batch), "batch.tsv")
	require.NoError(t, err)
	require.Len(t, hs, 2)

	assert.Equal(t, "A", hs[0].SourceID())
	assert.Equal(t, 100, hs[0].Start)
	assert.Equal(t, hit.Forward, hs[0].Direction)

	assert.Equal(t, 210, hs[1].Start)
	assert.Equal(t, 300, hs[1].End)
	assert.Equal(t, hit.Reverse, hs[1].Direction)
	assert.Equal(t, -2, hs[1].Frame)
}

func TestReadTSVReportsLine(t *testing.T) {
	in := "A\tS1\t5000\t100\t200\t1e-20\t100\tQ\tH\t1\n" +
		"B\tS1\tlong\t100\t200\t1e-20\t100\tQ\tH\t1\n"
	_, err := ReadTSV(strings.NewReader(in), "b.tsv")
	require.ErrorIs(t, err, hit.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "b.tsv:2:")
}

func TestReadTSVFieldCount(t *testing.T) {
	_, err := ReadTSV(strings.NewReader("A\tS1\t5000\t100\t200\n"), "short.tsv")
	require.ErrorIs(t, err, hit.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "short.tsv:1:")
}

func TestHeaderOnlyBeforeFirstRecord(t *testing.T) {
	in := "A\tS1\t5000\t100\t200\t1e-20\t100\tQ\tH\t1\n" +
		"source_id\tscaffold_id\n"
	_, err := ReadTSV(strings.NewReader(in), "x")
	require.ErrorIs(t, err, hit.ErrMalformedRecord)
}

func TestLoadTSVGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.tsv.gz")
	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(batch))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	hs, err := LoadTSV(path)
	require.NoError(t, err)
	assert.Len(t, hs, 2)
}

func TestLoadTSVMissing(t *testing.T) {
	_, err := LoadTSV(filepath.Join(t.TempDir(), "nope.tsv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadManifestText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batches.txt")
	require.NoError(t, os.WriteFile(path, []byte("# fold order\nb1.tsv\n\n/abs/b2.tsv\n-\n"), 0o644))

	got, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "b1.tsv"), "/abs/b2.tsv", "-"}, got)
}

func TestLoadManifestYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batches.yaml")
	require.NoError(t, os.WriteFile(path, []byte("batches:\n  - one.tsv\n  - sub/two.tsv.gz\n"), 0o644))

	got, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "one.tsv"), filepath.Join(dir, "sub", "two.tsv.gz")}, got)
}

func TestLoadManifestEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yml")
	require.NoError(t, os.WriteFile(path, []byte("batches: []\n"), 0o644))
	_, err := LoadManifest(path)
	require.Error(t, err)
}
