package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "capture.jpg")
	require.NoError(t, os.WriteFile(src, []byte("not really a jpeg"), 0o644))

	dst := filepath.Join(dir, "capture.jpg.zip")
	require.NoError(t, Compress(src, dst))

	r, err := zip.OpenReader(dst)
	require.NoError(t, err)
	defer r.Close()

	require.Len(t, r.File, 1, "archive must contain exactly one entry")
	assert.Equal(t, "capture.jpg", r.File[0].Name)

	rc, err := r.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "not really a jpeg", string(data))
}

func TestCompressMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := Compress(filepath.Join(dir, "gone.jpg"), filepath.Join(dir, "gone.jpg.zip"))
	assert.Error(t, err)
}

func TestCompressUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	err := Compress(src, filepath.Join(dir, "missing", "a.txt.zip"))
	assert.Error(t, err)
}
