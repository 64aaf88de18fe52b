package fileutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileWithLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	data, err := ReadFileWithLimit(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestReadFileWithLimit_TooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("a"), MaxFileSize+1), 0644))

	_, err := ReadFileWithLimit(path)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestReadFileWithLimit_Missing(t *testing.T) {
	_, err := ReadFileWithLimit(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
