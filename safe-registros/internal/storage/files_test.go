package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveOpenRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, 1024)
	require.NoError(t, err)

	name, n, err := s.Save(strings.NewReader("hello"), ".png")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.True(t, strings.HasSuffix(name, ".png"))

	f, err := s.Open(name)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, s.Remove(name))
	require.NoError(t, s.Remove(name))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_TooLarge(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, 4)
	require.NoError(t, err)

	_, _, err = s.Save(strings.NewReader("12345"), ".jpg")
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStore_RejectsTraversal(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), 16)
	require.NoError(t, err)

	_, err = s.Open("../etc/passwd")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = s.Open(".hidden")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
