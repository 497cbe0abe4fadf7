package site

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyTree(t *testing.T) {
	s, log := newTestSite(t, map[string]string{
		"static/index.css":         "body {}",
		"static/images/logo.png":   "png",
		"static/images/deep/a.txt": "a",
		"public/stale.html":        "old",
	})
	src, dst := s.Config.Static, s.Config.Public
	old := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(filepath.Join(src, "index.css"), old, old))
	require.NoError(t, os.Chmod(filepath.Join(src, "images/deep/a.txt"), 0o600))

	require.NoError(t, s.CopyTree(src, dst))

	assert.Equal(t, "body {}", readFile(t, filepath.Join(dst, "index.css")))
	assert.Equal(t, "png", readFile(t, filepath.Join(dst, "images/logo.png")))
	assert.Equal(t, "a", readFile(t, filepath.Join(dst, "images/deep/a.txt")))
	assert.NoFileExists(t, filepath.Join(dst, "stale.html"))

	info, err := os.Stat(filepath.Join(dst, "index.css"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "modification time is preserved")
	info, err = os.Stat(filepath.Join(dst, "images/deep/a.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	assert.Contains(t, log.String(), "copied")
	assert.Contains(t, log.String(), "created directory")
}

func TestCopyTreeMissingSource(t *testing.T) {
	s, log := newTestSite(t, map[string]string{"public/keep.html": "keep"})

	require.NoError(t, s.CopyTree(s.Config.Static, s.Config.Public))
	assert.FileExists(t, filepath.Join(s.Config.Public, "keep.html"))
	assert.Contains(t, log.String(), "source directory does not exist")
}

func TestCopyTreeEmptySource(t *testing.T) {
	s, _ := newTestSite(t, nil)
	require.NoError(t, os.MkdirAll(s.Config.Static, 0o755))

	require.NoError(t, s.CopyTree(s.Config.Static, s.Config.Public))
	entries, err := os.ReadDir(s.Config.Public)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
