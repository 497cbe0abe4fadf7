package site

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testTemplate = "<html><head><title>{{ Title }}</title></head><body>{{ Content }}</body></html>"

// newTestSite lays out a site under a temp dir and returns it with its log.
func newTestSite(t *testing.T, files map[string]string) (*Site, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		writeFile(t, filepath.Join(root, name), body)
	}
	cfg := Config{
		Static:   filepath.Join(root, "static"),
		Content:  filepath.Join(root, "content"),
		Template: filepath.Join(root, "template.html"),
		Public:   filepath.Join(root, "public"),
	}
	var log bytes.Buffer
	s := New(cfg, slog.New(slog.NewTextHandler(&log, &slog.HandlerOptions{Level: slog.LevelDebug})))
	var out bytes.Buffer
	s.Stdout = &out
	s.Stderr = &out
	return s, &log
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}
