package site

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	s, log := newTestSite(t, map[string]string{
		"static/index.css":         "body {}",
		"content/index.md":         "# Home\n\n- [Majesty](/majesty)",
		"content/majesty/index.md": "# Majesty\n\n> All that is gold does not glitter",
		"template.html":            testTemplate,
		"public/old.html":          "stale",
	})

	require.NoError(t, s.Build(context.Background()))

	pub := s.Config.Public
	assert.Equal(t, "body {}", readFile(t, filepath.Join(pub, "index.css")))
	assert.NoFileExists(t, filepath.Join(pub, "old.html"))
	assert.Equal(t,
		`<html><head><title>Home</title></head><body><div><h1>Home</h1><ul><li><a href="/majesty">Majesty</a></li></ul></div></body></html>`,
		readFile(t, filepath.Join(pub, "index.html")))
	assert.Contains(t,
		readFile(t, filepath.Join(pub, "majesty", "index.html")),
		"<blockquote>All that is gold does not glitter</blockquote>")
	assert.Contains(t, log.String(), "build finished")
	assert.NotContains(t, log.String(), "missing link target")
}

func TestBuildHook(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	s, _ := newTestSite(t, map[string]string{
		"content/index.md": "# Home",
		"template.html":    testTemplate,
	})
	var out bytes.Buffer
	s.Stdout = &out
	s.Config.Hook = `echo "site built"`

	require.NoError(t, s.Build(context.Background()))
	assert.Equal(t, "site built\n", out.String())
}

func TestBuildErrors(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{
		"content/index.md": "# Home\n\nan `open code span",
		"template.html":    testTemplate,
	})
	err := s.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate pages")
	assert.Contains(t, err.Error(), "index.md")

	s, _ = newTestSite(t, map[string]string{
		"content/index.md": "# Home",
		"template.html":    testTemplate,
	})
	s.Config.Hook = `"unterminated`
	err = s.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hook")

	s, _ = newTestSite(t, nil)
	s.Config.Content = ""
	assert.ErrorIs(t, s.Build(context.Background()), ErrInvalidConfig)
}
