package site

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akhil.cc/sitegen/parser"
)

func TestRender(t *testing.T) {
	page, err := Render("# Tolkien Fan Club\n\n**I like Tolkien**.", testTemplate)
	require.NoError(t, err)
	assert.Equal(t,
		"<html><head><title>Tolkien Fan Club</title></head><body><div><h1>Tolkien Fan Club</h1><p><b>I like Tolkien</b>.</p></div></body></html>",
		page)
}

func TestRenderReplacesEveryPlaceholder(t *testing.T) {
	page, err := Render("# T", "{{ Title }}|{{ Title }}|{{ Content }}")
	require.NoError(t, err)
	assert.Equal(t, "T|T|<div><h1>T</h1></div>", page)
}

func TestRenderErrors(t *testing.T) {
	_, err := Render("no title here", testTemplate)
	assert.ErrorIs(t, err, parser.ErrNoTitle)

	_, err = Render("# Title\n\nan **open", testTemplate)
	assert.ErrorIs(t, err, parser.ErrUnmatchedDelimiter)
}

func TestGeneratePage(t *testing.T) {
	s, log := newTestSite(t, map[string]string{
		"content/index.md": "# Home\n\nWelcome.",
		"template.html":    testTemplate,
	})
	dest := filepath.Join(s.Config.Public, "nested", "index.html")

	require.NoError(t, s.GeneratePage(filepath.Join(s.Config.Content, "index.md"), s.Config.Template, dest))
	assert.Equal(t,
		"<html><head><title>Home</title></head><body><div><h1>Home</h1><p>Welcome.</p></div></body></html>",
		readFile(t, dest))
	assert.Contains(t, log.String(), "page generated")
}

func TestGeneratePageMissingTemplate(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{"content/index.md": "# Home"})
	err := s.GeneratePage(filepath.Join(s.Config.Content, "index.md"), s.Config.Template, filepath.Join(s.Config.Public, "index.html"))
	assert.Error(t, err)
}

func TestGeneratePages(t *testing.T) {
	s, log := newTestSite(t, map[string]string{
		"content/index.md":       "# Home\n\n![logo](/images/logo.png) [blog](/blog/first) [gone](/missing.html)",
		"content/blog/first.md":  "# First\n\n[home](../index.html)",
		"content/blog/notes.txt": "not markdown",
		"public/images/logo.png": "png",
		"template.html":          testTemplate,
	})

	require.NoError(t, s.GeneratePages(context.Background(), s.Config.Content, s.Config.Template, s.Config.Public))

	assert.Contains(t, readFile(t, filepath.Join(s.Config.Public, "index.html")), "<title>Home</title>")
	assert.Contains(t, readFile(t, filepath.Join(s.Config.Public, "blog", "first.html")), "<title>First</title>")
	assert.NoFileExists(t, filepath.Join(s.Config.Public, "blog", "notes.html"))

	out := log.String()
	assert.Contains(t, out, "missing link target")
	assert.Contains(t, out, "/missing.html")
	assert.NotContains(t, out, "target=/images/logo.png")
	assert.NotContains(t, out, "target=/blog/first")
	assert.NotContains(t, out, "target=../index.html")
}

func TestGeneratePagesStopsOnError(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{
		"content/a.md":  "no title",
		"template.html": testTemplate,
	})
	err := s.GeneratePages(context.Background(), s.Config.Content, s.Config.Template, s.Config.Public)
	require.ErrorIs(t, err, parser.ErrNoTitle)
	assert.Contains(t, err.Error(), "a.md")
}

func TestGeneratePagesCanceled(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{
		"content/a.md":  "# A",
		"template.html": testTemplate,
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.GeneratePages(ctx, s.Config.Content, s.Config.Template, s.Config.Public)
	assert.ErrorIs(t, err, context.Canceled)
}
