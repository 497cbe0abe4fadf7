package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestHTMLCmd(t *testing.T) {
	out, _, err := run(t, "This is **bold** text.", "html")
	require.NoError(t, err)
	assert.Equal(t, "<div><p>This is <b>bold</b> text.</p></div>", out)
}

func TestHTMLCmdFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.md")
	outFile := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(in, []byte("```\nline1\nline2\n```"), 0o644))

	out, _, err := run(t, "", "html", in, "-o", outFile)
	require.NoError(t, err)
	assert.Empty(t, out)
	b, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "<div><pre><code>line1\nline2\n</code></pre></div>", string(b))
}

func TestHTMLCmdErrors(t *testing.T) {
	_, _, err := run(t, "an **open", "html")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "(HTML) "), err.Error())

	_, _, err = run(t, "", "html", filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)

	_, _, err = run(t, "", "html", "a.md", "b.md")
	assert.Error(t, err)
}

func TestTitleCmd(t *testing.T) {
	out, _, err := run(t, "intro\n\n#  The Title \n", "title")
	require.NoError(t, err)
	assert.Equal(t, "The Title\n", out)

	_, _, err = run(t, "## Not a Title", "title")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no title found")
}

func TestBuildCmd(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	write("content/index.md", "# Home\n\n_hello_")
	write("static/style.css", "p {}")
	write("layout.html", "<title>{{ Title }}</title>{{ Content }}")
	write("sitegen.yaml", "template: "+filepath.Join(dir, "layout.html")+"\n")

	_, _, err := run(t, "", "build",
		"-c", filepath.Join(dir, "sitegen.yaml"),
		"--content", filepath.Join(dir, "content"),
		"--static", filepath.Join(dir, "static"),
		"--public", filepath.Join(dir, "out"),
	)
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "out", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<title>Home</title><div><h1>Home</h1><p><i>hello</i></p></div>", string(b))
	assert.FileExists(t, filepath.Join(dir, "out", "style.css"))
}

func TestBuildCmdFlagFixesConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	content := filepath.Join(dir, "content")
	write("content/index.md", "# Home")
	write("template.html", "{{ Content }}")
	// public overlaps content in the file; the flag moves it out.
	write("sitegen.yaml", "content: "+content+"\npublic: "+content+"\ntemplate: "+filepath.Join(dir, "template.html")+"\n")

	_, _, err := run(t, "", "build",
		"-c", filepath.Join(dir, "sitegen.yaml"),
		"--static", filepath.Join(dir, "static"),
		"--public", filepath.Join(dir, "out"),
	)
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "out", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<div><h1>Home</h1></div>", string(b))

	_, _, err = run(t, "", "build", "-c", filepath.Join(dir, "sitegen.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlaps")
}

func TestBuildCmdErrors(t *testing.T) {
	_, _, err := run(t, "", "build", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "(build) "), err.Error())

	_, _, err = run(t, "", "build", "--content", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
