// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package site

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"akhil.cc/sitegen/gen/html"
	"akhil.cc/sitegen/parser"
)

// Placeholders replaced in the page template.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// Render converts markdown to HTML and substitutes the result and the
// document's title into tmpl.
func Render(markdown, tmpl string) (string, error) {
	page, _, err := render(markdown, tmpl)
	return page, err
}

func render(markdown, tmpl string) (string, *html.Parent, error) {
	root, err := html.FromMarkdown(markdown)
	if err != nil {
		return "", nil, err
	}
	content, err := root.HTML()
	if err != nil {
		return "", nil, err
	}
	title, err := parser.ExtractTitle(markdown)
	if err != nil {
		return "", nil, err
	}
	page := strings.ReplaceAll(tmpl, TitlePlaceholder, title)
	page = strings.ReplaceAll(page, ContentPlaceholder, content)
	return page, root, nil
}

// GeneratePage renders the markdown file from into the template at
// templatePath and writes the page to dest, creating parent directories.
func (s *Site) GeneratePage(from, templatePath, dest string) error {
	tmpl, err := os.ReadFile(templatePath) // #nosec G304 -- path is supplied by the user
	if err != nil {
		return err
	}
	_, err = s.generate(from, string(tmpl), dest)
	return err
}

func (s *Site) generate(from, tmpl, dest string) (*html.Parent, error) {
	s.Logger.Info("generating page", "from", from, "to", dest)
	md, err := os.ReadFile(from) // #nosec G304 -- path comes from walking the content tree
	if err != nil {
		return nil, err
	}
	page, root, err := render(string(md), tmpl)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", from, err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(dest, []byte(page), 0o644); err != nil { // #nosec G306 -- pages are public
		return nil, err
	}
	s.Logger.Info("page generated", "to", dest, "size", humanize.Bytes(uint64(len(page))))
	return root, nil
}

// GeneratePages renders every .md file below contentDir. A file at
// contentDir/a/b.md is written to destDir/a/b.html. Generation stops at
// the first page that fails.
//
// Once every page is written, image sources and link targets that point
// into the site but do not exist are logged as warnings.
func (s *Site) GeneratePages(ctx context.Context, contentDir, templatePath, destDir string) error {
	tmpl, err := os.ReadFile(templatePath) // #nosec G304 -- path is supplied by the user
	if err != nil {
		return err
	}
	var refs []ref
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, strings.TrimSuffix(rel, ".md")+".html")
		root, err := s.generate(path, string(tmpl), dest)
		if err != nil {
			return err
		}
		refs = append(refs, localRefs(root, dest, destDir)...)
		return nil
	})
	if err != nil {
		return err
	}
	for _, r := range refs {
		if !exists(r.path) {
			s.Logger.Warn("missing link target", "page", r.page, "target", r.target)
		}
	}
	return nil
}

type ref struct {
	page   string
	target string
	path   string
}

// localRefs returns the site-relative targets of every <a> and <img> in root.
func localRefs(root html.Node, page, destDir string) []ref {
	var refs []ref
	html.Walk(root, func(n html.Node) error {
		l, ok := n.(*html.Leaf)
		if !ok {
			return nil
		}
		var key string
		switch l.Tag {
		case "a":
			key = "href"
		case "img":
			key = "src"
		default:
			return nil
		}
		target, _ := l.Attrs.Get(key)
		u, err := url.Parse(target)
		if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
			return nil
		}
		p := filepath.FromSlash(u.Path)
		if strings.HasPrefix(u.Path, "/") {
			p = filepath.Join(destDir, p)
		} else {
			p = filepath.Join(filepath.Dir(page), p)
		}
		refs = append(refs, ref{page: page, target: target, path: p})
		return nil
	})
	return refs
}

func exists(path string) bool {
	for _, p := range []string{path, path + ".html"} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}
