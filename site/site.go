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

// Package site builds a static web site from a tree of markdown pages.
//
// A build mirrors the static directory into the public directory, renders
// every markdown file under the content directory into the page template
// and optionally runs a post-build command:
//
//	s := site.New(site.DefaultConfig(), nil)
//	if err := s.Build(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// The template is plain text in which "{{ Title }}" is replaced by the
// page's first "# " heading and "{{ Content }}" by the rendered page.
package site // import "akhil.cc/sitegen/site"

import (
	"io"
	"log/slog"
	"os"
)

// Site performs builds for one Config.
type Site struct {
	Config Config
	Logger *slog.Logger
	// Stdout and Stderr are handed to the post-build hook.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Site using logger, or slog.Default() if logger is nil.
func New(cfg Config, logger *slog.Logger) *Site {
	if logger == nil {
		logger = slog.Default()
	}
	return &Site{
		Config: cfg,
		Logger: logger,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
