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
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long Watch waits for changes to settle before rebuilding.
var Debounce = 300 * time.Millisecond

// Watch rebuilds the site whenever a file under the content or static
// directory, or the template itself, changes. It returns when ctx is done.
// A failed rebuild is logged and does not stop watching.
func (s *Site) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer w.Close()

	m, err := newMatcher(s.Config)
	if err != nil {
		return err
	}
	for _, dir := range []string{s.Config.Content, s.Config.Static} {
		if err := addDirsRecursive(w, dir); err != nil {
			return err
		}
	}
	// Watch the template's directory since editors often replace the file.
	if err := w.Add(filepath.Dir(m.template)); err != nil {
		return fmt.Errorf("watch %s: %w", m.template, err)
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	rebuild := make(chan struct{}, 1)
	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(Debounce, func() {
			select {
			case rebuild <- struct{}{}:
			default:
			}
		})
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	s.Logger.Info("watching for changes", "content", s.Config.Content, "static", s.Config.Static, "template", s.Config.Template)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod || !m.match(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := addDirsRecursive(w, ev.Name); err != nil {
						s.Logger.Warn("watch new directory", "dir", ev.Name, "error", err)
					}
				}
			}
			s.Logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			trigger()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.Logger.Warn("watch error", "error", err)
		case <-rebuild:
			if err := s.Build(ctx); err != nil {
				s.Logger.Error("rebuild failed", "error", err)
			}
		}
	}
}

// matcher decides whether a changed path belongs to the site's inputs.
type matcher struct {
	dirs     []string
	template string
}

func newMatcher(cfg Config) (*matcher, error) {
	m := &matcher{}
	for _, d := range []string{cfg.Content, cfg.Static} {
		if d == "" {
			continue
		}
		abs, err := filepath.Abs(d)
		if err != nil {
			return nil, err
		}
		m.dirs = append(m.dirs, abs)
	}
	abs, err := filepath.Abs(cfg.Template)
	if err != nil {
		return nil, err
	}
	m.template = abs
	return m, nil
}

func (m *matcher) match(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if abs == m.template {
		return true
	}
	for _, d := range m.dirs {
		if within(abs, d) {
			return true
		}
	}
	return false
}

// addDirsRecursive watches root and every directory below it.
// A missing root is skipped.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	if root == "" {
		return nil
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}
