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
	"time"

	"akhil.cc/sitegen/gen"
)

// Build mirrors the static directory into the public directory, generates
// every page and then runs the configured hook, if any.
func (s *Site) Build(ctx context.Context) error {
	if err := s.Config.Validate(); err != nil {
		return err
	}
	start := time.Now()
	cfg := s.Config
	if err := s.CopyTree(cfg.Static, cfg.Public); err != nil {
		return fmt.Errorf("copy static: %w", err)
	}
	if err := s.GeneratePages(ctx, cfg.Content, cfg.Template, cfg.Public); err != nil {
		return fmt.Errorf("generate pages: %w", err)
	}
	if cfg.Hook != "" {
		s.Logger.Info("running hook", "command", cfg.Hook)
		c := &gen.Command{Ctx: ctx, Stdout: s.Stdout, Stderr: s.Stderr}
		if err := c.Run(cfg.Hook); err != nil {
			return fmt.Errorf("hook %q: %w", cfg.Hook, err)
		}
	}
	s.Logger.Info("build finished", "public", cfg.Public, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
