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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrConfigParse   = errors.New("failed to parse config")
	ErrInvalidConfig = errors.New("invalid config")
)

// DefaultConfigFile is read by the CLI when no config path is given.
const DefaultConfigFile = "sitegen.yaml"

// Config holds the paths used by a site build.
type Config struct {
	Static   string `yaml:"static"`   // Copied verbatim into Public
	Content  string `yaml:"content"`  // Markdown tree
	Template string `yaml:"template"` // Page template with {{ Title }} and {{ Content }}
	Public   string `yaml:"public"`   // Output root, replaced on every build
	Hook     string `yaml:"hook"`     // Optional command line run after a build
}

// DefaultConfig returns the layout used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Static:   "static",
		Content:  "content",
		Template: "template.html",
		Public:   "public",
	}
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig.
// The returned error wraps fs.ErrNotExist if the file is missing.
// The result is not validated, so callers can apply overrides first.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path) // #nosec G304 -- path is supplied by the user
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return cfg, nil
}

// Validate checks that every required path is set and that the output
// directory does not overlap an input directory.
func (c Config) Validate() error {
	switch {
	case c.Content == "":
		return fmt.Errorf("%w: content directory is required", ErrInvalidConfig)
	case c.Template == "":
		return fmt.Errorf("%w: template is required", ErrInvalidConfig)
	case c.Public == "":
		return fmt.Errorf("%w: public directory is required", ErrInvalidConfig)
	}
	pub, err := filepath.Abs(c.Public)
	if err != nil {
		return err
	}
	for _, in := range []string{c.Static, c.Content} {
		if in == "" {
			continue
		}
		abs, err := filepath.Abs(in)
		if err != nil {
			return err
		}
		if within(pub, abs) || within(abs, pub) {
			return fmt.Errorf("%w: public directory %q overlaps %q", ErrInvalidConfig, c.Public, in)
		}
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
