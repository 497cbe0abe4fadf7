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

// This CLI utility converts markdown to HTML and builds static sites
// from a tree of markdown pages.
//
// Usage:
//
//	sitegen [command]
//
// Available Commands:
//
//	build       Build the site described by a config file
//	help        Help about any command
//	html        HTML output generator for markdown source files
//	title       Print the title of a markdown source file
//
// Flags:
//
//	-h, --help      help for sitegen
//	-v, --verbose   log every copied file and change detected
//
// Use "sitegen [command] --help" for more information about a command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"akhil.cc/sitegen/gen/html"
	"akhil.cc/sitegen/parser"
	"akhil.cc/sitegen/site"
)

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "sitegen",
		Short: "markdown to HTML conversion and static site generation",
		Long: `This CLI utility converts markdown to HTML and builds static sites
from a tree of markdown pages.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "``log every copied file and change detected")
	logger := func(w io.Writer) *slog.Logger {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}
	rootCmd.AddCommand(newHTMLCmd(), newTitleCmd(), newBuildCmd(logger))
	return rootCmd
}

// openIO returns the input named by args, or standard input, and the
// output file, or standard output.
func openIO(cmd *cobra.Command, args []string, outputfile string) (io.ReadCloser, io.WriteCloser, error) {
	var src io.ReadCloser = io.NopCloser(cmd.InOrStdin())
	if len(args) != 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, err
		}
		src = f
	}
	out := nopWriteCloser{cmd.OutOrStdout()}
	if len(outputfile) != 0 {
		f, err := os.Create(outputfile)
		if err != nil {
			src.Close()
			return nil, nil, err
		}
		return src, f, nil
	}
	return src, out, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func newHTMLCmd() *cobra.Command {
	var outputfile string
	var timeout time.Duration
	prefixHTML := "(HTML) "
	htmlCmd := &cobra.Command{
		Use:   "html [input] [-o output]",
		Short: "HTML output generator for markdown source files",
		Long: `This command converts a markdown source file to an HTML fragment.
The blocks of the document are wrapped in a single <div>. Text is
not escaped.

If no input file is specified, input is read from
standard input. Similarly, if no output argument is
specified, output is written to standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, out, err := openIO(cmd, args, outputfile)
			if err != nil {
				return prefix(prefixHTML, err)
			}
			defer src.Close()
			defer out.Close()
			file, err := parser.Parse(src)
			if err != nil {
				return prefix(prefixHTML, err)
			}
			ctx := context.Background()
			if timeout > -1 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			g := html.GenContext(ctx, file)
			g.Stdout = out
			if err := g.Run(); err != nil {
				return prefix(prefixHTML, err)
			}
			return nil
		},
	}
	htmlCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(prefixHTML, err)
		}
		return nil
	})
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	htmlCmd.Flags().StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	htmlCmd.Flags().DurationVarP(&timeout, "timeout", "t", -1, "``timeout used to halt the generator between blocks")
	// Set string version of default value to be zero-value to prevent it from being printed by FlagUsages.
	htmlCmd.Flags().Lookup("timeout").DefValue = "0"
	return htmlCmd
}

func newTitleCmd() *cobra.Command {
	prefixTitle := "(title) "
	return &cobra.Command{
		Use:   "title [input]",
		Short: "Print the title of a markdown source file",
		Long: `This command prints the text of the first line starting with "# ".
It fails if the document has no such line.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, out, err := openIO(cmd, args, "")
			if err != nil {
				return prefix(prefixTitle, err)
			}
			defer src.Close()
			b, err := io.ReadAll(src)
			if err != nil {
				return prefix(prefixTitle, err)
			}
			title, err := parser.ExtractTitle(string(b))
			if err != nil {
				return prefix(prefixTitle, err)
			}
			fmt.Fprintln(out, title)
			return nil
		},
	}
}

func newBuildCmd(logger func(io.Writer) *slog.Logger) *cobra.Command {
	var (
		configFile string
		watch      bool
		overrides  site.Config
	)
	prefixBuild := "(build) "
	buildCmd := &cobra.Command{
		Use:   "build [-c config] [-w]",
		Short: "Build the site described by a config file",
		Long: `This command copies the static directory into the public directory,
then renders every markdown file under the content directory into
the page template, replacing {{ Title }} and {{ Content }}.

Settings are read from sitegen.yaml if it exists. Flags override
the file. With --watch, the site is rebuilt whenever an input changes
until the process is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := site.LoadConfig(configFile)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("config") {
					return prefix(prefixBuild, err)
				}
			}
			applyOverrides(cmd, &cfg, overrides)
			if err := cfg.Validate(); err != nil {
				return prefix(prefixBuild, err)
			}
			s := site.New(cfg, logger(cmd.ErrOrStderr()))
			s.Stdout = cmd.OutOrStdout()
			s.Stderr = cmd.ErrOrStderr()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if err := s.Build(ctx); err != nil {
				if !watch {
					return prefix(prefixBuild, err)
				}
				s.Logger.Error("build failed", "error", err)
			}
			if watch {
				if err := s.Watch(ctx); err != nil {
					return prefix(prefixBuild, err)
				}
			}
			return nil
		},
	}
	f := buildCmd.Flags()
	f.StringVarP(&configFile, "config", "c", site.DefaultConfigFile, "``path of the YAML config file")
	f.BoolVarP(&watch, "watch", "w", false, "``rebuild when content, static files or the template change")
	f.StringVar(&overrides.Static, "static", "", "``directory copied verbatim into the output")
	f.StringVar(&overrides.Content, "content", "", "``directory of markdown pages")
	f.StringVar(&overrides.Template, "template", "", "``page template")
	f.StringVar(&overrides.Public, "public", "", "``output directory")
	f.StringVar(&overrides.Hook, "hook", "", "``command line run after a successful build")
	return buildCmd
}

// applyOverrides copies every flag the user set onto cfg.
func applyOverrides(cmd *cobra.Command, cfg *site.Config, o site.Config) {
	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("static", &cfg.Static, o.Static)
	set("content", &cfg.Content, o.Content)
	set("template", &cfg.Template, o.Template)
	set("public", &cfg.Public, o.Public)
	set("hook", &cfg.Hook, o.Hook)
}
