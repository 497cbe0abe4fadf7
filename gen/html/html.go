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

// Package html converts parsed markdown into a tree of HTML nodes and
// serializes that tree. Text is not escaped.
//
// Blocks and spans correspond to the following HTML tags:
//
//	Paragraph                   <p></p>
//	Heading                     <h1></h1> ... <h6></h6>
//	Code block                  <pre><code></code></pre>
//	Quote                       <blockquote></blockquote>
//	Unordered list              <ul><li></li></ul>
//	Ordered list                <ol><li></li></ol>
//	Bold                        <b></b>
//	Italic                      <i></i>
//	Code                        <code></code>
//	Link                        <a href=""></a>
//	Image                       <img src="" alt=""></img>
//
// The blocks of a document are wrapped in a single <div>.
package html // import "akhil.cc/sitegen/gen/html"

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"akhil.cc/sitegen/ast"
	"akhil.cc/sitegen/parser"
)

// FromMarkdown parses markdown and returns the <div> holding one subtree
// per block, in document order.
func FromMarkdown(markdown string) (*Parent, error) {
	root := NewParent("div", nil)
	for _, b := range parser.Blocks(markdown) {
		n, err := BlockToNode(ast.Block{Type: parser.Classify(b), Text: b})
		if err != nil {
			return nil, err
		}
		root.Append(n)
	}
	return root, nil
}

// BlockToNode converts a classified block into its subtree.
func BlockToNode(b ast.Block) (Node, error) {
	lines := strings.Split(b.Text, "\n")
	switch b.Type {
	case ast.Paragraph:
		return inlineParent("p", b.Text)
	case ast.Heading:
		level := len(b.Text) - len(strings.TrimLeft(b.Text, "#"))
		if level > 6 {
			level = 6
		}
		text := strings.TrimLeft(strings.TrimLeft(b.Text, "#"), " ")
		return inlineParent(fmt.Sprintf("h%d", level), text)
	case ast.CodeBlock:
		var body string
		if len(lines) > 2 {
			body = strings.Join(lines[1:len(lines)-1], "\n")
		}
		return NewParent("pre", []Node{NewLeaf("code", body+"\n")}), nil
	case ast.Quote:
		for i, l := range lines {
			if strings.HasPrefix(l, "> ") {
				lines[i] = l[2:]
			} else {
				lines[i] = strings.TrimPrefix(l, ">")
			}
		}
		return inlineParent("blockquote", strings.Join(lines, "\n"))
	case ast.UnorderedList:
		for i, l := range lines {
			lines[i] = strings.TrimPrefix(l, "- ")
		}
		return list("ul", lines)
	case ast.OrderedList:
		for i, l := range lines {
			if _, item, ok := strings.Cut(l, ". "); ok {
				lines[i] = item
			}
		}
		return list("ol", lines)
	}
	return nil, fmt.Errorf("unknown block type %v", b.Type)
}

func list(tag string, items []string) (Node, error) {
	ul := NewParent(tag, nil)
	for _, item := range items {
		li, err := inlineParent("li", item)
		if err != nil {
			return nil, err
		}
		ul.Append(li)
	}
	return ul, nil
}

func inlineParent(tag, text string) (*Parent, error) {
	children, err := TextToChildren(text)
	if err != nil {
		return nil, err
	}
	return NewParent(tag, children), nil
}

// Generator represents a non-reusable HTML output generator for an *ast.File.
type Generator struct {
	// Stdout receives the serialized <div>. If nil, output is discarded.
	Stdout io.Writer
	ctx    context.Context
	file   *ast.File
	done   bool
}

// Gen returns the Generator struct to convert the given file into HTML output.
//
// It sets only the file in the returned structure.
func Gen(file *ast.File) *Generator {
	return &Generator{ctx: context.TODO(), file: file}
}

// GenContext is like Gen but includes a context.
//
// The provided context is used to halt HTML generation after
// processing an ast.Block.
func GenContext(ctx context.Context, file *ast.File) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, file: file}
}

// Run converts every block and writes the resulting tree to Stdout.
// Nothing is written if a block fails to convert.
func (g *Generator) Run() error {
	if g.done {
		return fmt.Errorf("generator already run")
	}
	g.done = true
	if g.Stdout == nil {
		g.Stdout = io.Discard
	}
	root := NewParent("div", nil)
	for _, b := range g.file.Blocks {
		select {
		case <-g.ctx.Done():
			return g.ctx.Err()
		default:
		}
		n, err := BlockToNode(b)
		if err != nil {
			return err
		}
		root.Append(n)
	}
	s, err := root.HTML()
	if err != nil {
		return err
	}
	_, err = io.WriteString(g.Stdout, s)
	return err
}

// Output runs the generator and returns its standard output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	var stdout bytes.Buffer
	g.Stdout = &stdout
	err := g.Run()
	return stdout.Bytes(), err
}
