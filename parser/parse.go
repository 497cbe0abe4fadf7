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

// Package parser implements a parser for markdown source. It takes in an io.Reader
// as input and outputs an *ast.File whose blocks are classified but not yet
// tokenized. Inline content is tokenized on demand with Spans.
//
// A document is split into blocks on blank lines. Each block is classified
// by the first rule that matches:
//
//	heading        = octothorpe { octothorpe } space text .   (1 to 6 octothorpes)
//	code           = fence newline { line } fence .           (fence is ```)
//	quote          = gt line { newline gt line } .
//	unordered_list = "- " line { newline "- " line } .
//	ordered_list   = "1. " line newline "2. " line ... .     (numbered from 1, no gaps)
//	paragraph      = any other block .
//
// Inline text is scanned in passes, each pass only splitting spans that are
// still plain text:
//
//	bold   = "**" text "**" .
//	italic = "_" text "_" .
//	code   = "`" text "`" .
//	image  = "![" alt "](" url ")" .
//	link   = "[" text "](" url ")" .   (not preceded by "!")
//
// Formatting does not nest.
package parser // import "akhil.cc/sitegen/parser"

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"akhil.cc/sitegen/ast"
)

var (
	// ErrUnmatchedDelimiter is wrapped by every *DelimiterError.
	ErrUnmatchedDelimiter = errors.New("invalid markdown syntax: unmatched opening delimiter")
	// ErrNoTitle is returned by ExtractTitle when no line starts with "# ".
	ErrNoTitle = errors.New("no title found: document has no \"# \" heading")
)

// DelimiterError reports a delimiter that opens a span which is never closed.
type DelimiterError struct {
	Delim string
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("%v %q", ErrUnmatchedDelimiter, e.Delim)
}

func (e *DelimiterError) Unwrap() error { return ErrUnmatchedDelimiter }

// MustParse is like Parse but panics if the source cannot be parsed.
func MustParse(src io.Reader) (file *ast.File) {
	f, err := Parse(src)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return f
}

// Parse reads the source and if successful, returns its classified blocks.
// A generator can be used to transform the returned AST into another format.
func Parse(src io.Reader) (f *ast.File, err error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(b), "\r\n", "\n")
	f = &ast.File{Blocks: []ast.Block{}}
	for _, block := range Blocks(text) {
		f.Blocks = append(f.Blocks, ast.Block{Type: Classify(block), Text: block})
	}
	return f, nil
}
