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

package html

import (
	"fmt"

	"akhil.cc/sitegen/ast"
	"akhil.cc/sitegen/parser"
)

// SpanToLeaf converts an inline span into a leaf node.
func SpanToLeaf(s ast.TextSpan) (*Leaf, error) {
	switch s.Kind {
	case ast.Plain:
		return NewText(s.Text), nil
	case ast.Bold:
		return NewLeaf("b", s.Text), nil
	case ast.Italic:
		return NewLeaf("i", s.Text), nil
	case ast.Code:
		return NewLeaf("code", s.Text), nil
	case ast.Link:
		return NewLeaf("a", s.Text, Attr{"href", s.URL}), nil
	case ast.Image:
		return NewLeaf("img", "", Attr{"src", s.URL}, Attr{"alt", s.Text}), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownSpanKind, int(s.Kind))
}

// TextToChildren tokenizes inline markdown and converts each span to a leaf.
func TextToChildren(text string) ([]Node, error) {
	spans, err := parser.Spans(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(spans))
	for _, s := range spans {
		l, err := SpanToLeaf(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, l)
	}
	return nodes, nil
}
