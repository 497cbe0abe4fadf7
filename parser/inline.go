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

package parser

import (
	"regexp"
	"strings"

	"akhil.cc/sitegen/ast"
)

var (
	imageRE = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkRE  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// delimiters are applied in order, so "**" is consumed before "_" and "`".
var delimiters = []struct {
	s    string
	kind ast.SpanKind
}{
	{"**", ast.Bold},
	{"_", ast.Italic},
	{"`", ast.Code},
}

// Spans tokenizes a run of inline markdown.
func Spans(text string) ([]ast.TextSpan, error) {
	spans := []ast.TextSpan{ast.Span(text, ast.Plain)}
	var err error
	for _, d := range delimiters {
		if spans, err = SplitDelimiter(spans, d.s, d.kind); err != nil {
			return nil, err
		}
	}
	return SplitLinks(SplitImages(spans)), nil
}

// SplitDelimiter splits every plain span on delim. The parts alternate
// between plain text and text of the given kind. Spans that are not plain
// are passed through.
func SplitDelimiter(spans []ast.TextSpan, delim string, kind ast.SpanKind) ([]ast.TextSpan, error) {
	out := make([]ast.TextSpan, 0, len(spans))
	for _, s := range spans {
		if s.Kind != ast.Plain {
			out = append(out, s)
			continue
		}
		parts := strings.Split(s.Text, delim)
		if len(parts) == 1 {
			out = append(out, s)
			continue
		}
		if len(parts)%2 == 0 {
			return nil, &DelimiterError{Delim: delim}
		}
		for i, p := range parts {
			if i%2 == 0 {
				out = append(out, ast.Span(p, ast.Plain))
			} else {
				out = append(out, ast.Span(p, kind))
			}
		}
	}
	return out, nil
}

// SplitImages replaces image syntax inside plain spans with Image spans.
func SplitImages(spans []ast.TextSpan) []ast.TextSpan {
	return splitPattern(spans, func(text string) [][]int {
		return imageRE.FindAllStringSubmatchIndex(text, -1)
	}, ast.ImageSpan)
}

// SplitLinks replaces link syntax inside plain spans with Link spans.
// A bracket preceded by "!" is an image and is left alone.
func SplitLinks(spans []ast.TextSpan) []ast.TextSpan {
	return splitPattern(spans, findLinks, ast.LinkSpan)
}

func splitPattern(spans []ast.TextSpan, find func(string) [][]int, mk func(text, url string) ast.TextSpan) []ast.TextSpan {
	out := make([]ast.TextSpan, 0, len(spans))
	for _, s := range spans {
		if s.Kind != ast.Plain {
			out = append(out, s)
			continue
		}
		last := 0
		for _, m := range find(s.Text) {
			if m[0] > last {
				out = append(out, ast.Span(s.Text[last:m[0]], ast.Plain))
			}
			out = append(out, mk(s.Text[m[2]:m[3]], s.Text[m[4]:m[5]]))
			last = m[1]
		}
		if last < len(s.Text) {
			out = append(out, ast.Span(s.Text[last:], ast.Plain))
		}
	}
	return out
}

// findLinks returns submatch indices like FindAllStringSubmatchIndex,
// skipping any match that starts right after a "!".
func findLinks(text string) [][]int {
	var matches [][]int
	for off := 0; off < len(text); {
		m := linkRE.FindStringSubmatchIndex(text[off:])
		if m == nil {
			break
		}
		for i := range m {
			m[i] += off
		}
		if m[0] > 0 && text[m[0]-1] == '!' {
			off = m[0] + 1
			continue
		}
		matches = append(matches, m)
		off = m[1]
	}
	return matches
}

// ExtractImages returns the (alt, url) pair of every image in text.
func ExtractImages(text string) [][2]string {
	return pairs(text, imageRE.FindAllStringSubmatchIndex(text, -1))
}

// ExtractLinks returns the (text, url) pair of every link in text.
// Images are not links.
func ExtractLinks(text string) [][2]string {
	return pairs(text, findLinks(text))
}

func pairs(text string, matches [][]int) [][2]string {
	out := [][2]string{}
	for _, m := range matches {
		out = append(out, [2]string{text[m[2]:m[3]], text[m[4]:m[5]]})
	}
	return out
}
