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
	"strconv"
	"strings"
	"unicode"

	"akhil.cc/sitegen/ast"
)

// Blocks splits a document on blank lines. Every block is trimmed of
// surrounding whitespace and empty blocks are dropped. Single newlines
// inside a block are kept.
func Blocks(text string) []string {
	blocks := []string{}
	for _, b := range strings.Split(text, "\n\n") {
		if b = strings.TrimSpace(b); b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Classify returns the type of a trimmed block. Rules are tried in order
// and the first match wins.
func Classify(block string) ast.BlockType {
	lines := strings.Split(block, "\n")
	switch {
	case isHeading(block):
		return ast.Heading
	case strings.HasPrefix(block, "```") && strings.HasSuffix(block, "```"):
		return ast.CodeBlock
	case every(lines, func(_ int, l string) bool { return strings.HasPrefix(l, ">") }):
		return ast.Quote
	case every(lines, func(_ int, l string) bool { return strings.HasPrefix(l, "- ") }):
		return ast.UnorderedList
	case every(lines, isOrderedItem):
		return ast.OrderedList
	}
	return ast.Paragraph
}

func isHeading(block string) bool {
	for n := 1; n <= 6; n++ {
		if strings.HasPrefix(block, strings.Repeat("#", n)+" ") {
			return true
		}
	}
	return false
}

// isOrderedItem reports whether line i (0-based) carries the number i+1.
func isOrderedItem(i int, line string) bool {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	return strings.HasPrefix(line, strconv.Itoa(i+1)+". ")
}

func every(lines []string, f func(int, string) bool) bool {
	for i, l := range lines {
		if !f(i, l) {
			return false
		}
	}
	return true
}
