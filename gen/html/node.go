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
	"errors"
	"strings"
)

var (
	ErrMissingValue    = errors.New("all leaf nodes must have a value")
	ErrMissingTag      = errors.New("parent nodes must have a tag")
	ErrMissingChildren = errors.New("parent nodes must have child nodes")
	ErrUnknownSpanKind = errors.New("unknown text span kind")
)

// Node is an element of an HTML tree. It is either a *Leaf or a *Parent.
type Node interface {
	HTML() (string, error)
	node()
}

// Attr is a single attribute of an element.
type Attr struct {
	Key, Val string
}

// Attrs are rendered in the order they were added.
type Attrs []Attr

// Get returns the value of key and whether it is present.
func (a Attrs) Get(key string) (string, bool) {
	for _, at := range a {
		if at.Key == key {
			return at.Val, true
		}
	}
	return "", false
}

func (a Attrs) write(b *strings.Builder) {
	for _, at := range a {
		b.WriteString(" ")
		b.WriteString(at.Key)
		b.WriteString(`="`)
		b.WriteString(at.Val)
		b.WriteString(`"`)
	}
}

// Leaf is a node without children. A Leaf without a tag is raw text.
// Value must be set for the leaf to render; the empty string is a valid value.
type Leaf struct {
	Tag   string
	Value *string
	Attrs Attrs
}

// Parent is a node with children. Attrs are kept but not rendered.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attrs
}

func (*Leaf) node()   {}
func (*Parent) node() {}

// NewLeaf returns a leaf element. An empty tag makes it raw text.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{Tag: tag, Value: &value, Attrs: attrs}
}

// NewText returns an untagged leaf holding value.
func NewText(value string) *Leaf {
	return NewLeaf("", value)
}

// NewParent returns an element holding children. A nil children slice is
// replaced with an empty one.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	if children == nil {
		children = []Node{}
	}
	return &Parent{Tag: tag, Children: children, Attrs: attrs}
}

// Append adds n to the end of p's children.
func (p *Parent) Append(n ...Node) {
	p.Children = append(p.Children, n...)
}

// HTML renders the leaf. The value is written verbatim, without escaping.
func (l *Leaf) HTML() (string, error) {
	if l == nil || l.Value == nil {
		return "", ErrMissingValue
	}
	if l.Tag == "" {
		return *l.Value, nil
	}
	var b strings.Builder
	b.WriteString("<" + l.Tag)
	l.Attrs.write(&b)
	b.WriteString(">")
	b.WriteString(*l.Value)
	b.WriteString("</" + l.Tag + ">")
	return b.String(), nil
}

// HTML renders p and all of its descendants.
func (p *Parent) HTML() (string, error) {
	if p == nil {
		return "", ErrMissingTag
	}
	var b strings.Builder
	if err := p.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (p *Parent) render(b *strings.Builder) error {
	if p.Tag == "" {
		return ErrMissingTag
	}
	if p.Children == nil {
		return ErrMissingChildren
	}
	b.WriteString("<" + p.Tag + ">")
	for _, c := range p.Children {
		if c == nil {
			return ErrMissingValue
		}
		if cp, ok := c.(*Parent); ok {
			if cp == nil {
				return ErrMissingTag
			}
			if err := cp.render(b); err != nil {
				return err
			}
			continue
		}
		s, err := c.HTML()
		if err != nil {
			return err
		}
		b.WriteString(s)
	}
	b.WriteString("</" + p.Tag + ">")
	return nil
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Leaf:
		y, ok := b.(*Leaf)
		if !ok || x.Tag != y.Tag || !attrsEqual(x.Attrs, y.Attrs) {
			return false
		}
		if x.Value == nil || y.Value == nil {
			return x.Value == nil && y.Value == nil
		}
		return *x.Value == *y.Value
	case *Parent:
		y, ok := b.(*Parent)
		if !ok || x.Tag != y.Tag || !attrsEqual(x.Attrs, y.Attrs) {
			return false
		}
		if (x.Children == nil) != (y.Children == nil) || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

func attrsEqual(a, b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Walker is called for every node visited by Walk.
type Walker func(Node) error

// Walk visits n and its descendants in document order.
func Walk(n Node, f Walker) error {
	if n == nil {
		return nil
	}
	if err := f(n); err != nil {
		return err
	}
	if p, ok := n.(*Parent); ok {
		for _, c := range p.Children {
			if err := Walk(c, f); err != nil {
				return err
			}
		}
	}
	return nil
}
