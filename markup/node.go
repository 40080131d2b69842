package markup

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTag      = errors.New("tag name is empty")
	ErrDuplicateAttr = errors.New("duplicate attribute key")
	ErrVoidWithBody  = errors.New("void element has children")
	ErrEmptyAttrKey  = errors.New("attribute key is empty")
)

// Element is anything that renders to markup.
type Element interface {
	Render() string
}

// Builder is an element that exposes its node, as generated element types do.
type Builder interface {
	Element
	Node() *Node
}

// Text is a literal text child. It is written verbatim.
type Text string

// Render returns the text unchanged.
func (t Text) Render() string {
	return string(t)
}

// Attr is one resolved key/value attribute.
type Attr struct {
	Key   string
	Value string
}

// String renders the attribute as key="value".
func (a Attr) String() string {
	return Property(a.Key, a.Value)
}

// Node is the runtime form of one element: its tag, its resolved attributes
// in declaration order and its resolved children.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []Element
	// Void marks an element declared without children; it renders
	// self-closing.
	Void bool
}

// NewNode returns an empty element with the given tag.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// Attr appends an attribute and returns n for chaining.
func (n *Node) Attr(key, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

// GlobalAttr appends one of the global attributes.
func (n *Node) GlobalAttr(a GlobalAttribute, value string) *Node {
	return n.Attr(a.String(), value)
}

// Child appends child elements. Nil children are skipped.
func (n *Node) Child(children ...Element) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}

		n.Children = append(n.Children, c)
	}

	return n
}

// Text appends literal text children.
func (n *Node) Text(texts ...string) *Node {
	for _, t := range texts {
		n.Children = append(n.Children, Text(t))
	}

	return n
}

// Render composes the node into its canonical string form.
func (n *Node) Render() string {
	if n == nil {
		return ""
	}

	if n.Void {
		return SelfClosingTag(n.Tag, n.Attrs...)
	}

	return Tag(n.Tag, n.Attrs, n.Children...)
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	return n.Render()
}

// Validate checks the node invariants: a non-empty tag, non-empty and unique
// attribute keys, and no children on a void element. Nested *Node and
// Builder children are validated recursively.
func (n *Node) Validate() error {
	if n.Tag == "" {
		return ErrEmptyTag
	}

	seen := make(map[string]struct{}, len(n.Attrs))
	for _, a := range n.Attrs {
		if a.Key == "" {
			return fmt.Errorf("<%s>: %w", n.Tag, ErrEmptyAttrKey)
		}

		if _, ok := seen[a.Key]; ok {
			return fmt.Errorf("<%s>: %w %q", n.Tag, ErrDuplicateAttr, a.Key)
		}

		seen[a.Key] = struct{}{}
	}

	if n.Void && len(n.Children) > 0 {
		return fmt.Errorf("<%s>: %w", n.Tag, ErrVoidWithBody)
	}

	for _, c := range n.Children {
		var child *Node

		switch c := c.(type) {
		case *Node:
			child = c
		case Builder:
			child = c.Node()
		}

		if child == nil {
			continue
		}

		if err := child.Validate(); err != nil {
			return fmt.Errorf("<%s>: %w", n.Tag, err)
		}
	}

	return nil
}
