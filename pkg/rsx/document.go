// Package rsx converts HTML into Dioxus RSX markup.
//
// Conversion runs in three stages: the HTML is normalized by
// pkg/syntax, parsed into a Document, and printed as RSX. Parser and
// Printer are interfaces so either stage can be swapped out.
package rsx

import "errors"

var (
	// ErrParse wraps failures to turn input into a Document.
	ErrParse = errors.New("failed to parse HTML")
	// ErrMalformed is returned when a Document cannot be printed.
	ErrMalformed = errors.New("malformed document")
)

// NodeKind identifies the type of a Node.
type NodeKind int

const (
	ElementNode NodeKind = iota
	TextNode
	CommentNode
)

// Attr is a single attribute in source order.
type Attr struct {
	Name  string
	Value string
}

// Node is one element, text run or comment.
type Node struct {
	Kind     NodeKind
	Name     string // element name, set for ElementNode
	Attrs    []Attr // set for ElementNode
	Text     string // set for TextNode and CommentNode
	Children []*Node
}

// Document is a parsed HTML fragment: an ordered list of top-level nodes.
type Document struct {
	Nodes []*Node
}

// Elements returns the number of element nodes in the document.
func (d *Document) Elements() int {
	count := 0
	var walk func([]*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			if n.Kind == ElementNode {
				count++
			}
			walk(n.Children)
		}
	}
	walk(d.Nodes)
	return count
}
