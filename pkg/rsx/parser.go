package rsx

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parser turns HTML text into a Document.
type Parser interface {
	Parse(ctx context.Context, src string) (*Document, error)
}

// HTMLParser parses input as a fragment of an HTML <body>.
type HTMLParser struct{}

var _ Parser = HTMLParser{}

// Parse builds a Document from src. Doctypes are dropped; element and
// attribute names come back lowercased, as the HTML parser reports them.
func (HTMLParser) Parse(ctx context.Context, src string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	doc := &Document{}
	for _, n := range nodes {
		if conv := convertNode(n); conv != nil {
			doc.Nodes = append(doc.Nodes, conv)
		}
	}
	return doc, nil
}

func convertNode(n *html.Node) *Node {
	switch n.Type {
	case html.TextNode:
		return &Node{Kind: TextNode, Text: n.Data}
	case html.CommentNode:
		return &Node{Kind: CommentNode, Text: n.Data}
	case html.ElementNode:
		el := &Node{Kind: ElementNode, Name: n.Data}
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			el.Attrs = append(el.Attrs, Attr{Name: name, Value: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convertNode(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	default:
		return nil
	}
}
