package rsx

import (
	"fmt"
	"strings"
	"unicode"
)

const defaultIndent = 4

// Printer renders a Document as source text.
type Printer interface {
	Print(doc *Document) (string, error)
}

// RSXPrinter prints Documents as Dioxus RSX.
type RSXPrinter struct {
	Indent    int  // spaces per nesting level; 0 means 4
	WrapMacro bool // wrap the output in rsx! { ... }
}

var _ Printer = RSXPrinter{}

// rustKeywords are attribute names that need a raw identifier in RSX.
var rustKeywords = map[string]bool{
	"as": true, "async": true, "for": true, "loop": true, "type": true,
	"move": true, "ref": true, "match": true, "in": true, "use": true,
}

// Print renders doc. Whitespace-only text is skipped. Outside <pre> and
// <textarea>, the first child's text loses its leading whitespace and the
// last child's its trailing whitespace; spacing between inline siblings
// is kept.
func (p RSXPrinter) Print(doc *Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("%w: nil document", ErrMalformed)
	}

	indent := p.Indent
	if indent <= 0 {
		indent = defaultIndent
	}
	w := &rsxWriter{indent: indent}

	depth := 0
	if p.WrapMacro {
		w.line(0, "rsx! {")
		depth = 1
	}
	if err := w.children(doc.Nodes, depth, false); err != nil {
		return "", err
	}
	if p.WrapMacro {
		w.line(0, "}")
	}

	return strings.TrimSuffix(w.sb.String(), "\n"), nil
}

type rsxWriter struct {
	sb     strings.Builder
	indent int
}

func (w *rsxWriter) line(depth int, s string) {
	w.sb.WriteString(strings.Repeat(" ", depth*w.indent))
	w.sb.WriteString(s)
	w.sb.WriteByte('\n')
}

func (w *rsxWriter) children(nodes []*Node, depth int, raw bool) error {
	for i, n := range nodes {
		if n == nil {
			return fmt.Errorf("%w: nil node", ErrMalformed)
		}
		if n.Kind == TextNode {
			w.text(n.Text, depth, raw, i == 0, i == len(nodes)-1)
			continue
		}
		if err := w.node(n, depth, raw); err != nil {
			return err
		}
	}
	return nil
}

func (w *rsxWriter) text(text string, depth int, raw, first, last bool) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if !raw && first {
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
	}
	if !raw && last {
		text = strings.TrimRightFunc(text, unicode.IsSpace)
	}
	w.line(depth, quote(text))
}

func (w *rsxWriter) node(n *Node, depth int, raw bool) error {
	switch n.Kind {
	case TextNode:
		w.text(n.Text, depth, raw, true, true)

	case CommentNode:
		for _, l := range strings.Split(strings.TrimSpace(n.Text), "\n") {
			w.line(depth, strings.TrimRight("// "+strings.TrimSpace(l), " "))
		}

	case ElementNode:
		if n.Name == "" {
			return fmt.Errorf("%w: element without a name", ErrMalformed)
		}
		if len(n.Attrs) == 0 && !hasContent(n) {
			w.line(depth, n.Name+" {}")
			return nil
		}
		w.line(depth, n.Name+" {")
		for _, a := range n.Attrs {
			w.line(depth+1, attrKey(a.Name)+": "+quote(a.Value)+",")
		}
		childRaw := raw || n.Name == "pre" || n.Name == "textarea"
		if err := w.children(n.Children, depth+1, childRaw); err != nil {
			return err
		}
		w.line(depth, "}")

	default:
		return fmt.Errorf("%w: unknown node kind %d", ErrMalformed, n.Kind)
	}
	return nil
}

// hasContent reports whether any child of n would be printed.
func hasContent(n *Node) bool {
	for _, c := range n.Children {
		if c == nil || c.Kind != TextNode {
			return true
		}
		if strings.TrimSpace(c.Text) != "" {
			return true
		}
	}
	return false
}

func attrKey(name string) string {
	if rustKeywords[name] {
		return "r#" + name
	}
	if strings.ContainsAny(name, "-:") {
		return quote(name)
	}
	return name
}

// quote renders s as an RSX string literal. Braces are doubled because RSX
// strings are format strings.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '{':
			sb.WriteString("{{")
		case '}':
			sb.WriteString("}}")
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
