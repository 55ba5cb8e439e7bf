// normalize.go rewrites attribute aliases and collapses text whitespace in HTML.
package syntax

import (
	"sort"
	"strings"
)

// DefaultAliases maps JSX-style attribute names to their HTML spelling.
var DefaultAliases = map[string]string{
	"className": "class",
}

// Normalizer prepares HTML for structural conversion. Tag markup and quoted
// attribute values pass through byte for byte; only alias attribute names
// and whitespace in text content change.
type Normalizer struct {
	aliases []alias // longest first, so overlapping names match greedily
}

type alias struct {
	from string // alias name followed by '='
	to   string // canonical name followed by '='
}

// NewNormalizer creates a normalizer for the given alias table. A nil
// table means DefaultAliases. Chains are resolved to their final name
// (a→b, b→c becomes a→c, b→c) and aliases caught in a cycle are dropped,
// so no output name is itself rewritten on a later pass.
func NewNormalizer(aliases map[string]string) *Normalizer {
	if aliases == nil {
		aliases = DefaultAliases
	}
	n := &Normalizer{}
	for from := range aliases {
		if from == "" || from == aliases[from] || aliases[from] == "" {
			continue
		}
		to, ok := resolveAlias(aliases, from)
		if !ok {
			continue
		}
		n.aliases = append(n.aliases, alias{from: from + "=", to: to + "="})
	}
	sort.Slice(n.aliases, func(i, j int) bool {
		if len(n.aliases[i].from) != len(n.aliases[j].from) {
			return len(n.aliases[i].from) > len(n.aliases[j].from)
		}
		return n.aliases[i].from < n.aliases[j].from
	})
	return n
}

// resolveAlias follows from through the table until it reaches a name
// that is not an alias. It reports false when the chain loops.
func resolveAlias(aliases map[string]string, from string) (string, bool) {
	seen := map[string]bool{from: true}
	to := aliases[from]
	for {
		next, ok := aliases[to]
		if !ok || next == to || next == "" {
			return to, true
		}
		if seen[to] {
			return "", false
		}
		seen[to] = true
		to = next
	}
}

var defaultNormalizer = NewNormalizer(nil)

// Normalize applies the default alias table. See (*Normalizer).Normalize.
func Normalize(html string) string {
	return defaultNormalizer.Normalize(html)
}

type normMode int

const (
	normText normMode = iota
	normTag
	normQuoted
	normComment
)

// Normalize rewrites aliases found in attribute-name position and collapses
// each whitespace run in text content to a single space. Whitespace right
// after a closing '>' is dropped when the next non-space byte opens a tag.
// Comments are copied verbatim.
func (n *Normalizer) Normalize(html string) string {
	out := make([]byte, 0, len(html))
	mode := normText
	var quote byte
	afterTagClose := false
	pos := 0

	for pos < len(html) {
		c := html[pos]

		switch mode {
		case normText:
			if isSpaceAt(html, pos) {
				end := pos
				for end < len(html) && isSpaceAt(html, end) {
					end += runeLen(html, end)
				}
				betweenTags := afterTagClose && end < len(html) && html[end] == '<'
				if !betweenTags && !endsInSpace(out) {
					out = append(out, ' ')
				}
				afterTagClose = false
				pos = end
				continue
			}
			afterTagClose = false
			if strings.HasPrefix(html[pos:], commentOpen) {
				out = append(out, commentOpen...)
				pos += len(commentOpen)
				mode = normComment
				continue
			}
			if c == '<' {
				mode = normTag
			}

		case normComment:
			if strings.HasPrefix(html[pos:], commentClose) {
				out = append(out, commentClose...)
				pos += len(commentClose)
				mode = normText
				afterTagClose = true
				continue
			}

		case normTag:
			switch {
			case c == '>':
				mode = normText
				afterTagClose = true
			case c == '"' || c == '\'':
				mode = normQuoted
				quote = c
			case pos > 0 && isSpaceAt(html, pos-1):
				if to, skip, ok := n.rewrite(html[pos:]); ok {
					out = append(out, to...)
					pos += skip
					continue
				}
			}

		case normQuoted:
			if c == quote {
				mode = normTag
				quote = 0
			}
		}

		out = append(out, c)
		pos++
	}

	return string(out)
}

// rewrite matches an alias at the start of s, returning the replacement
// and the number of bytes it consumes.
func (n *Normalizer) rewrite(s string) (string, int, bool) {
	for _, a := range n.aliases {
		if strings.HasPrefix(s, a.from) {
			return a.to, len(a.from), true
		}
	}
	return "", 0, false
}

func endsInSpace(out []byte) bool {
	return len(out) > 0 && out[len(out)-1] == ' '
}
