// tag.go highlights the interior of a single HTML tag.
package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// HighlightTagInterior annotates the raw interior of one tag, without its
// angle brackets. The first whitespace-delimited piece is the tag name
// (including a leading / for closing tags); every later piece is an
// attribute. For name=value pieces only the name is wrapped, the rest is
// left for the caller to treat as the value.
func HighlightTagInterior(text string) Annotated {
	b := newBuilder(len(text))
	highlightTagInterior(b, text, false)
	return b.result()
}

// highlightTagInterior writes the spans for text into b. nameSeen reports
// whether the tag name was already emitted by an earlier flush of the same
// tag; the returned value is the updated flag.
func highlightTagInterior(b *builder, text string, nameSeen bool) bool {
	pos := 0
	for pos < len(text) {
		start := pos
		if isSpaceAt(text, pos) {
			for pos < len(text) && isSpaceAt(text, pos) {
				pos += runeLen(text, pos)
			}
			b.add(None, text[start:pos])
			continue
		}

		for pos < len(text) && !isSpaceAt(text, pos) {
			pos += runeLen(text, pos)
		}
		piece := text[start:pos]

		if !nameSeen {
			b.add(TagName, piece)
			nameSeen = true
			continue
		}

		if eq := strings.IndexByte(piece, '='); eq >= 0 {
			b.add(AttributeName, piece[:eq])
			b.add(None, piece[eq:])
			continue
		}
		b.add(AttributeName, piece)
	}
	return nameSeen
}

func isSpaceAt(s string, i int) bool {
	c := s[i]
	if c < utf8.RuneSelf {
		return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsSpace(r)
}

func runeLen(s string, i int) int {
	if s[i] < utf8.RuneSelf {
		return 1
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return size
}
