// html.go implements the single-pass HTML highlighter.
package syntax

import "strings"

type htmlMode int

const (
	htmlText htmlMode = iota
	htmlTag
	htmlAttrValue
	htmlComment
)

// htmlState is the scanner's lexical context. quote is only meaningful in
// htmlAttrValue; nameSeen only inside a tag.
type htmlState struct {
	mode     htmlMode
	quote    byte
	nameSeen bool
}

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// HighlightHTML annotates HTML source with tag, attribute, comment and text
// categories. It accepts any input, including unterminated tags, quotes and
// comments, and never drops or reorders a byte of it.
func HighlightHTML(src string) Annotated {
	b := newBuilder(len(src))
	var st htmlState
	start := 0 // first byte not yet emitted
	pos := 0

	for pos < len(src) {
		c := src[pos]

		switch st.mode {
		case htmlText:
			if strings.HasPrefix(src[pos:], commentOpen) {
				b.addText(src[start:pos])
				start = pos
				pos += len(commentOpen)
				st = htmlState{mode: htmlComment}
				continue
			}
			// A lone '<' at end of input, or '<!' outside a comment, stays text.
			if c == '<' && pos+1 < len(src) && src[pos+1] != '!' {
				b.addText(src[start:pos])
				b.add(TagDelimiter, "<")
				pos++
				start = pos
				st = htmlState{mode: htmlTag}
				continue
			}

		case htmlComment:
			if strings.HasPrefix(src[pos:], commentClose) {
				pos += len(commentClose)
				b.add(Comment, src[start:pos])
				start = pos
				st = htmlState{mode: htmlText}
				continue
			}

		case htmlTag:
			switch {
			case c == '>':
				highlightTagInterior(b, src[start:pos], st.nameSeen)
				b.add(TagDelimiter, ">")
				pos++
				start = pos
				st = htmlState{mode: htmlText}
				continue
			case c == '"' || c == '\'':
				st.nameSeen = highlightTagInterior(b, src[start:pos], st.nameSeen)
				start = pos
				pos++
				st.mode = htmlAttrValue
				st.quote = c
				continue
			case isSpaceAt(src, pos):
				st.nameSeen = highlightTagInterior(b, src[start:pos], st.nameSeen)
				start = pos
				for pos < len(src) && isSpaceAt(src, pos) {
					pos += runeLen(src, pos)
				}
				b.add(None, src[start:pos])
				start = pos
				continue
			}

		case htmlAttrValue:
			if c == st.quote {
				pos++
				b.add(AttributeValue, src[start:pos])
				start = pos
				st.mode = htmlTag
				st.quote = 0
				continue
			}
		}

		pos++
	}

	// Flush the tail as if the pending construct had been closed.
	rest := src[start:]
	switch st.mode {
	case htmlText:
		b.addText(rest)
	case htmlTag:
		highlightTagInterior(b, rest, st.nameSeen)
	case htmlAttrValue:
		b.add(AttributeValue, rest)
	case htmlComment:
		b.add(Comment, rest)
	}

	return b.result()
}
