// markup.go implements the single-pass highlighter for RSX markup source.
package syntax

import "strings"

type markupMode int

const (
	markupDefault markupMode = iota
	markupString
	markupComment
)

const lineComment = "//"

// HighlightMarkup annotates RSX source: string literals, line comments and
// braces are wrapped, and every other lexeme is categorised by Classify.
// Unterminated strings are emitted unwrapped; unterminated comments run to
// end of input.
func HighlightMarkup(src string) Annotated {
	b := newBuilder(len(src))
	mode := markupDefault
	start := 0
	pos := 0

	for pos < len(src) {
		c := src[pos]

		switch mode {
		case markupComment:
			if c == '\n' {
				pos++
				b.add(Comment, src[start:pos])
				start = pos
				mode = markupDefault
				continue
			}

		case markupString:
			if c == '"' && !escaped(src, pos) {
				pos++
				b.add(StringLiteral, src[start:pos])
				start = pos
				mode = markupDefault
				continue
			}

		case markupDefault:
			switch {
			case strings.HasPrefix(src[pos:], lineComment):
				addLexeme(b, src[start:pos])
				start = pos
				pos += len(lineComment)
				mode = markupComment
				continue
			case c == '"' && !escaped(src, pos):
				addLexeme(b, src[start:pos])
				start = pos
				pos++
				mode = markupString
				continue
			case c == '{' || c == '}':
				addLexeme(b, src[start:pos])
				b.add(Brace, src[pos:pos+1])
				pos++
				start = pos
				continue
			case c == '(' || c == ')' || c == ':' || c == ',' || isSpaceAt(src, pos):
				addLexeme(b, src[start:pos])
				n := runeLen(src, pos)
				b.add(None, src[pos:pos+n])
				pos += n
				start = pos
				continue
			}
		}

		pos++
	}

	rest := src[start:]
	switch mode {
	case markupDefault:
		addLexeme(b, rest)
	case markupString:
		b.add(None, rest)
	case markupComment:
		b.add(Comment, rest)
	}

	return b.result()
}

// addLexeme classifies a lexeme and emits it; PlainText lexemes are not
// wrapped.
func addLexeme(b *builder, lexeme string) {
	c := Classify(lexeme)
	if c == PlainText {
		c = None
	}
	b.add(c, lexeme)
}

// escaped reports whether the byte at pos is preceded by an odd number of
// backslashes.
func escaped(src string, pos int) bool {
	n := 0
	for i := pos - 1; i >= 0 && src[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
