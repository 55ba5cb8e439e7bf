// classify.go categorises single lexemes of RSX markup source.
package syntax

import "strings"

// markupKeywords are the element names the markup highlighter recognises.
var markupKeywords = map[string]bool{
	"rsx": true,
	// structure
	"div": true, "span": true, "p": true, "nav": true, "main": true,
	"header": true, "footer": true, "section": true, "article": true, "aside": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	// content
	"a": true, "img": true, "pre": true, "code": true, "strong": true, "em": true,
	"ul": true, "ol": true, "li": true, "table": true, "thead": true, "tbody": true,
	"tr": true, "td": true, "th": true, "br": true, "hr": true, "blockquote": true,
	// forms
	"button": true, "input": true, "textarea": true, "form": true, "label": true,
	"select": true, "option": true,
}

// markupAttributes are attribute identifiers that are highlighted even
// without a trailing colon.
var markupAttributes = map[string]bool{
	"class": true,
	"style": true,
	"id":    true,
	"href":  true,
	"src":   true,
}

// Classify returns the category of one lexeme of markup source. Lexemes
// that are empty after trimming, or that match nothing, are PlainText and
// are emitted without a marker.
func Classify(lexeme string) Category {
	clean := strings.TrimSpace(lexeme)
	if clean == "" {
		return PlainText
	}
	if markupKeywords[clean] {
		return Keyword
	}
	if strings.HasSuffix(clean, ":") || markupAttributes[clean] {
		return AttributeMarker
	}
	if isNumeric(clean) {
		return NumericLiteral
	}
	return PlainText
}

// isNumeric reports whether s holds only digits and dots. A lone "." or
// "..." counts as numeric.
func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if (s[i] < '0' || s[i] > '9') && s[i] != '.' {
			return false
		}
	}
	return true
}
