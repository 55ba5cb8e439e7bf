// render.go turns annotated spans into displayable markup.
package syntax

import (
	"html"
	"strings"
)

// Language identifiers accepted by Render.
const (
	LanguageHTML = "html"
	LanguageRSX  = "rsx"
)

// CSSClass maps each category to the class used in rendered markup.
var CSSClass = map[Category]string{
	TagDelimiter:    "text-blue-400",
	TagName:         "text-blue-400",
	Keyword:         "text-blue-400",
	AttributeName:   "text-purple-400",
	AttributeMarker: "text-purple-400",
	AttributeValue:  "text-green-400",
	StringLiteral:   "text-green-400",
	Comment:         "text-gray-500",
	PlainText:       "text-white",
	NumericLiteral:  "text-orange-400",
	Brace:           "text-yellow-500",
}

// RenderMarkup renders spans as <span class='...'> elements. Span text is
// HTML-escaped, so every '<' in the result belongs to a marker and the
// output is safe to embed as trusted markup whatever the input was.
func RenderMarkup(spans Annotated) string {
	var sb strings.Builder
	for _, s := range spans {
		class, ok := CSSClass[s.Category]
		if !ok {
			sb.WriteString(html.EscapeString(s.Text))
			continue
		}
		sb.WriteString("<span class='")
		sb.WriteString(class)
		sb.WriteString("'>")
		sb.WriteString(html.EscapeString(s.Text))
		sb.WriteString("</span>")
	}
	return sb.String()
}

// StripMarkup removes the markers produced by RenderMarkup and unescapes
// the text, recovering the original source.
func StripMarkup(rendered string) string {
	var sb strings.Builder
	for {
		open := strings.IndexByte(rendered, '<')
		if open < 0 {
			sb.WriteString(rendered)
			break
		}
		sb.WriteString(rendered[:open])
		end := strings.IndexByte(rendered[open:], '>')
		if end < 0 {
			sb.WriteString(rendered[open:])
			break
		}
		rendered = rendered[open+end+1:]
	}
	return html.UnescapeString(sb.String())
}

// Block is a highlighted code block ready for display.
type Block struct {
	Language string    `json:"language"`
	Code     string    `json:"-"`
	Spans    Annotated `json:"spans"`
}

// Render highlights code for the given language. Matching is
// case-insensitive; unknown languages produce a single unwrapped span.
func Render(code, language string) Block {
	block := Block{Language: language, Code: code}
	switch strings.ToLower(language) {
	case LanguageHTML:
		block.Spans = HighlightHTML(code)
	case LanguageRSX:
		block.Spans = HighlightMarkup(code)
	default:
		if code != "" {
			block.Spans = Annotated{{Category: None, Text: code}}
		}
	}
	return block
}

// HTML renders the block as a <pre> element that preserves whitespace.
func (b Block) HTML() string {
	var sb strings.Builder
	sb.WriteString(`<pre class="language-`)
	sb.WriteString(html.EscapeString(b.Language))
	sb.WriteString(` overflow-x-auto rounded-lg bg-dark-300/50 p-4 font-mono text-sm" style="white-space: pre;">`)
	sb.WriteString(RenderMarkup(b.Spans))
	sb.WriteString("</pre>")
	return sb.String()
}
