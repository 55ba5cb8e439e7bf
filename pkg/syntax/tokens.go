// tokens.go defines the category markers and annotated output shared by all scanners.
package syntax

import "strings"

// Category is the semantic role of a highlighted span.
type Category int

const (
	None            Category = iota // separator or whitespace, emitted unwrapped
	TagDelimiter                    // < or >
	TagName                         // div, /div
	AttributeName                   // class in class="x"
	AttributeValue                  // "x" including its quotes
	Comment                         // <!-- ... --> or // ...
	PlainText                       // text content between tags
	StringLiteral                   // "..." in markup source
	Keyword                         // element names recognised by the markup
	NumericLiteral                  // 1, 2.5
	Brace                           // { or }
	AttributeMarker                 // class:, style
)

var categoryNames = map[Category]string{
	None:            "none",
	TagDelimiter:    "tagDelimiter",
	TagName:         "tagName",
	AttributeName:   "attributeName",
	AttributeValue:  "attributeValue",
	Comment:         "comment",
	PlainText:       "plainText",
	StringLiteral:   "stringLiteral",
	Keyword:         "keyword",
	NumericLiteral:  "numericLiteral",
	Brace:           "brace",
	AttributeMarker: "attributeMarker",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the category by name so JSON output stays readable.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Span is a contiguous slice of source text tagged with a single category.
type Span struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
}

// Annotated is the ordered span sequence produced by a scan.
// Concatenating the span texts reproduces the scanned input exactly.
type Annotated []Span

// Text returns the source text with every marker stripped.
func (a Annotated) Text() string {
	var sb strings.Builder
	for _, s := range a {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// String renders the spans in marker form. See RenderMarkup.
func (a Annotated) String() string {
	return RenderMarkup(a)
}

// Of returns the texts of all spans with the given category, in order.
func (a Annotated) Of(c Category) []string {
	var out []string
	for _, s := range a {
		if s.Category == c {
			out = append(out, s.Text)
		}
	}
	return out
}

// builder accumulates spans, merging adjacent unwrapped text.
type builder struct {
	spans Annotated
}

func newBuilder(sizeHint int) *builder {
	// Rough guess: one span per eight bytes of input.
	return &builder{spans: make(Annotated, 0, sizeHint/8+1)}
}

func (b *builder) add(c Category, text string) {
	if text == "" {
		return
	}
	if c == None && len(b.spans) > 0 && b.spans[len(b.spans)-1].Category == None {
		b.spans[len(b.spans)-1].Text += text
		return
	}
	b.spans = append(b.spans, Span{Category: c, Text: text})
}

func (b *builder) addAll(spans Annotated) {
	for _, s := range spans {
		b.add(s.Category, s.Text)
	}
}

// addText emits a text run as PlainText unless it is whitespace only.
func (b *builder) addText(text string) {
	if strings.TrimSpace(text) == "" {
		b.add(None, text)
		return
	}
	b.add(PlainText, text)
}

func (b *builder) result() Annotated {
	return b.spans
}
