package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightHTML_EmptyInput(t *testing.T) {
	spans := HighlightHTML("")
	assert.Empty(t, spans)
	assert.Equal(t, "", spans.Text())
}

func TestHighlightHTML_SimpleElement(t *testing.T) {
	spans := HighlightHTML("<p>Hi</p>")

	assert.Equal(t, Annotated{
		{TagDelimiter, "<"},
		{TagName, "p"},
		{TagDelimiter, ">"},
		{PlainText, "Hi"},
		{TagDelimiter, "<"},
		{TagName, "/p"},
		{TagDelimiter, ">"},
	}, spans)
}

func TestHighlightHTML_Attributes(t *testing.T) {
	spans := HighlightHTML(`<a href="x.html" target='_blank' download>go</a>`)

	assert.Equal(t, []string{"a", "/a"}, spans.Of(TagName))
	assert.Equal(t, []string{"href", "target", "download"}, spans.Of(AttributeName))
	assert.Equal(t, []string{`"x.html"`, `'_blank'`}, spans.Of(AttributeValue))
	assert.Equal(t, []string{"go"}, spans.Of(PlainText))
}

func TestHighlightHTML_AttributeValueKeepsOtherQuote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value string
	}{
		{"double inside single", `<p title='say "hi"'>`, `'say "hi"'`},
		{"single inside double", `<p title="it's">`, `"it's"`},
		{"closing bracket inside value", `<p data-x="a>b">`, `"a>b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := HighlightHTML(tt.input)
			assert.Equal(t, []string{tt.value}, spans.Of(AttributeValue))
			assert.Equal(t, tt.input, spans.Text())
		})
	}
}

func TestHighlightHTML_Comment(t *testing.T) {
	spans := HighlightHTML("text <!-- a <b> c --> more")

	assert.Equal(t, []string{"<!-- a <b> c -->"}, spans.Of(Comment))
	assert.Equal(t, []string{"text ", " more"}, spans.Of(PlainText))
	assert.Empty(t, spans.Of(TagName))
}

func TestHighlightHTML_WhitespaceTextIsUnwrapped(t *testing.T) {
	spans := HighlightHTML("<ul>\n  <li>x</li>\n</ul>")

	assert.Equal(t, []string{"x"}, spans.Of(PlainText))
	for _, s := range spans {
		if s.Category == None {
			assert.Regexp(t, `^\s+$`, s.Text)
		}
	}
}

func TestHighlightHTML_SpacedAttributes(t *testing.T) {
	spans := HighlightHTML(`<input  type = "text"  disabled >`)

	assert.Equal(t, []string{"input"}, spans.Of(TagName))
	assert.Equal(t, []string{"type", "disabled"}, spans.Of(AttributeName))
	assert.Equal(t, []string{`"text"`}, spans.Of(AttributeValue))
}

func TestHighlightHTML_UnquotedValue(t *testing.T) {
	spans := HighlightHTML(`<td colspan=2>`)

	assert.Equal(t, []string{"colspan"}, spans.Of(AttributeName))
	assert.Empty(t, spans.Of(AttributeValue))
	assert.Equal(t, "<td colspan=2>", spans.Text())
}

func TestHighlightHTML_Truncated(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		category Category
		tail     string
	}{
		{"unterminated comment", "<!-- unterminated", Comment, "<!-- unterminated"},
		{"unterminated tag", "<div class", AttributeName, "class"},
		{"unterminated value", `<div class="a b`, AttributeValue, `"a b`},
		{"trailing text", "<b>x</b> tail", PlainText, " tail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := HighlightHTML(tt.input)
			require.NotEmpty(t, spans)
			last := spans[len(spans)-1]
			assert.Equal(t, tt.category, last.Category)
			assert.Equal(t, tt.tail, last.Text)
			assert.Equal(t, tt.input, spans.Text())
		})
	}
}

func TestHighlightHTML_DoctypeAndLoneBracketStayText(t *testing.T) {
	spans := HighlightHTML("<!DOCTYPE html>")
	assert.Equal(t, Annotated{{PlainText, "<!DOCTYPE html>"}}, spans)

	spans = HighlightHTML("a <")
	assert.Equal(t, Annotated{{PlainText, "a <"}}, spans)
}

func TestHighlightTagInterior(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Annotated
	}{
		{
			name:  "empty",
			input: "",
			want:  Annotated{},
		},
		{
			name:  "closing tag",
			input: "/div",
			want:  Annotated{{TagName, "/div"}},
		},
		{
			name:  "name and attributes",
			input: "img  src=x.png alt",
			want: Annotated{
				{TagName, "img"},
				{None, "  "},
				{AttributeName, "src"},
				{None, "=x.png "},
				{AttributeName, "alt"},
			},
		},
		{
			name:  "value with equals",
			input: "a href=x?a=b",
			want: Annotated{
				{TagName, "a"},
				{None, " "},
				{AttributeName, "href"},
				{None, "=x?a=b"},
			},
		},
		{
			name:  "leading whitespace",
			input: " p",
			want:  Annotated{{None, " "}, {TagName, "p"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HighlightTagInterior(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.Text())
		})
	}
}
