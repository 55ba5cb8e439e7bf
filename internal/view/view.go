// Package view provides output formatting for rsx commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/open-cli-collective/rsx-cli/pkg/syntax"
)

// Format represents an output format.
type Format string

const (
	FormatANSI  Format = "ansi"
	FormatHTML  Format = "html"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ValidFormats returns the accepted output format names.
func ValidFormats() []string {
	return []string{string(FormatANSI), string(FormatHTML), string(FormatJSON), string(FormatPlain)}
}

// ValidateFormat returns an error if format is not empty and not one of
// ValidFormats.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range ValidFormats() {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q: must be one of %s", format, strings.Join(ValidFormats(), ", "))
}

// palette colours each category in ANSI output. Categories without an
// entry are printed as is.
var palette = map[syntax.Category]*color.Color{
	syntax.TagDelimiter:    color.New(color.FgBlue),
	syntax.TagName:         color.New(color.FgBlue),
	syntax.Keyword:         color.New(color.FgBlue, color.Bold),
	syntax.AttributeName:   color.New(color.FgMagenta),
	syntax.AttributeMarker: color.New(color.FgMagenta),
	syntax.AttributeValue:  color.New(color.FgGreen),
	syntax.StringLiteral:   color.New(color.FgGreen),
	syntax.Comment:         color.New(color.FgHiBlack),
	syntax.PlainText:       color.New(color.FgHiWhite),
	syntax.NumericLiteral:  color.New(color.FgHiYellow),
	syntax.Brace:           color.New(color.FgYellow),
}

// Renderer renders data in a specific format.
type Renderer struct {
	format  Format
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a new renderer with the specified format. An empty
// format means ANSI.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	if format == "" {
		format = FormatANSI
	}
	return &Renderer{
		format:  format,
		writer:  os.Stdout,
		noColor: noColor,
	}
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// RenderBlock renders a highlighted code block.
func (r *Renderer) RenderBlock(b syntax.Block) error {
	switch r.format {
	case FormatJSON:
		return r.RenderJSON(b)
	case FormatHTML:
		fmt.Fprintln(r.writer, b.HTML())
	case FormatPlain:
		fmt.Fprintln(r.writer, b.Spans.Text())
	default:
		for _, s := range b.Spans {
			if c, ok := palette[s.Category]; ok && !r.noColor {
				_, _ = c.Fprint(r.writer, s.Text)
				continue
			}
			fmt.Fprint(r.writer, s.Text)
		}
		fmt.Fprintln(r.writer)
	}
	return nil
}

// RenderOutput renders the result of a transformation. JSON output wraps
// the text with the name of the format it is in.
func (r *Renderer) RenderOutput(kind, text string) error {
	if r.format == FormatJSON {
		return r.RenderJSON(map[string]string{"format": kind, "output": text})
	}
	fmt.Fprintln(r.writer, text)
	return nil
}

// RenderTable renders data as a table.
func (r *Renderer) RenderTable(headers []string, rows [][]string) {
	if r.format == FormatJSON {
		r.renderTableAsJSON(headers, rows)
		return
	}

	if r.format == FormatPlain {
		for _, row := range rows {
			fmt.Fprintln(r.writer, strings.Join(row, "\t"))
		}
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(widths) && len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}

	bold := color.New(color.Bold)
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(r.writer, "  ")
		}
		_, _ = bold.Fprint(r.writer, pad(h, widths[i], i == len(headers)-1))
	}
	fmt.Fprintln(r.writer)

	for _, row := range rows {
		for i, val := range row {
			if i > 0 {
				fmt.Fprint(r.writer, "  ")
			}
			last := i == len(row)-1 || i >= len(widths)
			if i < len(widths) {
				val = pad(val, widths[i], last)
			}
			fmt.Fprint(r.writer, val)
		}
		fmt.Fprintln(r.writer)
	}
}

func pad(s string, width int, last bool) string {
	if last || len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func (r *Renderer) renderTableAsJSON(headers []string, rows [][]string) {
	var result []map[string]string
	for _, row := range rows {
		item := make(map[string]string)
		for i, header := range headers {
			if i < len(row) {
				item[strings.ToLower(header)] = row[i]
			}
		}
		result = append(result, item)
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Fprintln(r.writer, string(data))
}

// RenderJSON renders an object as JSON.
func (r *Renderer) RenderJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}

// RenderText renders plain text.
func (r *Renderer) RenderText(text string) {
	fmt.Fprintln(r.writer, text)
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	_, _ = green.Fprintln(r.writer, "✓ "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	_, _ = red.Fprintln(r.writer, "✗ "+msg)
}
