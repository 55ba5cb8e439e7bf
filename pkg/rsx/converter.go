package rsx

import (
	"context"
	"fmt"

	"github.com/open-cli-collective/rsx-cli/pkg/syntax"
)

// Options configures HTML to RSX conversion.
type Options struct {
	// Indent is the number of spaces per nesting level. Zero means 4.
	Indent int
	// WrapMacro wraps the output in rsx! { ... }.
	WrapMacro bool
	// Aliases are extra attribute aliases applied during normalization,
	// on top of syntax.DefaultAliases.
	Aliases map[string]string
	// SkipNormalize feeds the input to the parser unchanged.
	SkipNormalize bool
}

// Converter runs normalize, parse and print in sequence.
type Converter struct {
	Parser     Parser
	Printer    Printer
	normalizer *syntax.Normalizer
}

// NewConverter creates a converter backed by HTMLParser and RSXPrinter.
func NewConverter(opts Options) *Converter {
	c := &Converter{
		Parser:  HTMLParser{},
		Printer: RSXPrinter{Indent: opts.Indent, WrapMacro: opts.WrapMacro},
	}
	if !opts.SkipNormalize {
		c.normalizer = syntax.NewNormalizer(MergeAliases(opts.Aliases))
	}
	return c
}

// Convert turns HTML into RSX. Parse and print failures are returned,
// never masked; empty input converts to empty output.
func (c *Converter) Convert(ctx context.Context, html string) (string, error) {
	if html == "" {
		return "", nil
	}

	if c.normalizer != nil {
		html = c.normalizer.Normalize(html)
	}

	doc, err := c.Parser.Parse(ctx, html)
	if err != nil {
		return "", err
	}

	out, err := c.Printer.Print(doc)
	if err != nil {
		return "", fmt.Errorf("failed to print RSX: %w", err)
	}
	return out, nil
}

// Convert converts html with a one-off Converter.
func Convert(ctx context.Context, html string, opts Options) (string, error) {
	return NewConverter(opts).Convert(ctx, html)
}

// MergeAliases returns syntax.DefaultAliases overlaid with extra.
func MergeAliases(extra map[string]string) map[string]string {
	merged := make(map[string]string, len(syntax.DefaultAliases)+len(extra))
	for k, v := range syntax.DefaultAliases {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
