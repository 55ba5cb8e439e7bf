// Package highlight provides the highlight command.
package highlight

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rsx-cli/internal/cmd/input"
	"github.com/open-cli-collective/rsx-cli/internal/logger"
	"github.com/open-cli-collective/rsx-cli/pkg/syntax"
)

type highlightOptions struct {
	lang    string
	globals input.Globals
	stdin   io.Reader
	out     io.Writer
}

// NewCmdHighlight creates the highlight command.
func NewCmdHighlight() *cobra.Command {
	opts := &highlightOptions{}

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Syntax highlight HTML or RSX",
		Long: `Split HTML or RSX source into categorized spans and print them.

The --format flag selects ANSI colors, an HTML <pre> block with Tailwind
classes, a JSON span list, or plain text.

The language defaults from the file extension (.html/.htm for HTML,
.rsx/.rs for RSX) and falls back to HTML.`,
		Example: `  # Highlight an HTML file in the terminal
  rsx highlight page.html

  # Highlight RSX from stdin as HTML markup
  rsx convert page.html | rsx highlight --lang rsx -f html

  # Dump spans as JSON
  rsx highlight page.rsx -f json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.globals = input.GlobalsFrom(cmd)
			opts.stdin = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runHighlight(input.Arg(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "source language: html, rsx (default from file extension)")

	return cmd
}

func runHighlight(path string, opts *highlightOptions) error {
	lang, err := resolveLanguage(opts.lang, path)
	if err != nil {
		return err
	}

	cfg, err := opts.globals.Config()
	if err != nil {
		return err
	}

	data, name, err := input.Read(path, opts.stdin)
	if err != nil {
		return err
	}
	logger.Debug("highlighting %s as %s (%d bytes)", name, lang, len(data))

	start := time.Now()
	block := syntax.Render(strings.TrimRight(string(data), "\n"), lang)
	logger.Elapsed("highlight", start)
	logger.Debug("%d spans", len(block.Spans))

	return opts.globals.Renderer(cfg, opts.out).RenderBlock(block)
}

// resolveLanguage returns the explicit language, or guesses one from the
// file extension.
func resolveLanguage(lang, path string) (string, error) {
	switch strings.ToLower(lang) {
	case syntax.LanguageHTML:
		return syntax.LanguageHTML, nil
	case syntax.LanguageRSX:
		return syntax.LanguageRSX, nil
	case "":
	default:
		return "", fmt.Errorf("invalid language %q: must be one of html, rsx", lang)
	}

	switch input.Ext(path) {
	case "rsx", "rs":
		return syntax.LanguageRSX, nil
	default:
		return syntax.LanguageHTML, nil
	}
}
