// Package convert provides the convert command.
package convert

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rsx-cli/internal/cmd/input"
	"github.com/open-cli-collective/rsx-cli/internal/config"
	"github.com/open-cli-collective/rsx-cli/internal/logger"
	"github.com/open-cli-collective/rsx-cli/pkg/rsx"
	"github.com/open-cli-collective/rsx-cli/pkg/syntax"
)

// Source and target formats.
const (
	FromAuto     = "auto"
	FromHTML     = "html"
	FromMarkdown = "markdown"

	ToRSX      = "rsx"
	ToMarkdown = "markdown"
)

type convertOptions struct {
	from        string
	to          string
	indent      int
	macro       bool
	noNormalize bool
	highlight   bool
	globals     input.Globals
	stdin       io.Reader
	out         io.Writer
}

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert HTML or markdown to RSX",
		Long: `Convert an HTML fragment into Dioxus RSX.

The input is normalized first (attribute aliases are rewritten and text
whitespace is collapsed), parsed as an HTML fragment, and printed as RSX.
Markdown input is rendered to HTML before conversion. HTML can also be
converted to markdown with --to markdown.`,
		Example: `  # Convert an HTML file
  rsx convert page.html

  # Wrap the output in rsx! { } with two-space indentation
  rsx convert page.html --macro --indent 2

  # Convert markdown and highlight the result
  rsx convert README.md --highlight

  # HTML to markdown
  echo '<h1>Title</h1>' | rsx convert --to markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.globals = input.GlobalsFrom(cmd)
			opts.stdin = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runConvert(cmd.Context(), input.Arg(args), opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", FromAuto, "input format: auto, html, markdown")
	cmd.Flags().StringVar(&opts.to, "to", ToRSX, "output format: rsx, markdown")
	cmd.Flags().IntVar(&opts.indent, "indent", 0, "spaces per nesting level (default from config, else 4)")
	cmd.Flags().BoolVar(&opts.macro, "macro", false, "wrap the output in rsx! { }")
	cmd.Flags().BoolVar(&opts.noNormalize, "no-normalize", false, "parse the input without normalizing it first")
	cmd.Flags().BoolVar(&opts.highlight, "highlight", false, "syntax highlight the RSX output")

	return cmd
}

func runConvert(ctx context.Context, path string, opts *convertOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	from, err := resolveFrom(opts.from, path)
	if err != nil {
		return err
	}
	if opts.to != ToRSX && opts.to != ToMarkdown {
		return fmt.Errorf("invalid target %q: must be one of rsx, markdown", opts.to)
	}
	if opts.indent < 0 || opts.indent > config.MaxIndent {
		return fmt.Errorf("invalid indent %d: must be between 1 and %d", opts.indent, config.MaxIndent)
	}

	cfg, err := opts.globals.Config()
	if err != nil {
		return err
	}

	data, name, err := input.Read(path, opts.stdin)
	if err != nil {
		return err
	}
	logger.Debug("converting %s from %s to %s (%d bytes)", name, from, opts.to, len(data))

	start := time.Now()
	out, err := convert(ctx, from, string(data), opts, cfg)
	if err != nil {
		return fmt.Errorf("failed to convert: %w", err)
	}
	logger.Elapsed("convert", start)

	renderer := opts.globals.Renderer(cfg, opts.out)
	if opts.highlight && opts.to == ToRSX {
		return renderer.RenderBlock(syntax.Render(out, syntax.LanguageRSX))
	}
	if opts.highlight {
		logger.Warn("--highlight only applies to RSX output")
	}
	return renderer.RenderOutput(opts.to, out)
}

func convert(ctx context.Context, from, src string, opts *convertOptions, cfg *config.Config) (string, error) {
	html := src
	if from == FromMarkdown {
		var err error
		if html, err = rsx.FromMarkdown([]byte(src)); err != nil {
			return "", err
		}
		logger.Debug("rendered markdown to %d bytes of HTML", len(html))
	}

	if opts.to == ToMarkdown {
		return rsx.ToMarkdown(html)
	}

	indent := opts.indent
	if indent == 0 {
		indent = cfg.Indent
	}
	return rsx.Convert(ctx, html, rsx.Options{
		Indent:        indent,
		WrapMacro:     opts.macro || cfg.WrapMacro,
		Aliases:       cfg.Aliases,
		SkipNormalize: opts.noNormalize,
	})
}

// resolveFrom returns the explicit source format, or picks markdown for
// .md and .markdown files and HTML otherwise.
func resolveFrom(from, path string) (string, error) {
	switch from {
	case FromHTML, FromMarkdown:
		return from, nil
	case FromAuto, "":
	default:
		return "", fmt.Errorf("invalid source %q: must be one of auto, html, markdown", from)
	}

	switch input.Ext(path) {
	case "md", "markdown":
		return FromMarkdown, nil
	default:
		return FromHTML, nil
	}
}
