// Package normalize provides the normalize command.
package normalize

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rsx-cli/internal/cmd/input"
	"github.com/open-cli-collective/rsx-cli/internal/logger"
	"github.com/open-cli-collective/rsx-cli/pkg/syntax"
)

type normalizeOptions struct {
	globals input.Globals
	stdin   io.Reader
	out     io.Writer
}

// NewCmdNormalize creates the normalize command.
func NewCmdNormalize() *cobra.Command {
	opts := &normalizeOptions{}

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Normalize HTML before conversion",
		Long: `Rewrite JSX-style attribute names (className becomes class) and collapse
whitespace in text content. Tag markup and quoted attribute values are
left untouched.

Extra aliases can be configured under "aliases" in the config file.`,
		Example: `  # Normalize a file
  rsx normalize page.html

  # Normalize from stdin
  echo '<div className="a">  hi  </div>' | rsx normalize`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.globals = input.GlobalsFrom(cmd)
			opts.stdin = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runNormalize(input.Arg(args), opts)
		},
	}

	return cmd
}

func runNormalize(path string, opts *normalizeOptions) error {
	cfg, err := opts.globals.Config()
	if err != nil {
		return err
	}

	data, name, err := input.Read(path, opts.stdin)
	if err != nil {
		return err
	}
	logger.Debug("normalizing %s (%d bytes)", name, len(data))

	start := time.Now()
	out := syntax.NewNormalizer(cfg.MergedAliases()).Normalize(string(data))
	logger.Elapsed("normalize", start)

	return opts.globals.Renderer(cfg, opts.out).RenderOutput(syntax.LanguageHTML, out)
}
