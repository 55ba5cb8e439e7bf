// Package root provides the root command for the rsx CLI.
package root

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rsx-cli/internal/cmd/completion"
	"github.com/open-cli-collective/rsx-cli/internal/cmd/configcmd"
	"github.com/open-cli-collective/rsx-cli/internal/cmd/convert"
	"github.com/open-cli-collective/rsx-cli/internal/cmd/highlight"
	initcmd "github.com/open-cli-collective/rsx-cli/internal/cmd/init"
	"github.com/open-cli-collective/rsx-cli/internal/cmd/normalize"
	"github.com/open-cli-collective/rsx-cli/internal/logger"
	"github.com/open-cli-collective/rsx-cli/internal/version"
)

// NewCmdRoot creates the root command for rsx.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsx",
		Short: "Convert and highlight HTML and Dioxus RSX",
		Long: `rsx converts HTML fragments into Dioxus RSX markup and syntax
highlights HTML and RSX source.

Output can be ANSI colored for the terminal, an HTML <pre> block ready to
embed in a page, JSON, or plain text.

Get started by running: rsx convert page.html`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger.SetVerbose(verbose)
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
			logger.Debug("rsx %s (commit: %s)", version.Version, version.Commit)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/rsx/config.yml)")
	cmd.PersistentFlags().StringP("format", "f", "", "output format: ansi, html, json, plain (default from config, else ansi)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "print diagnostics to stderr")

	cmd.SetVersionTemplate("rsx version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(normalize.NewCmdNormalize())
	cmd.AddCommand(highlight.NewCmdHighlight())
	cmd.AddCommand(convert.NewCmdConvert())
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
