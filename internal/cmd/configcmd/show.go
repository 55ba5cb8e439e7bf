package configcmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rsx-cli/internal/config"
	"github.com/open-cli-collective/rsx-cli/internal/view"
)

type showOptions struct {
	configPath string
	format     string
	noColor    bool
	out        io.Writer
}

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective rsx configuration and where each value comes from.`,
		Example: `  # Show current config
  rsx config show

  # As JSON
  rsx config show -f json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.format, _ = cmd.Flags().GetString("format")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.out = cmd.OutOrStdout()
			return runShow(opts)
		},
	}

	return cmd
}

func runShow(opts *showOptions) error {
	if err := view.ValidateFormat(opts.format); err != nil {
		return err
	}

	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	source := func(envVar string, inFile bool) string {
		if envVar != "" && os.Getenv(envVar) != "" {
			return envVar
		}
		if inFile {
			return "config"
		}
		return "default"
	}

	rows := [][]string{
		{"format", cfg.Format, source("RSX_FORMAT", fileCfg.Format != "")},
		{"indent", strconv.Itoa(cfg.Indent), source("RSX_INDENT", fileCfg.Indent != 0)},
		{"wrap_macro", strconv.FormatBool(cfg.WrapMacro), source("RSX_WRAP_MACRO", fileCfg.WrapMacro)},
	}

	aliases := make([]string, 0, len(cfg.Aliases))
	for from := range cfg.Aliases {
		aliases = append(aliases, from)
	}
	sort.Strings(aliases)
	for _, from := range aliases {
		rows = append(rows, []string{"alias " + from, cfg.Aliases[from], "config"})
	}

	r := view.NewRenderer(view.Format(opts.format), opts.noColor)
	if opts.out != nil {
		r.SetWriter(opts.out)
	}
	r.RenderTable([]string{"KEY", "VALUE", "SOURCE"}, rows)

	if r.Format() == view.FormatJSON || r.Format() == view.FormatPlain {
		return nil
	}

	out := opts.out
	if out == nil {
		out = os.Stdout
	}
	dim := color.New(color.Faint)
	_, _ = dim.Fprintf(out, "\nConfig file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(out, "(file not found)")
	}
	if err := cfg.Validate(); err != nil {
		r.Error(err.Error())
	}

	return nil
}
