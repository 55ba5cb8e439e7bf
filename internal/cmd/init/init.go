// Package init provides the init command for rsx.
package init

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rsx-cli/internal/config"
	"github.com/open-cli-collective/rsx-cli/internal/view"
)

// prompter fills cfg interactively. confirmOverwrite is asked first when
// a config file already exists.
type prompter interface {
	confirmOverwrite(path string) (bool, error)
	fill(cfg *config.Config) error
}

type initOptions struct {
	configPath string
	force      bool
	noColor    bool
	out        io.Writer
	prompt     prompter
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize rsx configuration",
		Long: `Initialize rsx with your preferred defaults.

This command will guide you through choosing the default output format,
the RSX indentation, whether to wrap output in rsx! { }, and any extra
attribute aliases to rewrite during normalization. The configuration
will be saved to ~/.config/rsx/config.yml.`,
		Example: `  # Interactive setup
  rsx init

  # Overwrite an existing config without asking
  rsx init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.out = cmd.OutOrStdout()
			opts.prompt = huhPrompter{}
			return runInit(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing config file without asking")

	return cmd
}

func runInit(opts *initOptions) error {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	r := view.NewRenderer(view.FormatANSI, opts.noColor)
	if opts.out != nil {
		r.SetWriter(opts.out)
	}

	// Existing values become the form's defaults.
	cfg, err := config.Load(configPath)
	switch {
	case err == nil:
		if !opts.force {
			overwrite, err := opts.prompt.confirmOverwrite(configPath)
			if err != nil {
				return err
			}
			if !overwrite {
				r.RenderText("Initialization cancelled.")
				return nil
			}
		}
	case errors.Is(err, os.ErrNotExist):
		cfg = &config.Config{}
	default:
		return err
	}
	cfg.ApplyDefaults()

	if err := opts.prompt.fill(cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	r.Success(fmt.Sprintf("Configuration saved to %s", configPath))
	r.RenderText("\nYou're all set! Try running:")
	r.RenderText("  rsx convert page.html")
	r.RenderText("  rsx highlight page.html")

	return nil
}

type huhPrompter struct{}

func (huhPrompter) confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title("Configuration already exists").
		Description(fmt.Sprintf("Overwrite %s?", path)).
		Value(&overwrite).
		Run()
	return overwrite, err
}

func (huhPrompter) fill(cfg *config.Config) error {
	indent := strconv.Itoa(cfg.Indent)
	aliases := formatAliases(cfg.Aliases)

	formatOptions := make([]huh.Option[string], 0, len(config.ValidFormats))
	for _, f := range config.ValidFormats {
		formatOptions = append(formatOptions, huh.NewOption(f, f))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Description("Used when --format is not given").
				Options(formatOptions...).
				Value(&cfg.Format),

			huh.NewInput().
				Title("Indent").
				Description(fmt.Sprintf("Spaces per RSX nesting level (1-%d)", config.MaxIndent)).
				Value(&indent).
				Validate(func(s string) error {
					_, err := parseIndent(s)
					return err
				}),

			huh.NewConfirm().
				Title("Wrap output in rsx! { }?").
				Value(&cfg.WrapMacro),

			huh.NewText().
				Title("Extra attribute aliases (optional)").
				Description("One per line as alias=name, e.g. htmlFor=for").
				Value(&aliases).
				Validate(func(s string) error {
					_, err := parseAliases(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	n, err := parseIndent(indent)
	if err != nil {
		return err
	}
	cfg.Indent = n

	cfg.Aliases, err = parseAliases(aliases)
	return err
}

func parseIndent(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > config.MaxIndent {
		return 0, fmt.Errorf("indent must be a number between 1 and %d", config.MaxIndent)
	}
	return n, nil
}

// parseAliases reads alias=name lines. Blank lines are skipped.
func parseAliases(s string) (map[string]string, error) {
	var aliases map[string]string
	for i, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		from, to, ok := strings.Cut(line, "=")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("line %d: expected alias=name, got %q", i+1, line)
		}
		if aliases == nil {
			aliases = make(map[string]string)
		}
		aliases[from] = to
	}
	return aliases, nil
}

func formatAliases(aliases map[string]string) string {
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+aliases[k])
	}
	return strings.Join(lines, "\n")
}
