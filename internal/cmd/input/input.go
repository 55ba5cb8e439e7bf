// Package input provides helpers shared by the rsx commands: reading the
// source document and resolving global flags against the config file.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/rsx-cli/internal/config"
	"github.com/open-cli-collective/rsx-cli/internal/view"
)

// StdinName is the display name used for standard input.
const StdinName = "<stdin>"

// Read returns the contents of the file at path. An empty path or "-"
// reads from stdin, falling back to os.Stdin when stdin is nil.
func Read(path string, stdin io.Reader) (data []byte, name string, err error) {
	if path == "" || path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, StdinName, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, StdinName, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to read file: %w", err)
	}
	return data, path, nil
}

// Arg returns the first positional argument, or "" when there is none.
func Arg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// Ext returns the lower-cased extension of path, without the dot.
func Ext(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// Globals holds the persistent flags every command receives.
type Globals struct {
	ConfigPath string
	Format     string
	NoColor    bool
	Verbose    bool
}

// GlobalsFrom reads the persistent flags from cmd.
func GlobalsFrom(cmd *cobra.Command) Globals {
	var g Globals
	g.ConfigPath, _ = cmd.Flags().GetString("config")
	g.Format, _ = cmd.Flags().GetString("format")
	g.NoColor, _ = cmd.Flags().GetBool("no-color")
	g.Verbose, _ = cmd.Flags().GetBool("verbose")
	return g
}

// Config loads the config file, applies environment overrides and then
// the --format flag, and validates the result.
func (g Globals) Config() (*config.Config, error) {
	if err := view.ValidateFormat(g.Format); err != nil {
		return nil, err
	}

	path := g.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w (run 'rsx init' to configure)", err)
	}
	if g.Format != "" {
		cfg.Format = g.Format
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'rsx init' to configure)", err)
	}
	return cfg, nil
}

// Renderer creates a renderer for the resolved output format.
func (g Globals) Renderer(cfg *config.Config, w io.Writer) *view.Renderer {
	r := view.NewRenderer(view.Format(cfg.Format), g.NoColor)
	if w != nil {
		r.SetWriter(w)
	}
	return r
}
