package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/rsx-cli/internal/cmd/input"
	"github.com/open-cli-collective/rsx-cli/internal/config"
)

func newOpts(t *testing.T, format, stdin string) (*normalizeOptions, *bytes.Buffer) {
	t.Helper()
	t.Setenv("RSX_FORMAT", "")
	t.Setenv("RSX_INDENT", "")
	t.Setenv("RSX_WRAP_MACRO", "")

	var out bytes.Buffer
	return &normalizeOptions{
		globals: input.Globals{
			ConfigPath: filepath.Join(t.TempDir(), "config.yml"),
			Format:     format,
			NoColor:    true,
		},
		stdin: strings.NewReader(stdin),
		out:   &out,
	}, &out
}

func TestRunNormalize_Stdin(t *testing.T) {
	opts, out := newOpts(t, "plain", `<div className="container">   Hello     World   </div>`)

	require.NoError(t, runNormalize("", opts))
	assert.Equal(t, "<div class=\"container\"> Hello World </div>\n", out.String())
}

func TestRunNormalize_File(t *testing.T) {
	opts, out := newOpts(t, "plain", "")
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<ul>\n  <li>a</li>\n  <li>b</li>\n</ul>"), 0644))

	require.NoError(t, runNormalize(path, opts))
	assert.Equal(t, "<ul><li>a</li><li>b</li></ul>\n", out.String())
}

func TestRunNormalize_ConfiguredAliases(t *testing.T) {
	opts, out := newOpts(t, "plain", `<label htmlFor="name" className="l">Name</label>`)
	require.NoError(t, (&config.Config{Aliases: map[string]string{"htmlFor": "for"}}).Save(opts.globals.ConfigPath))

	require.NoError(t, runNormalize("-", opts))
	assert.Equal(t, "<label for=\"name\" class=\"l\">Name</label>\n", out.String())
}

func TestRunNormalize_JSON(t *testing.T) {
	opts, out := newOpts(t, "json", `<p className="x">a  b</p>`)

	require.NoError(t, runNormalize("", opts))

	var result map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "html", result["format"])
	assert.Equal(t, `<p class="x">a b</p>`, result["output"])
}

func TestRunNormalize_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		opts, _ := newOpts(t, "plain", "")
		err := runNormalize(filepath.Join(t.TempDir(), "missing.html"), opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("alias chaining through a built-in", func(t *testing.T) {
		opts, _ := newOpts(t, "plain", `<p className="a">`)
		require.NoError(t, (&config.Config{Aliases: map[string]string{"class": "klass"}}).Save(opts.globals.ConfigPath))

		err := runNormalize("", opts)
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrInvalidAlias))
	})

	t.Run("invalid format", func(t *testing.T) {
		opts, _ := newOpts(t, "yaml", "<p></p>")
		err := runNormalize("", opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})
}
