package input

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/rsx-cli/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("RSX_FORMAT", "")
	t.Setenv("RSX_INDENT", "")
	t.Setenv("RSX_WRAP_MACRO", "")
}

func TestRead(t *testing.T) {
	t.Run("stdin for empty path", func(t *testing.T) {
		data, name, err := Read("", strings.NewReader("<p>hi</p>"))
		require.NoError(t, err)
		assert.Equal(t, "<p>hi</p>", string(data))
		assert.Equal(t, StdinName, name)
	})

	t.Run("stdin for dash", func(t *testing.T) {
		data, _, err := Read("-", strings.NewReader("x"))
		require.NoError(t, err)
		assert.Equal(t, "x", string(data))
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte("<div></div>"), 0644))

		data, name, err := Read(path, strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, "<div></div>", string(data))
		assert.Equal(t, path, name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Read(filepath.Join(t.TempDir(), "missing.html"), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.Contains(t, err.Error(), "failed to read file")
	})
}

func TestArgAndExt(t *testing.T) {
	assert.Equal(t, "", Arg(nil))
	assert.Equal(t, "a.html", Arg([]string{"a.html"}))

	assert.Equal(t, "html", Ext("page.HTML"))
	assert.Equal(t, "md", Ext("/tmp/notes.md"))
	assert.Equal(t, "", Ext("-"))
}

func TestGlobalsFrom(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("format", "", "")
	cmd.Flags().Bool("no-color", false, "")
	cmd.Flags().Bool("verbose", false, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--config", "c.yml", "--format", "json", "--no-color"}))

	assert.Equal(t, Globals{ConfigPath: "c.yml", Format: "json", NoColor: true}, GlobalsFrom(cmd))
}

func TestGlobals_Config(t *testing.T) {
	clearEnv(t)

	t.Run("flag overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, (&config.Config{Format: "html", Indent: 2}).Save(path))

		cfg, err := Globals{ConfigPath: path, Format: "plain"}.Config()
		require.NoError(t, err)
		assert.Equal(t, "plain", cfg.Format)
		assert.Equal(t, 2, cfg.Indent)
	})

	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Globals{ConfigPath: filepath.Join(t.TempDir(), "none.yml")}.Config()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultFormat, cfg.Format)
	})

	t.Run("invalid flag", func(t *testing.T) {
		_, err := Globals{Format: "xml"}.Config()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("indent: 99\n"), 0644))

		_, err := Globals{ConfigPath: path}.Config()
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrInvalidIndent))
	})
}

func TestGlobals_Renderer(t *testing.T) {
	var buf bytes.Buffer
	r := Globals{NoColor: true}.Renderer(&config.Config{Format: "plain"}, &buf)
	r.RenderText("ok")
	assert.Equal(t, "ok\n", buf.String())
}
