package init

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/rsx-cli/internal/config"
)

type fakePrompter struct {
	overwrite bool
	asked     bool
	seen      config.Config
	answer    func(cfg *config.Config)
	err       error
}

func (f *fakePrompter) confirmOverwrite(string) (bool, error) {
	f.asked = true
	return f.overwrite, nil
}

func (f *fakePrompter) fill(cfg *config.Config) error {
	f.seen = *cfg
	if f.err != nil {
		return f.err
	}
	if f.answer != nil {
		f.answer(cfg)
	}
	return nil
}

func newOpts(t *testing.T, p *fakePrompter) (*initOptions, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &initOptions{
		configPath: filepath.Join(t.TempDir(), "rsx", "config.yml"),
		noColor:    true,
		out:        &out,
		prompt:     p,
	}, &out
}

func TestRunInit_NewConfig(t *testing.T) {
	p := &fakePrompter{answer: func(cfg *config.Config) {
		cfg.Format = "html"
		cfg.Indent = 2
		cfg.Aliases = map[string]string{"htmlFor": "for"}
	}}
	opts, out := newOpts(t, p)

	require.NoError(t, runInit(opts))

	assert.False(t, p.asked)
	assert.Equal(t, config.DefaultFormat, p.seen.Format)
	assert.Equal(t, config.DefaultIndent, p.seen.Indent)
	assert.Contains(t, out.String(), "✓ Configuration saved to")

	saved, err := config.Load(opts.configPath)
	require.NoError(t, err)
	assert.Equal(t, "html", saved.Format)
	assert.Equal(t, 2, saved.Indent)
	assert.Equal(t, map[string]string{"htmlFor": "for"}, saved.Aliases)
}

func TestRunInit_ExistingConfig(t *testing.T) {
	t.Run("declined overwrite leaves file alone", func(t *testing.T) {
		p := &fakePrompter{overwrite: false}
		opts, out := newOpts(t, p)
		require.NoError(t, (&config.Config{Format: "plain"}).Save(opts.configPath))

		require.NoError(t, runInit(opts))

		assert.True(t, p.asked)
		assert.Contains(t, out.String(), "Initialization cancelled.")
		saved, err := config.Load(opts.configPath)
		require.NoError(t, err)
		assert.Equal(t, "plain", saved.Format)
	})

	t.Run("existing values prefill the form", func(t *testing.T) {
		p := &fakePrompter{overwrite: true}
		opts, _ := newOpts(t, p)
		require.NoError(t, (&config.Config{Format: "json", WrapMacro: true}).Save(opts.configPath))

		require.NoError(t, runInit(opts))

		assert.Equal(t, "json", p.seen.Format)
		assert.True(t, p.seen.WrapMacro)
		assert.Equal(t, config.DefaultIndent, p.seen.Indent)
	})

	t.Run("force skips the question", func(t *testing.T) {
		p := &fakePrompter{}
		opts, _ := newOpts(t, p)
		opts.force = true
		require.NoError(t, (&config.Config{}).Save(opts.configPath))

		require.NoError(t, runInit(opts))
		assert.False(t, p.asked)
	})
}

func TestRunInit_Errors(t *testing.T) {
	t.Run("form aborted", func(t *testing.T) {
		p := &fakePrompter{err: errors.New("user aborted")}
		opts, _ := newOpts(t, p)

		require.Error(t, runInit(opts))
		_, err := os.Stat(opts.configPath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("invalid answers", func(t *testing.T) {
		p := &fakePrompter{answer: func(cfg *config.Config) {
			cfg.Aliases = map[string]string{"a": "b", "b": "c"}
		}}
		opts, _ := newOpts(t, p)

		err := runInit(opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}

func TestParseIndent(t *testing.T) {
	n, err := parseIndent(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, bad := range []string{"", "0", "17", "two"} {
		_, err := parseIndent(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseAliases(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]string
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"blank lines", "\n  \n", nil, false},
		{"pairs", "htmlFor=for\n tabIndex = tabindex \n", map[string]string{"htmlFor": "for", "tabIndex": "tabindex"}, false},
		{"missing equals", "htmlFor", nil, true},
		{"empty name", "htmlFor=", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAliases(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAliases(t *testing.T) {
	assert.Equal(t, "", formatAliases(nil))
	assert.Equal(t, "htmlFor=for\ntabIndex=tabindex", formatAliases(map[string]string{
		"tabIndex": "tabindex",
		"htmlFor":  "for",
	}))

	round, err := parseAliases(formatAliases(map[string]string{"a": "b"}))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "b"}, round)
}
