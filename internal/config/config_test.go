package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), got)
}

func TestDiscoverWithoutFileUsesDefaults(t *testing.T) {
	// TempDir lives under the system temp dir, which has no decaf.toml above it.
	cfg, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	writeFile(t, path, `
[lexer]
max_ident_len = 64

[cache]
enabled = true
dir = ".cache"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, 64, cfg.Lexer.MaxIdentLen)
	assert.Equal(t, "classic", cfg.Diagnostics.Format)
	assert.Equal(t, 100, cfg.Diagnostics.Max)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, filepath.Join(dir, ".cache"), cfg.Cache.Dir)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"format", "[diagnostics]\nformat = \"xml\"\n", "[diagnostics].format"},
		{"color", "[diagnostics]\ncolor = \"always\"\n", "[diagnostics].color"},
		{"ident", "[lexer]\nmax_ident_len = 0\n", "max_ident_len"},
		{"max", "[diagnostics]\nmax = -1\n", "[diagnostics].max"},
		{"unknown", "[lexer]\nmax_tokens = 3\n", "unknown keys: lexer.max_tokens"},
		{"syntax", "[lexer\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}
