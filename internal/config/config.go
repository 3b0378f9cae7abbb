// Package config loads decaf.toml, the optional per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the settings file looked up from the input's directory upward.
const FileName = "decaf.toml"

// ErrNotFound is returned by Find when no decaf.toml exists up to the root.
var ErrNotFound = errors.New("no " + FileName + " found")

// Config is the merged view of decaf.toml and defaults.
type Config struct {
	// Path is the file the values came from; empty for defaults.
	Path        string            `toml:"-"`
	Lexer       LexerConfig       `toml:"lexer"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Cache       CacheConfig       `toml:"cache"`
}

type LexerConfig struct {
	MaxIdentLen int `toml:"max_ident_len"`
}

type DiagnosticsConfig struct {
	Format string `toml:"format"` // classic|pretty|json|sarif
	Max    int    `toml:"max"`
	Color  string `toml:"color"` // auto|on|off
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the settings used when no decaf.toml is found.
func Default() Config {
	return Config{
		Lexer:       LexerConfig{MaxIdentLen: 31},
		Diagnostics: DiagnosticsConfig{Format: "classic", Max: 100, Color: "auto"},
	}
}

// Find walks from startDir up to the filesystem root looking for decaf.toml.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Load decodes path on top of Default. Keys absent from the file keep their
// default values; present keys are validated.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path

	if meta.IsDefined("lexer", "max_ident_len") && cfg.Lexer.MaxIdentLen <= 0 {
		return Config{}, fmt.Errorf("%s: [lexer].max_ident_len must be positive", path)
	}
	if meta.IsDefined("diagnostics", "format") {
		if err := checkOneOf(cfg.Diagnostics.Format, "classic", "pretty", "json", "sarif"); err != nil {
			return Config{}, fmt.Errorf("%s: [diagnostics].format: %w", path, err)
		}
	}
	if meta.IsDefined("diagnostics", "color") {
		if err := checkOneOf(cfg.Diagnostics.Color, "auto", "on", "off"); err != nil {
			return Config{}, fmt.Errorf("%s: [diagnostics].color: %w", path, err)
		}
	}
	if meta.IsDefined("diagnostics", "max") && cfg.Diagnostics.Max < 0 {
		return Config{}, fmt.Errorf("%s: [diagnostics].max must not be negative", path)
	}
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(filepath.Dir(path), cfg.Cache.Dir)
	}
	return cfg, nil
}

// Discover finds and loads decaf.toml starting at startDir. A missing file
// is not an error: Default is returned.
func Discover(startDir string) (Config, error) {
	path, err := Find(startDir)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

func checkOneOf(v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q (expected: %s)", v, strings.Join(allowed, "|"))
}
