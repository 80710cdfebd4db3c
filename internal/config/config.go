package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-unitconv/pkg/i18n"
	"github.com/goliatone/go-unitconv/pkg/page"
)

const (
	DefaultAddr  = ":8383"
	DefaultGrace = 5 * time.Second
)

// Config is the server configuration.
type Config struct {
	Addr          string        `yaml:"addr"`
	Grace         time.Duration `yaml:"grace"`
	BasePath      string        `yaml:"base_path"`
	DefaultLocale string        `yaml:"default_locale"`
	// Templates is a directory whose templates override the built-in ones.
	Templates string      `yaml:"templates"`
	Theme     ThemeConfig `yaml:"theme"`
	Tips      []string    `yaml:"tips"`
}

// ThemeConfig adjusts the built-in page theme.
type ThemeConfig struct {
	Variant string            `yaml:"variant"`
	Tokens  map[string]string `yaml:"tokens"`
	// Stylesheet is linked from every page when set.
	Stylesheet string `yaml:"stylesheet"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:          DefaultAddr,
		Grace:         DefaultGrace,
		DefaultLocale: i18n.DefaultLocale,
	}
}

// Load reads path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over Default and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate fills blank fields with defaults and rejects invalid values.
func (c *Config) Validate() error {
	c.Addr = strings.TrimSpace(c.Addr)
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Grace < 0 {
		return fmt.Errorf("grace must not be negative, got %s", c.Grace)
	}
	if c.Grace == 0 {
		c.Grace = DefaultGrace
	}
	c.BasePath = strings.TrimSpace(c.BasePath)
	if strings.ContainsAny(c.BasePath, "{}") {
		return fmt.Errorf("base_path must not contain wildcards, got %q", c.BasePath)
	}
	if c.DefaultLocale = i18n.NormalizeLocale(c.DefaultLocale); c.DefaultLocale == "" {
		c.DefaultLocale = i18n.DefaultLocale
	}
	for key := range c.Theme.Tokens {
		if strings.TrimSpace(key) == "" {
			return errors.New("theme token names must not be empty")
		}
	}
	return nil
}

// Manifest applies the theme overrides to the built-in manifest.
func (t ThemeConfig) Manifest() *theme.Manifest {
	manifest := page.DefaultManifest()
	if len(t.Tokens) > 0 {
		if manifest.Tokens == nil {
			manifest.Tokens = make(map[string]string, len(t.Tokens))
		}
		for key, value := range t.Tokens {
			manifest.Tokens[strings.TrimSpace(key)] = value
		}
	}
	if stylesheet := strings.TrimSpace(t.Stylesheet); stylesheet != "" {
		manifest.Assets.Files = map[string]string{page.StylesheetAsset: stylesheet}
	}
	return manifest
}
