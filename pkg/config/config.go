// Package config loads the optional anno configuration. Files ending in
// .toml are read as TOML, everything else as YAML.
//
//	byte_order: big
//	color: auto
//	layouts:
//	  ccsds:
//	    - u16:packet_id
//	    - u16:sequence
//	    - u16:length
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/praetorian-inc/anno/pkg/codec"
	"github.com/praetorian-inc/anno/pkg/style"
	"github.com/praetorian-inc/anno/pkg/typespec"
)

// ErrUnknownLayout is returned when a named layout is not defined.
var ErrUnknownLayout = errors.New("unknown layout")

// Config holds defaults for the CLI and named token layouts.
type Config struct {
	ByteOrder string              `yaml:"byte_order" toml:"byte_order"`
	Color     string              `yaml:"color" toml:"color"`
	Layouts   map[string][]string `yaml:"layouts" toml:"layouts"`
}

// Parse parses and validates a configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseTOML parses and validates a configuration from TOML bytes.
func ParseTOML(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOML
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every value without touching any data.
func (c *Config) Validate() error {
	if c.ByteOrder != "" {
		if _, err := codec.ParseByteOrder(c.ByteOrder); err != nil {
			return fmt.Errorf("byte_order: %w", err)
		}
	}
	if _, err := style.ParseMode(c.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	for _, name := range c.LayoutNames() {
		if _, err := typespec.Parse(c.Layouts[name]); err != nil {
			return fmt.Errorf("layout %s: %w", name, err)
		}
	}
	return nil
}

// Layout returns the tokens of a named layout.
func (c *Config) Layout(name string) ([]string, error) {
	tokens, ok := c.Layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLayout, name)
	}
	return tokens, nil
}

// LayoutNames returns the layout names in sorted order.
func (c *Config) LayoutNames() []string {
	names := make([]string, 0, len(c.Layouts))
	for name := range c.Layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
