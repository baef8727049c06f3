package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"evshortcut/shortcut"
)

type Config struct {
	Devices   DevicesConfig    `toml:"devices"`
	Match     MatchConfig      `toml:"match"`
	Gesture   GestureConfig    `toml:"gesture"`
	Log       LogConfig        `toml:"log"`
	Shortcuts []ShortcutConfig `toml:"shortcut"`
}

type DevicesConfig struct {
	// Patterns are globs of device nodes to listen on.
	Patterns []string `toml:"patterns"`
	// Watch re-listens when matching device nodes appear or disappear.
	Watch bool `toml:"watch"`
}

type MatchConfig struct {
	Policy string `toml:"policy"`
}

type GestureConfig struct {
	LongPress Duration `toml:"long_press"`
}

type LogConfig struct {
	Path string `toml:"path"`
}

type ShortcutConfig struct {
	Name  string            `toml:"name"`
	Combo shortcut.Shortcut `toml:"combo"`
}

// Duration is a time.Duration written as "350ms" in the file.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default configuration
func Default() *Config {
	return &Config{
		Devices: DevicesConfig{
			Patterns: []string{"/dev/input/by-id/*-kbd"},
			Watch:    true,
		},
		Match: MatchConfig{
			Policy: shortcut.MatchAtLeast.String(),
		},
		Gesture: GestureConfig{
			LongPress: Duration{350 * time.Millisecond},
		},
		Shortcuts: []ShortcutConfig{
			{Name: "example", Combo: shortcut.New(shortcut.KeyN, shortcut.Meta)},
		},
	}
}

// Path returns the default location of the configuration file.
func Path() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "evshortcut", "config.toml"), nil
}

// Load reads the configuration at path. If the file doesn't exist, it is
// created with default values.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	cfg := Default()
	// Shortcuts in the file replace the defaults instead of adding to them.
	cfg.Shortcuts = nil
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys: %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := shortcut.ParseMatchPolicy(c.Match.Policy); err != nil {
		return err
	}
	if c.Gesture.LongPress.Duration < 0 {
		return fmt.Errorf("gesture.long_press must not be negative")
	}
	seen := make(map[shortcut.Shortcut]string)
	for i, s := range c.Shortcuts {
		if s.Combo == (shortcut.Shortcut{}) {
			return fmt.Errorf("shortcut %d: combo is required", i+1)
		}
		if prev, ok := seen[s.Combo]; ok {
			return fmt.Errorf("shortcut %s registered twice (%q and %q)", s.Combo, prev, s.Name)
		}
		seen[s.Combo] = s.Name
	}
	return nil
}

// MatchPolicy returns the parsed match policy.
func (c *Config) MatchPolicy() shortcut.MatchPolicy {
	p, _ := shortcut.ParseMatchPolicy(c.Match.Policy)
	return p
}
