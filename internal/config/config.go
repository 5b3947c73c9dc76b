// Package config loads the bmark settings file and resolves defaults.
// It is the only package that consults the environment; everything it
// produces is handed to the core as plain values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/bmark-cli/bmark/internal/core/domain/bookmark"
)

const (
	// AppDirName is the directory bmark uses below the XDG base directories.
	AppDirName = "bmark"
	// ConfigFileName is the name of the settings file.
	ConfigFileName = "config.toml"
	// StoreFileName is the default bookmark store name inside the data directory.
	StoreFileName = "bookmarks.txt"
	// AliasFileName is the default generated alias file name inside the data directory.
	AliasFileName = "aliases.sh"

	DefaultEditor      = "nvim"
	DefaultPicker      = "fzf"
	DefaultTerminal    = "kitty --detach --directory"
	DefaultAliasPrefix = "_"
)

// ErrConfigExists is returned by Create when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

// Config is the top-level structure of config.toml.
type Config struct {
	DataDir         string `toml:"data_dir"`
	StorePath       string `toml:"store_path"`
	AliasPath       string `toml:"alias_path"`
	EditorCommand   string `toml:"editor_cmd"`
	PickerCommand   string `toml:"picker_cmd"`
	TerminalCommand string `toml:"terminal_cmd"`
	AliasPrefix     string `toml:"alias_prefix"`
}

// Env is the slice of the environment that influences defaults.
type Env struct {
	DataHome string
	Visual   string
	Editor   string
}

// CurrentEnv reads Env from the running process.
func CurrentEnv() Env {
	return Env{
		DataHome: xdg.DataHome,
		Visual:   os.Getenv("VISUAL"),
		Editor:   os.Getenv("EDITOR"),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/bmark/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// Default returns the configuration used when no file sets anything.
func Default(env Env) *Config {
	cfg := &Config{}
	cfg.applyDefaults(env)
	return cfg
}

// Load parses the file at path and fills unset keys from env.
// A missing file is not an error: the defaults are returned.
func Load(path string, env Env) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config.Load: %s: %w", path, err)
		}
	}
	cfg.applyDefaults(env)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %s: %w", path, err)
	}
	return &cfg, nil
}

// Create writes cfg to path, creating parent directories. It refuses to overwrite.
func Create(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config.Create: %w: %s", ErrConfigExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config.Create: %w", err)
	}
	data, err := cfg.Encode()
	if err != nil {
		return fmt.Errorf("config.Create: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config.Create: %w", err)
	}
	return nil
}

// Encode renders cfg as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SourceCommand is the shell line that loads the generated aliases.
func (c *Config) SourceCommand() string {
	return fmt.Sprintf("source %q", c.AliasPath)
}

func (c *Config) applyDefaults(env Env) {
	if c.DataDir == "" {
		c.DataDir = filepath.Join(env.DataHome, AppDirName)
	}
	if c.StorePath == "" {
		c.StorePath = filepath.Join(c.DataDir, StoreFileName)
	}
	if c.AliasPath == "" {
		c.AliasPath = filepath.Join(c.DataDir, AliasFileName)
	}
	if c.EditorCommand == "" {
		switch {
		case env.Visual != "":
			c.EditorCommand = env.Visual
		case env.Editor != "":
			c.EditorCommand = env.Editor
		default:
			c.EditorCommand = DefaultEditor
		}
	}
	if c.PickerCommand == "" {
		c.PickerCommand = DefaultPicker
	}
	if c.TerminalCommand == "" {
		c.TerminalCommand = DefaultTerminal
	}
	if c.AliasPrefix == "" {
		c.AliasPrefix = DefaultAliasPrefix
	}
}

func (c *Config) validate() error {
	if !filepath.IsAbs(c.StorePath) {
		return fmt.Errorf("store_path must be absolute, got %q", c.StorePath)
	}
	if !filepath.IsAbs(c.AliasPath) {
		return fmt.Errorf("alias_path must be absolute, got %q", c.AliasPath)
	}
	if c.StorePath == c.AliasPath {
		return fmt.Errorf("store_path and alias_path must differ, both are %q", c.StorePath)
	}
	if !bookmark.AliasSafe(c.AliasPrefix) {
		return fmt.Errorf("alias_prefix %q may only contain letters, digits, '.', '_', '+' and '-'", c.AliasPrefix)
	}
	return nil
}
