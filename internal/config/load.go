package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/propapp-install/internal/messages"
	"github.com/conn-castle/propapp-install/internal/templates"
)

// Defaults returns the embedded default settings.
func Defaults() (*Config, error) {
	data, err := templates.Read(FileName)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadDefaultsFmt, err)
	}
	var cfg Config
	if err := decode(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigReadDefaultsFmt, err)
	}
	return &cfg, nil
}

// Load resolves the settings for an install rooted at root.
// An explicit path must exist; otherwise <root>/propapp-install.toml is used when present
// and the embedded defaults when it is not.
func Load(root string, explicit string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	path := explicit
	if path == "" {
		path = filepath.Join(root, FileName)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
	}
	path, err = ExpandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	overrides, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, path, err)
	}
	cfg.merge(overrides)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, path, err)
	}
	return cfg, nil
}

// Parse decodes settings TOML without applying defaults.
// Unknown keys are rejected so typos surface instead of silently falling back.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := decode(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	return expanded, nil
}

// merge overlays every value set in src onto cfg.
// Lists replace rather than append, so a file can drop a default extension or directory.
func (cfg *Config) merge(src *Config) {
	setString(&cfg.Runtime.Binary, src.Runtime.Binary)
	setString(&cfg.Runtime.MinVersion, src.Runtime.MinVersion)
	if src.Runtime.Extensions != nil {
		cfg.Runtime.Extensions = src.Runtime.Extensions
	}

	if src.Paths.Directories != nil {
		cfg.Paths.Directories = src.Paths.Directories
	}
	if src.Paths.ConfigFiles != nil {
		cfg.Paths.ConfigFiles = src.Paths.ConfigFiles
	}
	setString(&cfg.Paths.Schema, src.Paths.Schema)

	setString(&cfg.Database.Host, src.Database.Host)
	setString(&cfg.Database.Name, src.Database.Name)
	setString(&cfg.Database.User, src.Database.User)
	setString(&cfg.Database.ConnectTimeout, src.Database.ConnectTimeout)

	setString(&cfg.Rewrite.Mode, src.Rewrite.Mode)
	setString(&cfg.Rewrite.Target, src.Rewrite.Target)
	setString(&cfg.Rewrite.Keys.Host, src.Rewrite.Keys.Host)
	setString(&cfg.Rewrite.Keys.Name, src.Rewrite.Keys.Name)
	setString(&cfg.Rewrite.Keys.User, src.Rewrite.Keys.User)
	setString(&cfg.Rewrite.Keys.Password, src.Rewrite.Keys.Password)
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
