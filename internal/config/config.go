// Package config loads the installer settings.
package config

import (
	"time"
)

// FileName is the settings file looked up in the install root.
const FileName = "propapp-install.toml"

// Config holds every value the installer needs besides the credentials.
type Config struct {
	Runtime  RuntimeConfig  `toml:"runtime"`
	Paths    PathsConfig    `toml:"paths"`
	Database DatabaseConfig `toml:"database"`
	Rewrite  RewriteConfig  `toml:"rewrite"`
}

// RuntimeConfig describes the PHP runtime the dashboard requires.
type RuntimeConfig struct {
	Binary     string   `toml:"binary"`
	MinVersion string   `toml:"min_version"`
	Extensions []string `toml:"extensions"`
}

// PathsConfig lists the filesystem locations, relative to the install root.
type PathsConfig struct {
	Directories []string     `toml:"directories"`
	ConfigFiles []ConfigFile `toml:"config_files"`
	Schema      string       `toml:"schema"`
}

// ConfigFile pairs a checked-in template with the live file copied from it.
type ConfigFile struct {
	Template    string `toml:"template"`
	Destination string `toml:"destination"`
}

// DatabaseConfig holds the credential prompt defaults.
type DatabaseConfig struct {
	Host           string `toml:"host"`
	Name           string `toml:"name"`
	User           string `toml:"user"`
	ConnectTimeout string `toml:"connect_timeout"`
}

// RewriteConfig controls how credentials are written into the live config.
type RewriteConfig struct {
	Mode   string      `toml:"mode"`
	Target string      `toml:"target"`
	Keys   RewriteKeys `toml:"keys"`
}

// RewriteKeys names the config keys that hold each credential.
type RewriteKeys struct {
	Host     string `toml:"host"`
	Name     string `toml:"name"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

// Timeout returns the parsed connect timeout.
// Validate guarantees it parses; an unparsable value yields zero (no timeout).
func (d DatabaseConfig) Timeout() time.Duration {
	timeout, err := time.ParseDuration(d.ConnectTimeout)
	if err != nil {
		return 0
	}
	return timeout
}
