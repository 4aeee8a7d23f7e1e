package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/conn-castle/propapp-install/internal/configpatch"
	"github.com/conn-castle/propapp-install/internal/messages"
)

// Validate reports the first setting that would make an install run meaningless.
func (cfg *Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"runtime.binary", cfg.Runtime.Binary},
		{"runtime.min_version", cfg.Runtime.MinVersion},
		{"paths.schema", cfg.Paths.Schema},
		{"database.host", cfg.Database.Host},
		{"database.name", cfg.Database.Name},
		{"database.user", cfg.Database.User},
		{"rewrite.target", cfg.Rewrite.Target},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf(messages.ConfigFieldRequiredFmt, r.field)
		}
	}

	if err := nonEmptyEntries("runtime.extensions", cfg.Runtime.Extensions); err != nil {
		return err
	}
	if err := nonEmptyEntries("paths.directories", cfg.Paths.Directories); err != nil {
		return err
	}
	for i, file := range cfg.Paths.ConfigFiles {
		if strings.TrimSpace(file.Template) == "" {
			return fmt.Errorf(messages.ConfigEntryEmptyFmt, "paths.config_files.template", i)
		}
		if strings.TrimSpace(file.Destination) == "" {
			return fmt.Errorf(messages.ConfigEntryEmptyFmt, "paths.config_files.destination", i)
		}
	}

	switch cfg.Rewrite.Mode {
	case configpatch.ModePlaceholders, configpatch.ModeKeys:
	default:
		return fmt.Errorf(messages.ConfigUnknownRewriteFmt, cfg.Rewrite.Mode, configpatch.ModePlaceholders, configpatch.ModeKeys)
	}

	if cfg.Database.ConnectTimeout != "" {
		timeout, err := time.ParseDuration(cfg.Database.ConnectTimeout)
		if err != nil {
			return fmt.Errorf(messages.ConfigInvalidTimeoutFmt, cfg.Database.ConnectTimeout, err)
		}
		if timeout <= 0 {
			return fmt.Errorf(messages.ConfigNegativeTimeoutFmt, cfg.Database.ConnectTimeout)
		}
	}
	return nil
}

func nonEmptyEntries(field string, values []string) error {
	for i, value := range values {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf(messages.ConfigEntryEmptyFmt, field, i)
		}
	}
	return nil
}

// PatchKeys converts the configured rewrite keys for configpatch.
func (r RewriteConfig) PatchKeys() configpatch.Keys {
	return configpatch.Keys{
		Host:     r.Keys.Host,
		Name:     r.Keys.Name,
		User:     r.Keys.User,
		Password: r.Keys.Password,
	}
}
