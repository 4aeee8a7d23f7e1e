package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/propapp-install/internal/messages"
)

// Credentials are the database connection values entered by the operator.
type Credentials struct {
	Host     string
	Name     string
	User     string
	Password string
}

// Preset holds values supplied ahead of time by flags or environment.
// A nil field is prompted for; a non-nil field is used as the answer.
type Preset struct {
	Host     *string
	Name     *string
	User     *string
	Password *string
}

// Request describes one credential collection.
type Request struct {
	// Defaults apply when host, name or user is left empty. Defaults.Password is ignored.
	Defaults       Credentials
	Preset         Preset
	NonInteractive bool
}

// Collect asks for host, name, user and password in that order.
// Answers for host, name and user are trimmed and fall back to their defaults when
// empty. The password is taken verbatim and has no default. Preset values skip the
// question and are used exactly as given.
func Collect(ui UI, req Request) (Credentials, error) {
	var creds Credentials
	var err error

	if creds.Host, err = askField(ui, req, req.Preset.Host, req.Defaults.Host, fmt.Sprintf(messages.PromptDBHostFmt, req.Defaults.Host)); err != nil {
		return Credentials{}, err
	}
	if creds.Name, err = askField(ui, req, req.Preset.Name, req.Defaults.Name, fmt.Sprintf(messages.PromptDBNameFmt, req.Defaults.Name)); err != nil {
		return Credentials{}, err
	}
	if creds.User, err = askField(ui, req, req.Preset.User, req.Defaults.User, fmt.Sprintf(messages.PromptDBUserFmt, req.Defaults.User)); err != nil {
		return Credentials{}, err
	}
	if req.Preset.Password != nil {
		creds.Password = *req.Preset.Password
	} else if creds.Password, err = ask(ui, req, messages.PromptDBPassword, true); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

func askField(ui UI, req Request, preset *string, fallback string, title string) (string, error) {
	if preset != nil {
		return *preset, nil
	}
	value, err := ask(ui, req, title, false)
	if err != nil {
		return "", err
	}
	return withDefault(value, fallback), nil
}

func ask(ui UI, req Request, title string, secret bool) (string, error) {
	if req.NonInteractive {
		return "", nil
	}
	if ui == nil {
		return "", errors.New(messages.PromptUIRequired)
	}
	var value string
	if secret {
		err := ui.SecretInput(title, &value)
		return value, err
	}
	err := ui.Input(title, &value)
	return value, err
}

func withDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
