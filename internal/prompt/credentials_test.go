package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefaults = Credentials{Host: "localhost", Name: "property_app", User: "root"}

type scriptedUI struct {
	answers []string
	titles  []string
	secret  []bool
	err     error
}

func (s *scriptedUI) next(title string, value *string, secret bool) error {
	s.titles = append(s.titles, title)
	s.secret = append(s.secret, secret)
	if s.err != nil {
		return s.err
	}
	*value = s.answers[0]
	s.answers = s.answers[1:]
	return nil
}

func (s *scriptedUI) Input(title string, value *string) error { return s.next(title, value, false) }

func (s *scriptedUI) SecretInput(title string, value *string) error {
	return s.next(title, value, true)
}

func ptr(s string) *string { return &s }

func TestCollectPromptsInOrder(t *testing.T) {
	ui := &scriptedUI{answers: []string{"db1", "shop", "svc", "secret"}}

	creds, err := Collect(ui, Request{Defaults: testDefaults})
	require.NoError(t, err)
	assert.Equal(t, Credentials{Host: "db1", Name: "shop", User: "svc", Password: "secret"}, creds)
	assert.Equal(t, []string{
		"Database Host (default: localhost)",
		"Database Name (default: property_app)",
		"Database Username (default: root)",
		"Database Password",
	}, ui.titles)
	assert.Equal(t, []bool{false, false, false, true}, ui.secret)
}

func TestCollectAppliesDefaults(t *testing.T) {
	ui := &scriptedUI{answers: []string{"", "  ", "\t", ""}}

	creds, err := Collect(ui, Request{Defaults: testDefaults})
	require.NoError(t, err)
	assert.Equal(t, Credentials{Host: "localhost", Name: "property_app", User: "root", Password: ""}, creds)
}

func TestCollectTrimsAllButPassword(t *testing.T) {
	ui := &scriptedUI{answers: []string{" db1 ", " shop", "svc ", " secret "}}

	creds, err := Collect(ui, Request{Defaults: testDefaults})
	require.NoError(t, err)
	assert.Equal(t, Credentials{Host: "db1", Name: "shop", User: "svc", Password: " secret "}, creds)
}

func TestCollectWithLineUI(t *testing.T) {
	var out bytes.Buffer
	ui := NewLineUI(strings.NewReader("\n\nadmin\npw\n"), &out)

	creds, err := Collect(ui, Request{Defaults: testDefaults})
	require.NoError(t, err)
	assert.Equal(t, Credentials{Host: "localhost", Name: "property_app", User: "admin", Password: "pw"}, creds)
	assert.Contains(t, out.String(), "Database Password: ")
}

func TestCollectPresetSkipsPrompt(t *testing.T) {
	ui := &scriptedUI{answers: []string{"shop", "svc"}}

	creds, err := Collect(ui, Request{
		Defaults: testDefaults,
		Preset:   Preset{Host: ptr("db9"), Password: ptr("")},
	})
	require.NoError(t, err)
	assert.Equal(t, Credentials{Host: "db9", Name: "shop", User: "svc", Password: ""}, creds)
	assert.Len(t, ui.titles, 2)
}

func TestCollectPresetUsedVerbatim(t *testing.T) {
	creds, err := Collect(nil, Request{
		Defaults:       testDefaults,
		Preset:         Preset{Host: ptr(""), Name: ptr(" shop "), User: ptr(" svc"), Password: ptr(" pw ")},
		NonInteractive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, Credentials{Host: "", Name: " shop ", User: " svc", Password: " pw "}, creds)
}

func TestCollectNonInteractive(t *testing.T) {
	creds, err := Collect(nil, Request{
		Defaults:       testDefaults,
		Preset:         Preset{User: ptr("svc")},
		NonInteractive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, Credentials{Host: "localhost", Name: "property_app", User: "svc", Password: ""}, creds)
}

func TestCollectRequiresUI(t *testing.T) {
	_, err := Collect(nil, Request{Defaults: testDefaults})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--non-interactive")
}

func TestCollectStopsOnError(t *testing.T) {
	ui := &scriptedUI{err: ErrCancelled}

	creds, err := Collect(ui, Request{Defaults: testDefaults})
	assert.True(t, errors.Is(err, ErrCancelled))
	assert.Equal(t, Credentials{}, creds)
	assert.Len(t, ui.titles, 1)
}
