package prereq

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/propapp-install/internal/messages"
)

// VersionError reports a runtime older than required.
type VersionError struct {
	Required string
	Current  string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf(messages.PrereqVersionTooLowFmt, e.Current, e.Required)
}

// MissingExtensionsError lists every required extension that is not loaded.
type MissingExtensionsError struct {
	Missing []string
}

func (e *MissingExtensionsError) Error() string {
	var b strings.Builder
	b.WriteString(messages.PrereqMissingExtensionsHeader)
	for _, name := range e.Missing {
		fmt.Fprintf(&b, messages.PrereqMissingExtensionLineFmt, name)
	}
	return b.String()
}

// versionPrefix keeps the numeric part of strings like 7.4.3-4ubuntu2.18 or 8.3.0RC1.
var versionPrefix = regexp.MustCompile(`^\d+(\.\d+){0,2}`)

// CheckVersion returns the runtime version when it is at least minVersion.
func CheckVersion(ctx context.Context, probe Probe, minVersion string) (string, error) {
	required, err := semver.NewVersion(minVersion)
	if err != nil {
		return "", fmt.Errorf(messages.PrereqInvalidRequiredFmt, minVersion, err)
	}
	current, err := probe.Version(ctx)
	if err != nil {
		return "", err
	}
	ok, err := atLeast(current, required)
	if err != nil {
		return current, err
	}
	if !ok {
		return current, &VersionError{Required: minVersion, Current: current}
	}
	return current, nil
}

func atLeast(current string, required *semver.Version) (bool, error) {
	numeric := versionPrefix.FindString(strings.TrimSpace(current))
	if numeric == "" {
		return false, fmt.Errorf(messages.PrereqInvalidCurrentFmt, current)
	}
	v, err := semver.NewVersion(numeric)
	if err != nil {
		return false, fmt.Errorf(messages.PrereqInvalidCurrentFmt, current)
	}
	return !v.LessThan(required), nil
}

// CheckExtensions checks each required extension in order, calling report with the
// outcome of each, and returns a MissingExtensionsError naming all that are absent.
// Names compare case-insensitively, as php -m prints some modules capitalized (PDO).
func CheckExtensions(ctx context.Context, probe Probe, required []string, report func(name string, loaded bool)) error {
	if len(required) == 0 {
		return nil
	}
	loaded, err := probe.Extensions(ctx)
	if err != nil {
		return err
	}
	available := make(map[string]bool, len(loaded))
	for _, name := range loaded {
		available[strings.ToLower(name)] = true
	}

	var missing []string
	for _, name := range required {
		ok := available[strings.ToLower(name)]
		if report != nil {
			report(name, ok)
		}
		if !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingExtensionsError{Missing: missing}
	}
	return nil
}
