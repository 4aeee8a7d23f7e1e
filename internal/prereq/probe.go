// Package prereq verifies that the PHP runtime can host the dashboard.
package prereq

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/conn-castle/propapp-install/internal/messages"
)

// Probe reports facts about the runtime the dashboard will run on.
type Probe interface {
	Version(ctx context.Context) (string, error)
	Extensions(ctx context.Context) ([]string, error)
}

// PHPProbe asks a php executable about itself.
type PHPProbe struct {
	Binary string
}

// NewPHPProbe returns a probe for the given php executable name or path.
func NewPHPProbe(binary string) *PHPProbe {
	return &PHPProbe{Binary: binary}
}

// Version returns PHP_VERSION as reported by the binary.
func (p *PHPProbe) Version(ctx context.Context) (string, error) {
	out, err := p.run(ctx, "-r", "echo PHP_VERSION;")
	if err != nil {
		return "", err
	}
	version := strings.TrimSpace(string(out))
	if version == "" {
		return "", fmt.Errorf(messages.PrereqEmptyVersionFmt, p.Binary)
	}
	return version, nil
}

// Extensions returns the module names listed by `php -m`.
func (p *PHPProbe) Extensions(ctx context.Context) ([]string, error) {
	out, err := p.run(ctx, "-m")
	if err != nil {
		return nil, err
	}
	return parseModules(out), nil
}

func (p *PHPProbe) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, p.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stderr.Len() > 0 {
			err = fmt.Errorf(messages.PrereqProbeStderrFmt, err, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf(messages.PrereqProbeFailedFmt, p.Binary, strings.Join(args, " "), err)
	}
	return out, nil
}

// parseModules extracts module names from `php -m` output, skipping section headers.
func parseModules(out []byte) []string {
	var modules []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		modules = append(modules, line)
	}
	return modules
}
