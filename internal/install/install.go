// Package install runs the Property App installation steps.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/conn-castle/propapp-install/internal/config"
	"github.com/conn-castle/propapp-install/internal/database"
	"github.com/conn-castle/propapp-install/internal/messages"
	"github.com/conn-castle/propapp-install/internal/prereq"
	"github.com/conn-castle/propapp-install/internal/prompt"
)

// Step names reported in StepError.
const (
	StepPrerequisites = "prerequisites"
	StepDirectories   = "directories"
	StepConfigFiles   = "config files"
	StepCredentials   = "credentials"
	StepDatabase      = "database"
)

// Options controls installer behavior.
type Options struct {
	// Root is the project directory every configured path is relative to.
	Root   string
	Config *config.Config
	System System
	Probe  prereq.Probe

	// UI answers credential prompts. It may be nil when NonInteractive is set
	// or every credential is preset.
	UI             prompt.UI
	Preset         prompt.Preset
	NonInteractive bool
	Connector      database.Connector

	// Out receives progress lines. Defaults to os.Stdout.
	Out      io.Writer
	ShowDiff bool
	Logger   *zerolog.Logger
}

// Result summarizes what a successful run did.
type Result struct {
	RuntimeVersion string
	CreatedDirs    []string
	CreatedConfigs []string
	Credentials    prompt.Credentials
	ConfigChanged  bool
}

// StepError reports the step that stopped the installation.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

type installer struct {
	root           string
	cfg            *config.Config
	sys            System
	probe          prereq.Probe
	ui             prompt.UI
	preset         prompt.Preset
	nonInteractive bool
	connector      database.Connector
	out            io.Writer
	showDiff       bool
	log            zerolog.Logger
	result         Result
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

// Run verifies prerequisites, provisions directories and config files, collects
// credentials, bootstraps the database and rewrites the live config. Each step must
// succeed before the next one runs; the first failure is returned as a *StepError.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	inst := &installer{
		root:           opts.Root,
		cfg:            opts.Config,
		sys:            opts.System,
		probe:          opts.Probe,
		ui:             opts.UI,
		preset:         opts.Preset,
		nonInteractive: opts.NonInteractive,
		connector:      opts.Connector,
		out:            out,
		showDiff:       opts.ShowDiff,
		log:            logger,
	}

	inst.printHeader()
	steps := []step{
		{name: StepPrerequisites, run: inst.checkPrerequisites},
		{name: StepDirectories, run: inst.createDirectories},
		{name: StepConfigFiles, run: inst.copyConfigFiles},
		{name: StepCredentials, run: inst.collectCredentials},
		{name: StepDatabase, run: inst.setupDatabase},
	}
	if err := runSteps(ctx, inst.log, steps); err != nil {
		return nil, err
	}
	inst.printFinal()
	return &inst.result, nil
}

func validateOptions(opts Options) error {
	switch {
	case opts.Root == "":
		return errors.New(messages.InstallRootRequired)
	case opts.System == nil:
		return errors.New(messages.InstallSystemRequired)
	case opts.Config == nil:
		return errors.New(messages.InstallConfigRequired)
	case opts.Probe == nil:
		return errors.New(messages.InstallProbeRequired)
	case opts.Connector == nil:
		return errors.New(messages.InstallConnectorRequired)
	}
	return nil
}

func runSteps(ctx context.Context, logger zerolog.Logger, steps []step) error {
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return &StepError{Step: s.name, Err: err}
		}
		logger.Debug().Str("step", s.name).Msg("starting")
		if err := s.run(ctx); err != nil {
			logger.Debug().Str("step", s.name).Err(err).Msg("failed")
			return &StepError{Step: s.name, Err: err}
		}
	}
	return nil
}

func (inst *installer) printHeader() {
	_, _ = fmt.Fprintln(inst.out, messages.InstallBanner)
	_, _ = fmt.Fprintln(inst.out, messages.InstallTitle)
	_, _ = fmt.Fprintln(inst.out, messages.InstallBanner)
	_, _ = fmt.Fprintln(inst.out)
}

func (inst *installer) printFinal() {
	_, _ = fmt.Fprintln(inst.out)
	_, _ = fmt.Fprintln(inst.out, messages.InstallBanner)
	_, _ = fmt.Fprintln(inst.out, messages.InstallCompleted)
	_, _ = fmt.Fprintln(inst.out)
	_, _ = fmt.Fprintf(inst.out, messages.InstallNextSteps, inst.cfg.Rewrite.Target)
	_, _ = fmt.Fprintln(inst.out, messages.InstallBanner)
}

// item starts a progress line for one checked or created entry.
func (inst *installer) item(name string) {
	_, _ = fmt.Fprintf(inst.out, messages.InstallItemFmt, name)
}

func (inst *installer) ok() {
	_, _ = fmt.Fprintln(inst.out, color.GreenString("%s", messages.InstallStatusOK))
}

func (inst *installer) created() {
	_, _ = fmt.Fprintln(inst.out, color.GreenString("%s", messages.InstallStatusCreated))
}

func (inst *installer) exists() {
	_, _ = fmt.Fprintln(inst.out, messages.InstallStatusExists)
}

func (inst *installer) missing() {
	_, _ = fmt.Fprintln(inst.out, color.YellowString("%s", messages.InstallStatusMissing))
}

func (inst *installer) failed() {
	_, _ = fmt.Fprintln(inst.out, color.RedString("%s", messages.InstallStatusFailed))
}
