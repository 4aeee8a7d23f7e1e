package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conn-castle/propapp-install/internal/config"
	"github.com/conn-castle/propapp-install/internal/database"
	"github.com/conn-castle/propapp-install/internal/envfile"
	"github.com/conn-castle/propapp-install/internal/install"
	"github.com/conn-castle/propapp-install/internal/logging"
	"github.com/conn-castle/propapp-install/internal/messages"
	"github.com/conn-castle/propapp-install/internal/prereq"
	"github.com/conn-castle/propapp-install/internal/prompt"
)

const (
	flagRoot           = "root"
	flagConfig         = "config"
	flagDBHost         = "db-host"
	flagDBName         = "db-name"
	flagDBUser         = "db-user"
	flagDBPassword     = "db-password"
	flagEnvFile        = "env-file"
	flagNonInteractive = "non-interactive"
	flagShowDiff       = "show-diff"
	flagVerbose        = "verbose"

	envDBHost     = "PROPAPP_DB_HOST"
	envDBName     = "PROPAPP_DB_NAME"
	envDBUser     = "PROPAPP_DB_USER"
	envDBPassword = "PROPAPP_DB_PASSWORD"
)

var (
	newProbe      = func(binary string) prereq.Probe { return prereq.NewPHPProbe(binary) }
	newConnector  = func() database.Connector { return database.MySQLConnector{} }
	isInteractive = prompt.IsInteractive
	newHuhUI      = func() prompt.UI { return prompt.NewHuhUI() }
)

type rootFlags struct {
	root           string
	config         string
	dbHost         string
	dbName         string
	dbUser         string
	dbPassword     string
	envFile        string
	nonInteractive bool
	showDiff       bool
	verbose        bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, flags)
		},
	}

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&flags.root, flagRoot, "", messages.FlagRoot)
	persistent.StringVar(&flags.config, flagConfig, "", messages.FlagConfig)
	persistent.BoolVarP(&flags.verbose, flagVerbose, "v", false, messages.FlagVerbose)

	local := cmd.Flags()
	local.StringVar(&flags.dbHost, flagDBHost, "", messages.FlagDBHost)
	local.StringVar(&flags.dbName, flagDBName, "", messages.FlagDBName)
	local.StringVar(&flags.dbUser, flagDBUser, "", messages.FlagDBUser)
	local.StringVar(&flags.dbPassword, flagDBPassword, "", messages.FlagDBPassword)
	local.StringVar(&flags.envFile, flagEnvFile, "", messages.FlagEnvFile)
	local.BoolVar(&flags.nonInteractive, flagNonInteractive, false, messages.FlagNonInteractive)
	local.BoolVar(&flags.showDiff, flagShowDiff, false, messages.FlagShowDiff)

	cmd.AddCommand(newDoctorCmd(flags))
	return cmd
}

func runInstall(cmd *cobra.Command, flags *rootFlags) error {
	root, cfg, err := loadSettings(flags)
	if err != nil {
		return err
	}
	logger := logging.Component(logging.New(cmd.ErrOrStderr(), flags.verbose), "install")
	logger.Debug().Str("root", root).Str("mode", cfg.Rewrite.Mode).Msg("settings loaded")

	preset, err := credentialPreset(cmd, flags)
	if err != nil {
		return err
	}

	_, err = install.Run(cmd.Context(), install.Options{
		Root:           root,
		Config:         cfg,
		System:         install.RealSystem{},
		Probe:          newProbe(cfg.Runtime.Binary),
		UI:             credentialUI(cmd, flags),
		Preset:         preset,
		NonInteractive: flags.nonInteractive,
		Connector:      newConnector(),
		Out:            cmd.OutOrStdout(),
		ShowDiff:       flags.showDiff,
		Logger:         &logger,
	})
	return err
}

// credentialUI picks forms on a terminal and plain line reads otherwise.
func credentialUI(cmd *cobra.Command, flags *rootFlags) prompt.UI {
	if flags.nonInteractive {
		return nil
	}
	if isInteractive() {
		return newHuhUI()
	}
	return prompt.NewLineUI(cmd.InOrStdin(), cmd.OutOrStdout())
}

// loadSettings resolves the install root and loads the installer settings for it.
func loadSettings(flags *rootFlags) (string, *config.Config, error) {
	root, err := resolveRoot(flags.root)
	if err != nil {
		return "", nil, err
	}
	cfg, err := config.Load(root, flags.config)
	if err != nil {
		return "", nil, err
	}
	return root, cfg, nil
}

// resolveRoot returns the absolute install root, defaulting to the working directory.
func resolveRoot(flagValue string) (string, error) {
	if flagValue == "" {
		cwd, err := getwd()
		if err != nil {
			return "", fmt.Errorf(messages.GetwdFailedFmt, err)
		}
		return cwd, nil
	}
	expanded, err := config.ExpandPath(flagValue)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// credentialPreset collects credentials supplied ahead of time. An explicitly set flag
// wins over the process environment, which wins over the env file.
func credentialPreset(cmd *cobra.Command, flags *rootFlags) (prompt.Preset, error) {
	fileEnv := map[string]string{}
	if flags.envFile != "" {
		path, err := config.ExpandPath(flags.envFile)
		if err != nil {
			return prompt.Preset{}, err
		}
		if fileEnv, err = envfile.Load(path); err != nil {
			return prompt.Preset{}, err
		}
	}
	lookup := func(flag string, value string, env string) *string {
		if cmd.Flags().Changed(flag) {
			return &value
		}
		if envValue, ok := os.LookupEnv(env); ok {
			return &envValue
		}
		if fileValue, ok := fileEnv[env]; ok {
			return &fileValue
		}
		return nil
	}
	return prompt.Preset{
		Host:     lookup(flagDBHost, flags.dbHost, envDBHost),
		Name:     lookup(flagDBName, flags.dbName, envDBName),
		User:     lookup(flagDBUser, flags.dbUser, envDBUser),
		Password: lookup(flagDBPassword, flags.dbPassword, envDBPassword),
	}, nil
}
