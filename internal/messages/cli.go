package messages

// CLI messages for the root command and shared flags.
const (
	// RootUse is the binary name.
	RootUse   = "propapp-install"
	RootShort = "Install the Property App admin dashboard"
	RootLong  = `Verifies PHP prerequisites, provisions upload directories, materializes the
dashboard configuration, creates and seeds the MySQL database, and writes the
database credentials into the dashboard configuration.

Safe to re-run: existing directories and configuration files are left untouched.`

	VersionTemplate  = "{{.Version}}\n"
	VersionFullFmt   = "%s (%s)"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"

	FlagRoot           = "Install root that relative paths resolve against (default: current directory)"
	FlagConfig         = "Installer settings file (default: <root>/propapp-install.toml when present)"
	FlagDBHost         = "Database host; skips the host prompt"
	FlagDBName         = "Database name; skips the name prompt"
	FlagDBUser         = "Database username; skips the username prompt"
	FlagDBPassword     = "Database password; skips the password prompt"
	FlagEnvFile        = "KEY=VALUE file supplying PROPAPP_DB_* credentials"
	FlagNonInteractive = "Never prompt; unset credentials take their defaults"
	FlagShowDiff       = "Print a unified diff of the configuration rewrite (password masked)"
	FlagVerbose        = "Write debug logs to stderr"

	// ErrorLineFmt prefixes every fatal error printed by the CLI.
	ErrorLineFmt = "Error: %v\n"

	GetwdFailedFmt = "failed to determine working directory: %w"
)
