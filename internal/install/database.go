package install

import (
	"context"
	"fmt"

	"github.com/conn-castle/propapp-install/internal/configpatch"
	"github.com/conn-castle/propapp-install/internal/database"
	"github.com/conn-castle/propapp-install/internal/messages"
	"github.com/conn-castle/propapp-install/internal/prompt"
)

func (inst *installer) collectCredentials(_ context.Context) error {
	_, _ = fmt.Fprintln(inst.out, messages.InstallDatabaseSetup)
	_, _ = fmt.Fprintln(inst.out, messages.InstallBanner)
	_, _ = fmt.Fprintln(inst.out, messages.InstallEnterCredentials)

	defaults := inst.cfg.Database
	creds, err := prompt.Collect(inst.ui, prompt.Request{
		Defaults:       prompt.Credentials{Host: defaults.Host, Name: defaults.Name, User: defaults.User},
		Preset:         inst.preset,
		NonInteractive: inst.nonInteractive,
	})
	if err != nil {
		return err
	}
	inst.result.Credentials = creds
	inst.log.Debug().
		Str("host", creds.Host).
		Str("database", creds.Name).
		Str("user", creds.User).
		Bool("password_set", creds.Password != "").
		Msg("credentials collected")
	return nil
}

// setupDatabase connects, creates and selects the database, imports the schema and
// writes the credentials into the live config. The first failure prints FAILED and
// aborts; nothing already done is rolled back.
func (inst *installer) setupDatabase(ctx context.Context) error {
	creds := inst.result.Credentials

	_, _ = fmt.Fprint(inst.out, messages.InstallTestingConnection)
	session, err := inst.connector.Connect(ctx, database.Params{
		Host:     creds.Host,
		User:     creds.User,
		Password: creds.Password,
		Timeout:  inst.cfg.Database.Timeout(),
	})
	if err != nil {
		inst.failed()
		return err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			inst.log.Debug().Err(closeErr).Msg("closing database session")
		}
	}()
	if err := session.Bootstrap(ctx, creds.Name); err != nil {
		inst.failed()
		return err
	}
	inst.ok()

	_, _ = fmt.Fprint(inst.out, messages.InstallImportingSchema)
	schemaPath := inst.path(inst.cfg.Paths.Schema)
	schema, err := inst.sys.ReadFile(schemaPath)
	if err != nil {
		inst.failed()
		return fmt.Errorf(messages.InstallReadSchemaFailedFmt, inst.cfg.Paths.Schema, err)
	}
	if err := session.ImportSchema(ctx, string(schema)); err != nil {
		inst.failed()
		return err
	}
	inst.ok()
	inst.log.Debug().Str("schema", schemaPath).Int("bytes", len(schema)).Msg("schema imported")

	_, _ = fmt.Fprint(inst.out, messages.InstallUpdatingConfigFile)
	diff, err := inst.rewriteConfig(creds)
	if err != nil {
		inst.failed()
		return err
	}
	inst.ok()
	if inst.showDiff && diff != "" {
		_, _ = fmt.Fprintln(inst.out, messages.InstallConfigDiffHeader)
		_, _ = fmt.Fprint(inst.out, diff)
	}
	return nil
}

// rewriteConfig writes the credentials into the rewrite target, keeping its permissions.
// The file is only written when its content changes. Returns a unified diff of the change
// with the password masked.
func (inst *installer) rewriteConfig(creds prompt.Credentials) (string, error) {
	rewrite := inst.cfg.Rewrite
	target := inst.path(rewrite.Target)

	info, err := inst.sys.Stat(target)
	if err != nil {
		return "", fmt.Errorf(messages.InstallReadConfigFailedFmt, rewrite.Target, err)
	}
	before, err := inst.sys.ReadFile(target)
	if err != nil {
		return "", fmt.Errorf(messages.InstallReadConfigFailedFmt, rewrite.Target, err)
	}
	after, err := configpatch.Apply(string(before), rewrite.Mode, rewrite.PatchKeys(), configpatch.Values{
		Host:     creds.Host,
		Name:     creds.Name,
		User:     creds.User,
		Password: creds.Password,
	})
	if err != nil {
		return "", err
	}
	if after == string(before) {
		inst.log.Debug().Str("path", target).Msg("configuration already up to date")
		return "", nil
	}
	if err := inst.sys.WriteFileAtomic(target, []byte(after), info.Mode().Perm()); err != nil {
		return "", fmt.Errorf(messages.InstallWriteConfigFailedFmt, rewrite.Target, err)
	}
	inst.result.ConfigChanged = true
	return configpatch.Diff(rewrite.Target,
		configpatch.Mask(string(before), creds.Password),
		configpatch.Mask(after, creds.Password)), nil
}
