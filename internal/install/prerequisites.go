package install

import (
	"context"
	"errors"
	"fmt"

	"github.com/conn-castle/propapp-install/internal/messages"
	"github.com/conn-castle/propapp-install/internal/prereq"
)

// checkPrerequisites stops at a too-old runtime, and otherwise reports every
// required extension before failing on the missing ones.
func (inst *installer) checkPrerequisites(ctx context.Context) error {
	runtime := inst.cfg.Runtime

	_, _ = fmt.Fprint(inst.out, messages.InstallCheckingVersion)
	version, err := prereq.CheckVersion(ctx, inst.probe, runtime.MinVersion)
	if err != nil {
		inst.failed()
		var versionErr *prereq.VersionError
		if errors.As(err, &versionErr) {
			_, _ = fmt.Fprintf(inst.out, messages.InstallRequiredVersionFmt, versionErr.Required)
			_, _ = fmt.Fprintf(inst.out, messages.InstallCurrentVersionFmt, versionErr.Current)
		}
		return err
	}
	_, _ = fmt.Fprintf(inst.out, messages.InstallVersionOKFmt, version)
	inst.result.RuntimeVersion = version
	inst.log.Debug().Str("version", version).Str("required", runtime.MinVersion).Msg("runtime version accepted")

	_, _ = fmt.Fprintln(inst.out, messages.InstallCheckingExtensions)
	err = prereq.CheckExtensions(ctx, inst.probe, runtime.Extensions, func(name string, loaded bool) {
		inst.item(name)
		if loaded {
			inst.ok()
			return
		}
		inst.missing()
	})
	if err != nil {
		_, _ = fmt.Fprintln(inst.out)
		return err
	}
	return nil
}
