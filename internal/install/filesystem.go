package install

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/propapp-install/internal/messages"
)

// dirPerm matches what the dashboard expects for upload directories; umask still applies.
const dirPerm os.FileMode = 0o777

func (inst *installer) path(rel string) string {
	return filepath.Join(inst.root, rel)
}

func (inst *installer) createDirectories(_ context.Context) error {
	_, _ = fmt.Fprintln(inst.out, messages.InstallCreatingDirs)
	for _, dir := range inst.cfg.Paths.Directories {
		inst.item(dir)
		created, err := inst.ensureDir(dir)
		if err != nil {
			inst.failed()
			return err
		}
		if !created {
			inst.exists()
			continue
		}
		inst.created()
		inst.result.CreatedDirs = append(inst.result.CreatedDirs, dir)
	}
	return nil
}

func (inst *installer) ensureDir(dir string) (bool, error) {
	path := inst.path(dir)
	info, err := inst.sys.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf(messages.InstallPathNotDirFmt, dir)
		}
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf(messages.InstallFailedStatFmt, dir, err)
	}
	if err := inst.sys.MkdirAll(path, dirPerm); err != nil {
		return false, fmt.Errorf(messages.InstallCreateDirFailedFmt, dir, err)
	}
	return true, nil
}

// copyConfigFiles seeds each destination from its template. An existing destination
// is never touched, which keeps operator edits and previously written credentials.
func (inst *installer) copyConfigFiles(_ context.Context) error {
	_, _ = fmt.Fprintln(inst.out, messages.InstallSettingUpConfigs)
	for _, file := range inst.cfg.Paths.ConfigFiles {
		inst.item(file.Destination)
		created, err := inst.copyIfMissing(file.Template, file.Destination)
		if err != nil {
			inst.failed()
			return err
		}
		if !created {
			inst.exists()
			continue
		}
		inst.created()
		inst.result.CreatedConfigs = append(inst.result.CreatedConfigs, file.Destination)
	}
	return nil
}

func (inst *installer) copyIfMissing(src, dest string) (bool, error) {
	destPath := inst.path(dest)
	if _, err := inst.sys.Stat(destPath); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf(messages.InstallFailedStatFmt, dest, err)
	}

	srcPath := inst.path(src)
	info, err := inst.sys.Stat(srcPath)
	if err != nil {
		return false, fmt.Errorf(messages.InstallCopyFailedFmt, src, dest, err)
	}
	data, err := inst.sys.ReadFile(srcPath)
	if err != nil {
		return false, fmt.Errorf(messages.InstallCopyFailedFmt, src, dest, err)
	}
	if err := inst.sys.WriteFileAtomic(destPath, data, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf(messages.InstallCopyFailedFmt, src, dest, err)
	}
	return true, nil
}
