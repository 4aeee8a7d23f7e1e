package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/propapp-install/internal/config"
	"github.com/conn-castle/propapp-install/internal/messages"
	"github.com/conn-castle/propapp-install/internal/prereq"
)

// Run performs every check for root in install order.
func Run(ctx context.Context, root string, cfg *config.Config, probe prereq.Probe) []Result {
	var results []Result
	results = append(results, CheckRuntime(ctx, probe, cfg.Runtime)...)
	results = append(results, CheckStructure(root, cfg.Paths.Directories)...)
	results = append(results, CheckConfigFiles(root, cfg.Paths.ConfigFiles)...)
	results = append(results, CheckSchema(root, cfg.Paths.Schema))
	return results
}

// CheckRuntime verifies the PHP version and reports each required extension.
// Extensions are not inspected when the runtime cannot be probed at all.
func CheckRuntime(ctx context.Context, probe prereq.Probe, runtime config.RuntimeConfig) []Result {
	var results []Result
	version, err := prereq.CheckVersion(ctx, probe, runtime.MinVersion)
	if err != nil {
		results = append(results, Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameRuntime,
			Message:        fmt.Sprintf(messages.DoctorRuntimeFailedFmt, err),
			Recommendation: fmt.Sprintf(messages.DoctorRuntimeRecommendFmt, runtime.MinVersion),
		})
		var versionErr *prereq.VersionError
		if !errors.As(err, &versionErr) {
			return results
		}
	} else {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameRuntime,
			Message:   fmt.Sprintf(messages.DoctorRuntimeOKFmt, version, runtime.MinVersion),
		})
	}

	err = prereq.CheckExtensions(ctx, probe, runtime.Extensions, func(name string, loaded bool) {
		if loaded {
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameExtension,
				Message:   fmt.Sprintf(messages.DoctorExtensionLoadedFmt, name),
			})
			return
		}
		results = append(results, Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameExtension,
			Message:        fmt.Sprintf(messages.DoctorExtensionMissingFmt, name),
			Recommendation: messages.DoctorExtensionRecommend,
		})
	})
	var missingErr *prereq.MissingExtensionsError
	if err != nil && !errors.As(err, &missingErr) {
		results = append(results, Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameExtension,
			Message:   fmt.Sprintf(messages.DoctorExtensionsProbeFmt, err),
		})
	}
	return results
}

// CheckStructure verifies that the upload directories exist.
func CheckStructure(root string, dirs []string) []Result {
	var results []Result
	for _, dir := range dirs {
		info, err := os.Stat(filepath.Join(root, dir))
		switch {
		case errors.Is(err, os.ErrNotExist):
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameStructure,
				Message:        fmt.Sprintf(messages.DoctorDirMissingFmt, dir),
				Recommendation: messages.DoctorRunInstallRecommend,
			})
		case err != nil:
			results = append(results, statFailed(messages.DoctorCheckNameStructure, dir, err))
		case !info.IsDir():
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameStructure,
				Message:        fmt.Sprintf(messages.DoctorPathNotDirFmt, dir),
				Recommendation: messages.DoctorPathNotDirRecommend,
			})
		default:
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameStructure,
				Message:   fmt.Sprintf(messages.DoctorDirExistsFmt, dir),
			})
		}
	}
	return results
}

// CheckConfigFiles reports each live config file. A destination not yet created is a
// warning while its template is present; a missing template fails.
func CheckConfigFiles(root string, files []config.ConfigFile) []Result {
	var results []Result
	for _, file := range files {
		_, err := os.Stat(filepath.Join(root, file.Destination))
		if err == nil {
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameConfigFile,
				Message:   fmt.Sprintf(messages.DoctorConfigExistsFmt, file.Destination),
			})
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			results = append(results, statFailed(messages.DoctorCheckNameConfigFile, file.Destination, err))
			continue
		}

		_, err = os.Stat(filepath.Join(root, file.Template))
		switch {
		case err == nil:
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameConfigFile,
				Message:        fmt.Sprintf(messages.DoctorConfigMissingFmt, file.Destination),
				Recommendation: messages.DoctorRunInstallRecommend,
			})
		case errors.Is(err, os.ErrNotExist):
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameConfigFile,
				Message:        fmt.Sprintf(messages.DoctorTemplateMissingFmt, file.Template),
				Recommendation: messages.DoctorTemplateRecommend,
			})
		default:
			results = append(results, statFailed(messages.DoctorCheckNameConfigFile, file.Template, err))
		}
	}
	return results
}

// CheckSchema verifies that the schema file is present.
func CheckSchema(root string, schema string) Result {
	_, err := os.Stat(filepath.Join(root, schema))
	switch {
	case err == nil:
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameSchema,
			Message:   fmt.Sprintf(messages.DoctorSchemaFoundFmt, schema),
		}
	case errors.Is(err, os.ErrNotExist):
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSchema,
			Message:        fmt.Sprintf(messages.DoctorSchemaMissingFmt, schema),
			Recommendation: messages.DoctorSchemaRecommend,
		}
	default:
		return statFailed(messages.DoctorCheckNameSchema, schema, err)
	}
}

func statFailed(check string, path string, err error) Result {
	return Result{
		Status:    StatusFail,
		CheckName: check,
		Message:   fmt.Sprintf(messages.DoctorStatFailedFmt, path, err),
	}
}
