package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check prerequisites and install state without changing anything"

	DoctorHealthCheckFmt = "Checking Property App install in %s...\n"

	DoctorCheckNameRuntime    = "Runtime"
	DoctorCheckNameExtension  = "Extension"
	DoctorCheckNameStructure  = "Structure"
	DoctorCheckNameConfigFile = "ConfigFile"
	DoctorCheckNameSchema     = "Schema"

	DoctorStatusOKLabel   = "[OK]  "
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"
	DoctorResultLineFmt   = "%s %-10s %s\n"

	DoctorRecommendationPrefix = "       -> "

	DoctorRuntimeOKFmt        = "PHP %s satisfies %s or higher"
	DoctorRuntimeFailedFmt    = "%v"
	DoctorRuntimeRecommendFmt = "Install PHP %s or newer, or point runtime.binary at it."
	DoctorExtensionLoadedFmt  = "Loaded: %s"
	DoctorExtensionMissingFmt = "Missing: %s"
	DoctorExtensionRecommend  = "Install or enable the extension in php.ini."
	DoctorExtensionsProbeFmt  = "Failed to list PHP extensions: %v"
	DoctorDirExistsFmt        = "Directory exists: %s"
	DoctorDirMissingFmt       = "Missing directory: %s"
	DoctorPathNotDirFmt       = "%s exists but is not a directory"
	DoctorRunInstallRecommend = "Run `propapp-install` to provision it."
	DoctorPathNotDirRecommend = "Remove or rename the file, then run `propapp-install`."
	DoctorConfigExistsFmt     = "Configuration present: %s"
	DoctorConfigMissingFmt    = "Configuration not yet created: %s"
	DoctorTemplateMissingFmt  = "Template missing: %s"
	DoctorTemplateRecommend   = "Restore the template from version control."
	DoctorSchemaFoundFmt      = "Schema file present: %s"
	DoctorSchemaMissingFmt    = "Schema file missing: %s"
	DoctorSchemaRecommend     = "Restore the schema file from version control before installing."
	DoctorStatFailedFmt       = "Failed to inspect %s: %v"

	DoctorSuccessSummary = "All checks passed."
	DoctorFailureSummary = "Some checks failed."
	DoctorFailureError   = "doctor found failing checks"
)
