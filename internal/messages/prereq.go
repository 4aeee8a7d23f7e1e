package messages

// Prerequisite messages.
const (
	PrereqProbeFailedFmt          = "failed to run %s %s: %w"
	PrereqProbeStderrFmt          = "%w: %s"
	PrereqEmptyVersionFmt         = "%s reported an empty version"
	PrereqInvalidRequiredFmt      = "invalid required version %q: %w"
	PrereqInvalidCurrentFmt       = "unrecognized PHP version %q"
	PrereqVersionTooLowFmt        = "PHP %s is older than the required %s"
	PrereqMissingExtensionsHeader = "The following PHP extensions are required but missing:"
	PrereqMissingExtensionLineFmt = "\n  - %s"
)
