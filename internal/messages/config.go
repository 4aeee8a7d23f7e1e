package messages

// Installer settings and config rewrite messages.
const (
	ConfigReadFailedFmt       = "failed to read installer settings %s: %w"
	ConfigInvalidFmt          = "invalid installer settings %s: %w"
	ConfigReadDefaultsFmt     = "failed to read default installer settings: %w"
	ConfigExpandPathFmt       = "failed to expand path %q: %w"
	ConfigFieldRequiredFmt    = "%s is required"
	ConfigEntryEmptyFmt       = "%s[%d] must not be empty"
	ConfigUnknownRewriteFmt   = "rewrite.mode %q is not one of %q or %q"
	ConfigInvalidTimeoutFmt   = "database.connect_timeout %q: %w"
	ConfigNegativeTimeoutFmt  = "database.connect_timeout %q must be positive"
	ConfigPatchKeyNotFoundFmt = "configuration key %s not found"
	ConfigPatchUnknownModeFmt = "unknown rewrite mode %q"
)
