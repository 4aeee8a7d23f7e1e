package messages

// Credential prompt messages.
const (
	PromptDBHostFmt     = "Database Host (default: %s)"
	PromptDBNameFmt     = "Database Name (default: %s)"
	PromptDBUserFmt     = "Database Username (default: %s)"
	PromptDBPassword    = "Database Password"
	PromptLineFmt       = "%s: "
	PromptUIRequired    = "credential prompts require an input source; pass --non-interactive or the --db-* flags"
	PromptRequiresTerm  = "interactive prompts require a terminal"
	PromptCancelled     = "credential entry cancelled"
	PromptReadFailedFmt = "failed to read %s: %w"
)
