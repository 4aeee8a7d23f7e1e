package messages

// Env file messages.
const (
	EnvfileReadFailedFmt           = "failed to read env file %s: %w"
	EnvfileLineErrorFmt            = "%s line %d: %w"
	EnvfileExpectedKeyValue        = "expected KEY=VALUE"
	EnvfileUnterminatedQuotedValue = "unterminated quoted value"
	EnvfileInvalidQuotedSuffix     = "unexpected text after quoted value"
)
