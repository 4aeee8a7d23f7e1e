package messages

// Database messages.
const (
	DatabaseOpenFailedFmt    = "failed to open connection to %s: %w"
	DatabaseConnectFailedFmt = "failed to connect to %s: %w"
	DatabaseNameRequired     = "database name is required"
	DatabaseCreateFailedFmt  = "failed to create database %s: %w"
	DatabaseUseFailedFmt     = "failed to select database %s: %w"
	DatabaseImportFailedFmt  = "failed to import schema: %w"
	DatabaseNotConnected     = "database connection not established"
)
