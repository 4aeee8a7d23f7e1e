package messages

// Install messages printed while the installer runs.
const (
	InstallBanner = "==========================================="
	InstallTitle  = "Property App Installation Script"

	InstallStatusOK      = "OK"
	InstallStatusFailed  = "FAILED"
	InstallStatusMissing = "MISSING"
	InstallStatusCreated = "CREATED"
	InstallStatusExists  = "EXISTS"

	InstallCheckingVersion    = "Checking PHP version... "
	InstallVersionOKFmt       = "OK (%s)\n"
	InstallRequiredVersionFmt = "Required PHP version: %s or higher\n"
	InstallCurrentVersionFmt  = "Current PHP version: %s\n"
	InstallCheckingExtensions = "\nChecking required PHP extensions..."
	InstallItemFmt            = "  - %s... "

	InstallCreatingDirs       = "\nCreating required directories..."
	InstallSettingUpConfigs   = "\nSetting up configuration files..."
	InstallDatabaseSetup      = "\nDatabase Setup"
	InstallEnterCredentials   = "Please enter your database credentials:"
	InstallTestingConnection  = "\nTesting database connection... "
	InstallImportingSchema    = "Importing database schema... "
	InstallUpdatingConfigFile = "Updating configuration file... "
	InstallConfigDiffHeader   = "Configuration changes:"

	InstallCompleted = "Installation completed successfully!"
	InstallNextSteps = `Next steps:
1. Configure your web server to point to the project directory
2. Update the remaining configuration in %s:
   - Firebase settings
   - Payment gateway credentials
   - Application URL
3. Access the admin dashboard at: http://your-domain/admin_dashboard/
   Default admin credentials:
   Email: admin@example.com
   Password: admin123

4. For security, please change the admin password after first login
`

	InstallRootRequired      = "install root is required"
	InstallSystemRequired    = "install system is required"
	InstallConfigRequired    = "installer settings are required"
	InstallProbeRequired     = "runtime probe is required"
	InstallConnectorRequired = "database connector is required"

	InstallCreateDirFailedFmt   = "Unable to create directory: %s: %w"
	InstallPathNotDirFmt        = "Unable to create directory: %s exists and is not a directory"
	InstallFailedStatFmt        = "failed to stat %s: %w"
	InstallCopyFailedFmt        = "Unable to copy %s to %s: %w"
	InstallReadSchemaFailedFmt  = "failed to read schema file %s: %w"
	InstallReadConfigFailedFmt  = "failed to read configuration file %s: %w"
	InstallWriteConfigFailedFmt = "failed to write configuration file %s: %w"
)
