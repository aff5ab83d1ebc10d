// Package constants contains names and defaults shared across ficedit.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "ficedit"

	// LogFilename is the default log file name.
	LogFilename = "ficedit.log"

	// ConfigFilename is the default tool config file name inside the XDG config dir.
	ConfigFilename = "config.yml"

	// SettingsFilename is the editor settings file that ficedit modifies.
	SettingsFilename = "settings.json"

	// BackupDirName is the directory created beside the settings file to hold backups.
	BackupDirName = ".ficedit-backups"

	// BackupInfix separates the settings base name from the backup timestamp.
	BackupInfix = ".backup-"

	// BackupTimeLayout is the second-granularity timestamp embedded in backup names.
	BackupTimeLayout = "2006-01-02_15-04-05"

	// DefaultRetentionCount is how many backups survive pruning.
	DefaultRetentionCount = 20
)
