// Package contract provides configuration processing and shared utilities
// for the vigil plugin commands.
package contract

// Default thresholds for the file-age check.
const (
	DefaultWarnSpec = "86400"  // 1 day, implicit seconds
	DefaultCritSpec = "172800" // 2 days, implicit seconds
)

// Defaults for the notification audit reporter.
const (
	DefaultStatusFile = "/var/log/nagios/status.dat"
	DefaultSMTPAddr   = "localhost:25"
	DefaultFromAddr   = "vigil@localhost"
	DefaultSubject    = "Notification audit report"
)
