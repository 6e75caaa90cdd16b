package schema

import "time"

// HostStatus is one hoststatus block from a monitoring status snapshot.
type HostStatus struct {
	Name                 string
	CurrentState         int
	PluginOutput         string
	NotificationsEnabled bool
	ActiveChecksEnabled  bool
	LastCheck            time.Time
}

// ServiceStatus is one servicestatus block from a monitoring status snapshot.
type ServiceStatus struct {
	HostName             string
	Description          string
	CurrentState         int
	PluginOutput         string
	NotificationsEnabled bool
	ActiveChecksEnabled  bool
	LastCheck            time.Time
}

// ProgramStatus holds the daemon-wide toggles from the programstatus block.
type ProgramStatus struct {
	PID                 int
	ProgramStart        time.Time
	EnableNotifications bool
}

// Snapshot is a parsed status.dat file.
type Snapshot struct {
	Created  time.Time
	Version  string
	Program  ProgramStatus
	Hosts    []HostStatus
	Services []ServiceStatus
}

// AuditReport collects every object whose alerting is switched off.
type AuditReport struct {
	StatusFile          string
	GeneratedAt         time.Time
	GlobalNotifications bool
	DisabledHosts       []HostStatus
	DisabledServices    []ServiceStatus
}

// Empty reports whether nothing in the snapshot has alerting disabled.
func (a *AuditReport) Empty() bool {
	return a.GlobalNotifications && len(a.DisabledHosts) == 0 && len(a.DisabledServices) == 0
}
