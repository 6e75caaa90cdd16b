package schema

// Status is a monitoring plugin state. The integer values double as the
// process exit codes consumed by the monitoring server and must never change.
type Status int

// Standard monitoring plugin states, ordered by severity for aggregation.
// UNKNOWN sorts above CRITICAL only for exit-code purposes; aggregation of
// evaluated files never produces UNKNOWN.
const (
	StatusOK Status = iota
	StatusWarn
	StatusCritical
	StatusUnknown
)

// String returns the status token used in plugin output lines.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarn:
		return "WARN"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for the status.
func (s Status) ExitCode() int {
	return int(s)
}

// Merge returns the worse of two statuses using the precedence
// CRITICAL > WARN > OK. UNKNOWN is terminal and never merged.
func (s Status) Merge(other Status) Status {
	if other > s {
		return other
	}
	return s
}
