package schema

// FileRecord is the evaluation of a single resolved file. Records are
// accumulated in resolution order; no lookup by key happens downstream.
type FileRecord struct {
	Path string // Resolved file name

	// Raw age sample, derived once from now - mtime and never resampled.
	AgeSeconds int64
	AgeMinutes int64
	AgeHours   int64
	AgeDays    int64

	// SelectedAge is the age re-expressed in the resolved threshold unit.
	SelectedAge int64

	// Thresholds share a single resolved unit; construction fails otherwise.
	WarnThreshold int64
	CritThreshold int64
	Unit          Unit

	Classification Status
	Message        string
}

// RunResult is the aggregate outcome of one plugin invocation.
type RunResult struct {
	Records []FileRecord

	CountOK       int
	CountWarn     int
	CountCritical int

	// AggregateStatus uses the precedence CRITICAL > WARN > OK across
	// evaluated records, or UNKNOWN when the run terminated before
	// evaluation (gate or threshold failure).
	AggregateStatus Status

	Message string

	// PerfData is populated only when exactly one file was evaluated.
	PerfData string
}

// Counts returns ok/warn/critical tallies over the records.
func (r *RunResult) Counts() (ok, warn, critical int) {
	return r.CountOK, r.CountWarn, r.CountCritical
}
