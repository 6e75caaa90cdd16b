// Package schema holds shared types and constants for vigil plugins.
package schema

// Custom string types for type safety.
type (
	// Unit represents a time unit for ages and thresholds.
	Unit string

	// CheckMode represents the comparison direction of the file-age check.
	CheckMode string

	// MissingPolicy represents how an empty pattern match is reported.
	MissingPolicy string
)

// All threshold units supported.
const (
	Seconds Unit = "seconds" // default
	Minutes Unit = "minutes"
	Hours   Unit = "hours"
	Days    Unit = "days"
)

// All check modes supported.
const (
	OlderMode   CheckMode = "older" // default
	YoungerMode CheckMode = "younger"
)

// All missing-file policies supported.
const (
	MissingUnknown  MissingPolicy = "unknown" // default
	MissingCritical MissingPolicy = "critical"
)

// ValidUnits lists all valid threshold units.
var ValidUnits = map[Unit]struct{}{
	Seconds: {},
	Minutes: {},
	Hours:   {},
	Days:    {},
}

// ValidMissingPolicies lists all valid missing-file policies.
var ValidMissingPolicies = map[MissingPolicy]struct{}{
	MissingUnknown:  {},
	MissingCritical: {},
}

// UnitSuffixes maps the single-letter threshold suffix to its unit.
var UnitSuffixes = map[byte]Unit{
	's': Seconds,
	'm': Minutes,
	'h': Hours,
	'd': Days,
}
