package core

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/huangsam/vigil/schema"
)

// thresholdPattern accepts a whole number with at most one unit suffix.
// A bare number means seconds.
var thresholdPattern = regexp.MustCompile(`^([0-9]+)([smhd])?$`)

// Threshold is a parsed warn or crit specification.
type Threshold struct {
	Value int64
	Unit  schema.Unit
}

// ParseThreshold parses a threshold string such as "90", "90s", "15m",
// "24h" or "2d" into a value and unit without mutating the input.
func ParseThreshold(spec string) (Threshold, error) {
	m := thresholdPattern.FindStringSubmatch(spec)
	if m == nil {
		return Threshold{}, fmt.Errorf(
			"could not determine unit of measurement as seconds/minutes/hours/days for %q", spec)
	}

	value, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Threshold{}, fmt.Errorf("threshold %q out of range: %w", spec, err)
	}

	unit := schema.Seconds
	if m[2] != "" {
		unit = schema.UnitSuffixes[m[2][0]]
	}
	return Threshold{Value: value, Unit: unit}, nil
}

// ResolveThresholds parses the warn and crit specifications independently and
// rejects the pair when their units differ. The common unit selects which age
// field each record is judged in.
func ResolveThresholds(warnSpec, critSpec string) (warn, crit Threshold, err error) {
	if warn, err = ParseThreshold(warnSpec); err != nil {
		return warn, crit, err
	}
	if crit, err = ParseThreshold(critSpec); err != nil {
		return warn, crit, err
	}
	if warn.Unit != crit.Unit {
		return warn, crit, fmt.Errorf(
			"warn threshold is in %s but crit threshold is in %s, use consistent units for both",
			warn.Unit, crit.Unit)
	}
	return warn, crit, nil
}
