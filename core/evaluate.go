package core

import (
	"fmt"

	"github.com/huangsam/vigil/schema"
)

// ValidateThresholdOrder enforces the warn/crit ordering precondition of the
// selected mode before any file is classified.
func ValidateThresholdOrder(mode schema.CheckMode, warn, crit Threshold) error {
	switch mode {
	case schema.YoungerMode:
		if warn.Value <= crit.Value {
			return fmt.Errorf("when the --younger parameter is used, warn must be greater than crit")
		}
	default:
		if warn.Value >= crit.Value {
			return fmt.Errorf("when the --older parameter is used, warn must be less than crit")
		}
	}
	return nil
}

// Classify maps a selected age onto a status. Both modes partition the age
// axis totally, so every age lands in exactly one class.
func Classify(mode schema.CheckMode, age, warn, crit int64) schema.Status {
	if mode == schema.YoungerMode {
		switch {
		case age <= crit:
			return schema.StatusCritical
		case age <= warn:
			return schema.StatusWarn
		default:
			return schema.StatusOK
		}
	}
	switch {
	case age >= crit:
		return schema.StatusCritical
	case age >= warn:
		return schema.StatusWarn
	default:
		return schema.StatusOK
	}
}

// Evaluate builds the full record for one file: age selection in the
// resolved unit, classification and the per-file explanation.
func Evaluate(path string, sample AgeSample, mode schema.CheckMode, warn, crit Threshold) schema.FileRecord {
	age := sample.In(warn.Unit)
	status := Classify(mode, age, warn.Value, crit.Value)

	var message string
	if mode == schema.YoungerMode {
		message = fmt.Sprintf("%s was modified %d %s ago and may have been tampered with (warn under %d %s, crit under %d %s)",
			path, age, warn.Unit, warn.Value, warn.Unit, crit.Value, crit.Unit)
		if status == schema.StatusOK {
			message = fmt.Sprintf("%s was modified %d %s ago (warn under %d %s, crit under %d %s)",
				path, age, warn.Unit, warn.Value, warn.Unit, crit.Value, crit.Unit)
		}
	} else {
		message = fmt.Sprintf("%s is %d %s old and its data may be stale (warn over %d %s, crit over %d %s)",
			path, age, warn.Unit, warn.Value, warn.Unit, crit.Value, crit.Unit)
		if status == schema.StatusOK {
			message = fmt.Sprintf("%s is %d %s old (warn over %d %s, crit over %d %s)",
				path, age, warn.Unit, warn.Value, warn.Unit, crit.Value, crit.Unit)
		}
	}

	return schema.FileRecord{
		Path:           path,
		AgeSeconds:     sample.Seconds,
		AgeMinutes:     sample.Minutes,
		AgeHours:       sample.Hours,
		AgeDays:        sample.Days,
		SelectedAge:    age,
		WarnThreshold:  warn.Value,
		CritThreshold:  crit.Value,
		Unit:           warn.Unit,
		Classification: status,
		Message:        message,
	}
}
