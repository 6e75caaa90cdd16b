package core

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/vigil/internal/contract"
	"github.com/huangsam/vigil/schema"
)

// ExecuteFileAge runs the whole file-age pipeline for one invocation and
// always returns a printable result; failures before evaluation surface as
// an UNKNOWN (or policy-selected) aggregate rather than an error, because
// every outcome of a monitoring plugin is a status.
func ExecuteFileAge(cfg *contract.Config, now time.Time) schema.RunResult {
	matches, err := ResolvePattern(cfg.Pattern)
	if err != nil {
		return terminal(schema.StatusUnknown, err.Error())
	}
	contract.Tracef(cfg.Verbose, "pattern %s resolved to %d file(s)", cfg.Pattern, len(matches))

	// Existence gate. With --ignore an empty match is a deliberate no-op;
	// otherwise the missing policy decides between UNKNOWN and the legacy
	// CRITICAL behavior.
	if len(matches) == 0 {
		if cfg.IgnoreMissing {
			return terminal(schema.StatusOK,
				fmt.Sprintf("skipping file age check, specified filename %s does not exist", cfg.Pattern))
		}
		status := schema.StatusUnknown
		if cfg.MissingPolicy == schema.MissingCritical {
			status = schema.StatusCritical
		}
		return terminal(status, fmt.Sprintf("could not find file %s", cfg.Pattern))
	}

	// Permission gate, fail-fast: without metadata access there is nothing
	// left to aggregate.
	for _, path := range matches {
		if !CheckAccess(path) {
			return terminal(schema.StatusUnknown,
				fmt.Sprintf("%s is not readable or executable by the current user", path))
		}
	}

	warn, crit, err := ResolveThresholds(cfg.WarnSpec, cfg.CritSpec)
	if err != nil {
		return terminal(schema.StatusUnknown, err.Error())
	}
	if err := ValidateThresholdOrder(cfg.Mode, warn, crit); err != nil {
		return terminal(schema.StatusUnknown, err.Error())
	}
	contract.Tracef(cfg.Verbose, "thresholds resolved to warn=%d crit=%d unit=%s mode=%s",
		warn.Value, crit.Value, warn.Unit, cfg.Mode)

	records := make([]schema.FileRecord, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			return terminal(schema.StatusUnknown, fmt.Sprintf("could not stat %s: %v", path, err))
		}
		sample := SampleAge(info.ModTime(), now)
		if info.ModTime().After(now) {
			contract.Tracef(cfg.Verbose, "%s has a modification time in the future, age clamped to zero", path)
		}
		rec := Evaluate(path, sample, cfg.Mode, warn, crit)
		contract.Tracef(cfg.Verbose, "%s age=%d %s -> %s", rec.Path, rec.SelectedAge, rec.Unit, rec.Classification)
		records = append(records, rec)
	}

	return Aggregate(records)
}

func terminal(status schema.Status, message string) schema.RunResult {
	return schema.RunResult{AggregateStatus: status, Message: message}
}
