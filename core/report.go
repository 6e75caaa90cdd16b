package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/vigil/schema"
)

// Aggregate folds per-file classifications into the run result. A single
// evaluated file carries its full explanation and performance data; a
// multi-file run lists only the file names in the worst non-OK category and
// suppresses performance data entirely.
func Aggregate(records []schema.FileRecord) schema.RunResult {
	result := schema.RunResult{Records: records, AggregateStatus: schema.StatusOK}

	for _, rec := range records {
		switch rec.Classification {
		case schema.StatusCritical:
			result.CountCritical++
		case schema.StatusWarn:
			result.CountWarn++
		case schema.StatusOK:
			result.CountOK++
		default:
			// Unreachable given the total partition in Classify.
			result.AggregateStatus = schema.StatusUnknown
			result.Message = fmt.Sprintf("no classification produced for %s", rec.Path)
			return result
		}
		result.AggregateStatus = result.AggregateStatus.Merge(rec.Classification)
	}

	switch len(records) {
	case 0:
		result.AggregateStatus = schema.StatusUnknown
		result.Message = "no files were evaluated"
	case 1:
		result.Message = records[0].Message
		result.PerfData = PerfData(records[0])
	default:
		result.Message = multiFileMessage(records, result.AggregateStatus)
	}
	return result
}

// PerfData renders the monitoring performance token for a single record.
func PerfData(rec schema.FileRecord) string {
	return fmt.Sprintf("file_age_%s=%d;%d;%d;0;",
		rec.Unit, rec.SelectedAge, rec.WarnThreshold, rec.CritThreshold)
}

// FormatStatusLine renders the single stdout line consumed by the monitoring
// server. Performance data, when present, follows a pipe separator; no bare
// trailing pipe is emitted otherwise.
func FormatStatusLine(checkName string, result schema.RunResult) string {
	line := fmt.Sprintf("%s %s - %s", checkName, result.AggregateStatus, result.Message)
	if result.PerfData != "" {
		line += " | " + result.PerfData
	}
	return line
}

func multiFileMessage(records []schema.FileRecord, aggregate schema.Status) string {
	var names []string
	for _, rec := range records {
		if rec.Classification == aggregate {
			names = append(names, rec.Path)
		}
	}
	listed := strings.Join(names, ", ")

	switch aggregate {
	case schema.StatusCritical:
		return fmt.Sprintf("%d of %d files critical: %s", len(names), len(records), listed)
	case schema.StatusWarn:
		return fmt.Sprintf("%d of %d files warning: %s", len(names), len(records), listed)
	default:
		return fmt.Sprintf("all %d files within age thresholds: %s", len(records), listed)
	}
}
