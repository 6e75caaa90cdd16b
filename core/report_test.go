package core

import (
	"testing"

	"github.com/huangsam/vigil/schema"
	"github.com/stretchr/testify/assert"
)

func record(path string, status schema.Status) schema.FileRecord {
	return schema.FileRecord{
		Path:           path,
		SelectedAge:    5,
		WarnThreshold:  10,
		CritThreshold:  20,
		Unit:           schema.Minutes,
		Classification: status,
		Message:        path + " explanation",
	}
}

func TestAggregateSingleFile(t *testing.T) {
	result := Aggregate([]schema.FileRecord{record("/tmp/a", schema.StatusOK)})

	assert.Equal(t, schema.StatusOK, result.AggregateStatus)
	assert.Equal(t, 1, result.CountOK)
	assert.Equal(t, "/tmp/a explanation", result.Message)
	assert.Equal(t, "file_age_minutes=5;10;20;0;", result.PerfData)
}

func TestAggregateMultiFile(t *testing.T) {
	tests := []struct {
		name            string
		statuses        []schema.Status
		expectedStatus  schema.Status
		expectedMessage string
	}{
		{
			name:            "critical outranks warn",
			statuses:        []schema.Status{schema.StatusOK, schema.StatusWarn, schema.StatusCritical},
			expectedStatus:  schema.StatusCritical,
			expectedMessage: "1 of 3 files critical: /tmp/f2",
		},
		{
			name:            "warn outranks ok",
			statuses:        []schema.Status{schema.StatusWarn, schema.StatusOK},
			expectedStatus:  schema.StatusWarn,
			expectedMessage: "1 of 2 files warning: /tmp/f0",
		},
		{
			name:            "all ok lists every file",
			statuses:        []schema.Status{schema.StatusOK, schema.StatusOK},
			expectedStatus:  schema.StatusOK,
			expectedMessage: "all 2 files within age thresholds: /tmp/f0, /tmp/f1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []schema.FileRecord
			for i, status := range tt.statuses {
				records = append(records, record(fmtPath(i), status))
			}
			result := Aggregate(records)

			assert.Equal(t, tt.expectedStatus, result.AggregateStatus)
			assert.Equal(t, tt.expectedMessage, result.Message)
			assert.Empty(t, result.PerfData, "perfdata must be suppressed for multi-file runs")
			ok, warn, critical := result.Counts()
			assert.Equal(t, len(tt.statuses), ok+warn+critical)
		})
	}
}

func TestAggregateEmpty(t *testing.T) {
	result := Aggregate(nil)
	assert.Equal(t, schema.StatusUnknown, result.AggregateStatus)
}

func TestFormatStatusLine(t *testing.T) {
	t.Run("with perfdata", func(t *testing.T) {
		result := schema.RunResult{
			AggregateStatus: schema.StatusCritical,
			Message:         "/tmp/a is 3 days old",
			PerfData:        "file_age_days=3;1;2;0;",
		}
		line := FormatStatusLine(CheckName, result)
		assert.Equal(t, "FILE_AGE CRITICAL - /tmp/a is 3 days old | file_age_days=3;1;2;0;", line)
	})

	t.Run("without perfdata there is no trailing pipe", func(t *testing.T) {
		result := schema.RunResult{
			AggregateStatus: schema.StatusUnknown,
			Message:         "could not find file /nope",
		}
		line := FormatStatusLine(CheckName, result)
		assert.Equal(t, "FILE_AGE UNKNOWN - could not find file /nope", line)
		assert.NotContains(t, line, "|")
	})
}

func fmtPath(i int) string {
	return "/tmp/f" + string(rune('0'+i))
}
