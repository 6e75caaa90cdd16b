package core

import (
	"testing"

	"github.com/huangsam/vigil/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThreshold(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		expected    Threshold
		expectError bool
	}{
		{
			name:     "bare number defaults to seconds",
			spec:     "86400",
			expected: Threshold{Value: 86400, Unit: schema.Seconds},
		},
		{
			name:     "explicit seconds suffix",
			spec:     "90s",
			expected: Threshold{Value: 90, Unit: schema.Seconds},
		},
		{
			name:     "minutes suffix",
			spec:     "15m",
			expected: Threshold{Value: 15, Unit: schema.Minutes},
		},
		{
			name:     "hours suffix",
			spec:     "24h",
			expected: Threshold{Value: 24, Unit: schema.Hours},
		},
		{
			name:     "days suffix",
			spec:     "2d",
			expected: Threshold{Value: 2, Unit: schema.Days},
		},
		{
			name:     "zero is a valid value",
			spec:     "0",
			expected: Threshold{Value: 0, Unit: schema.Seconds},
		},
		{
			name:        "unknown suffix",
			spec:        "10w",
			expectError: true,
		},
		{
			name:        "suffix without value",
			spec:        "d",
			expectError: true,
		},
		{
			name:        "negative value",
			spec:        "-5",
			expectError: true,
		},
		{
			name:        "fractional value",
			spec:        "1.5h",
			expectError: true,
		},
		{
			name:        "empty string",
			spec:        "",
			expectError: true,
		},
		{
			name:        "suffix before digits",
			spec:        "h24",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseThreshold(tt.spec)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "seconds/minutes/hours/days")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, parsed)
			}
		})
	}
}

func TestResolveThresholds(t *testing.T) {
	t.Run("matching units resolve", func(t *testing.T) {
		warn, crit, err := ResolveThresholds("90d", "95d")
		require.NoError(t, err)
		assert.Equal(t, Threshold{Value: 90, Unit: schema.Days}, warn)
		assert.Equal(t, Threshold{Value: 95, Unit: schema.Days}, crit)
	})

	t.Run("bare and explicit seconds are the same unit", func(t *testing.T) {
		warn, crit, err := ResolveThresholds("60", "120s")
		require.NoError(t, err)
		assert.Equal(t, schema.Seconds, warn.Unit)
		assert.Equal(t, schema.Seconds, crit.Unit)
	})

	t.Run("mismatched units are rejected regardless of values", func(t *testing.T) {
		_, _, err := ResolveThresholds("24h", "2d")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hours")
		assert.Contains(t, err.Error(), "days")
	})

	t.Run("malformed warn reported first", func(t *testing.T) {
		_, _, err := ResolveThresholds("nope", "also-nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"nope"`)
	})
}
