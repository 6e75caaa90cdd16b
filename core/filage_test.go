package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/vigil/internal/contract"
	"github.com/huangsam/vigil/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touch creates a file and backdates its modification time relative to now.
func touch(t *testing.T, dir, name string, age time.Duration, now time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	mtime := now.Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func baseConfig(pattern string) *contract.Config {
	return &contract.Config{
		Pattern:       pattern,
		WarnSpec:      contract.DefaultWarnSpec,
		CritSpec:      contract.DefaultCritSpec,
		Mode:          schema.OlderMode,
		MissingPolicy: schema.MissingUnknown,
	}
}

func TestExecuteFileAgeMissing(t *testing.T) {
	now := time.Now()
	missing := filepath.Join(t.TempDir(), "absent.dat")

	t.Run("ignore flag reports ok", func(t *testing.T) {
		cfg := baseConfig(missing)
		cfg.IgnoreMissing = true

		result := ExecuteFileAge(cfg, now)
		assert.Equal(t, schema.StatusOK, result.AggregateStatus)
		assert.Contains(t, result.Message, "does not exist")
	})

	t.Run("default policy reports unknown", func(t *testing.T) {
		result := ExecuteFileAge(baseConfig(missing), now)
		assert.Equal(t, schema.StatusUnknown, result.AggregateStatus)
		assert.Contains(t, result.Message, "could not find file")
	})

	t.Run("legacy policy reports critical", func(t *testing.T) {
		cfg := baseConfig(missing)
		cfg.MissingPolicy = schema.MissingCritical

		result := ExecuteFileAge(cfg, now)
		assert.Equal(t, schema.StatusCritical, result.AggregateStatus)
		assert.Contains(t, result.Message, "could not find file")
	})

	t.Run("ignore wins over thresholds that would not parse", func(t *testing.T) {
		cfg := baseConfig(missing)
		cfg.IgnoreMissing = true
		cfg.WarnSpec = "garbage"

		result := ExecuteFileAge(cfg, now)
		assert.Equal(t, schema.StatusOK, result.AggregateStatus)
	})
}

func TestExecuteFileAgeUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	now := time.Now()
	dir := t.TempDir()
	path := touch(t, dir, "locked.dat", time.Hour, now)
	require.NoError(t, os.Chmod(path, 0o000))

	result := ExecuteFileAge(baseConfig(path), now)
	assert.Equal(t, schema.StatusUnknown, result.AggregateStatus)
	assert.Contains(t, result.Message, "not readable or executable")
}

func TestExecuteFileAgeThresholdFailures(t *testing.T) {
	now := time.Now()
	dir := t.TempDir()
	path := touch(t, dir, "feed.csv", time.Hour, now)

	t.Run("mixed units", func(t *testing.T) {
		cfg := baseConfig(path)
		cfg.WarnSpec = "24h"
		cfg.CritSpec = "2d"

		result := ExecuteFileAge(cfg, now)
		assert.Equal(t, schema.StatusUnknown, result.AggregateStatus)
		assert.Contains(t, result.Message, "hours")
		assert.Contains(t, result.Message, "days")
	})

	t.Run("older mode ordering violation", func(t *testing.T) {
		cfg := baseConfig(path)
		cfg.WarnSpec = "100"
		cfg.CritSpec = "50"

		result := ExecuteFileAge(cfg, now)
		assert.Equal(t, schema.StatusUnknown, result.AggregateStatus)
		assert.Contains(t, result.Message, "warn must be less than crit")
	})
}

func TestExecuteFileAgeScenarios(t *testing.T) {
	now := time.Now()

	t.Run("three day old file against generous day thresholds", func(t *testing.T) {
		dir := t.TempDir()
		path := touch(t, dir, "dump.sql", 72*time.Hour, now)
		cfg := baseConfig(path)
		cfg.WarnSpec = "90d"
		cfg.CritSpec = "95d"

		result := ExecuteFileAge(cfg, now)
		assert.Equal(t, schema.StatusOK, result.AggregateStatus)
		assert.Contains(t, result.Message, "3 days")
		assert.Equal(t, "file_age_days=3;90;95;0;", result.PerfData)
	})

	t.Run("hundred day old file breaches critical", func(t *testing.T) {
		dir := t.TempDir()
		path := touch(t, dir, "dump.sql", 100*24*time.Hour, now)
		cfg := baseConfig(path)
		cfg.WarnSpec = "90d"
		cfg.CritSpec = "95d"

		result := ExecuteFileAge(cfg, now)
		assert.Equal(t, schema.StatusCritical, result.AggregateStatus)
	})

	t.Run("younger mode flags a freshly touched config", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "app.cfg", time.Hour, now)
		cfg := baseConfig(filepath.Join(dir, "*.cfg"))
		cfg.Mode = schema.YoungerMode
		cfg.WarnSpec = "48h"
		cfg.CritSpec = "24h"

		result := ExecuteFileAge(cfg, now)
		assert.Equal(t, schema.StatusCritical, result.AggregateStatus)
	})

	t.Run("glob over multiple files suppresses perfdata", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "a.log", time.Hour, now)
		touch(t, dir, "b.log", 2*time.Hour, now)
		cfg := baseConfig(filepath.Join(dir, "*.log"))

		result := ExecuteFileAge(cfg, now)
		assert.Equal(t, schema.StatusOK, result.AggregateStatus)
		assert.Empty(t, result.PerfData)
		assert.Len(t, result.Records, 2)
	})

	t.Run("worst file decides the aggregate", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "fresh.log", time.Minute, now)
		stale := touch(t, dir, "stale.log", 3*24*time.Hour, now)
		cfg := baseConfig(filepath.Join(dir, "*.log"))

		result := ExecuteFileAge(cfg, now)
		assert.Equal(t, schema.StatusCritical, result.AggregateStatus)
		assert.Contains(t, result.Message, stale)
		assert.NotContains(t, result.Message, "fresh.log")
	})

	t.Run("future mtime clamps instead of going negative", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "skewed.dat")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		future := now.Add(2 * time.Hour)
		require.NoError(t, os.Chtimes(path, future, future))

		cfg := baseConfig(path)
		result := ExecuteFileAge(cfg, now)
		require.Len(t, result.Records, 1)
		assert.Equal(t, int64(0), result.Records[0].AgeSeconds)
		assert.Equal(t, schema.StatusOK, result.AggregateStatus)
	})
}
