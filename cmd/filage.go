package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/huangsam/vigil/core"
	"github.com/huangsam/vigil/internal/contract"
	"github.com/huangsam/vigil/internal/outwriter"
	"github.com/huangsam/vigil/schema"
)

// filageCmd checks file age against warn/crit thresholds.
var filageCmd = &cobra.Command{
	Use:   "filage",
	Short: "Check the age of one or more files against warn/crit thresholds.",
	Long: `Check that files matching a pattern are neither too old nor too young.

Resolves the --file argument (a path or glob), samples every match's
modification time and classifies each file against the warn/crit
thresholds. The worst classification wins: any critical file makes the
whole check CRITICAL, else any warning makes it WARN.

Thresholds take an optional unit suffix (s, m, h, d); a bare number means
seconds. Warn and crit must use the same unit.

Examples:
  # Alert when a dump is older than 1/2 days (defaults)
  vigil filage --file /var/backups/dump.sql

  # Alert when any spool file goes stale
  vigil filage --file '/var/spool/feeds/*.csv' --warn 90d --crit 95d

  # Alert when a file that should be static was touched recently
  vigil filage --file /etc/passwd --younger --warn 48h --crit 24h

  # Treat a missing optional file as success
  vigil filage --file /var/run/optional.pid --ignore`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := sharedSetup(); err != nil {
			exitPlugin(core.CheckName, schema.StatusUnknown, err.Error(), "")
		}
		if err := contract.ValidateFileAge(cfg); err != nil {
			exitPlugin(core.CheckName, schema.StatusUnknown, err.Error(), "")
		}

		result := core.ExecuteFileAge(cfg, time.Now())

		if cfg.Verbose && len(result.Records) > 0 {
			if err := outwriter.WriteRecordTable(result.Records, cfg, os.Stderr); err != nil {
				contract.LogWarn("could not render verbose table", err)
			}
		}

		exitPlugin(core.CheckName, result.AggregateStatus, result.Message, result.PerfData)
	},
}
