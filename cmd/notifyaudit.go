package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/huangsam/vigil/internal/contract"
	"github.com/huangsam/vigil/internal/outwriter"
	"github.com/huangsam/vigil/internal/report"
	"github.com/huangsam/vigil/internal/statusdat"
	"github.com/huangsam/vigil/schema"
)

// notifyauditCmd reports hosts and services with alerting disabled.
var notifyauditCmd = &cobra.Command{
	Use:   "notifyaudit",
	Short: "Email an HTML summary of hosts/services with disabled alerting.",
	Long: `Parse a monitoring daemon status snapshot and report every host and
service whose notifications are switched off, so silenced objects do not
stay forgotten.

The report is mailed as HTML to the --to recipients, or printed as console
tables with --dry-run. The exit status doubles as a check result: WARN when
anything has notifications disabled, OK otherwise.

Examples:
  # Mail the audit to the operations list
  vigil notifyaudit --status-file /var/log/nagios/status.dat --to ops@example.com

  # Inspect the report without sending anything
  vigil notifyaudit --status-file /var/log/nagios/status.dat --dry-run`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := sharedSetup(); err != nil {
			exitPlugin(report.CheckName, schema.StatusUnknown, err.Error(), "")
		}
		if err := contract.ValidateNotifyAudit(cfg); err != nil {
			exitPlugin(report.CheckName, schema.StatusUnknown, err.Error(), "")
		}

		snap, err := statusdat.Load(cfg.StatusFile)
		if err != nil {
			exitPlugin(report.CheckName, schema.StatusUnknown, err.Error(), "")
		}
		contract.Tracef(cfg.Verbose, "parsed %d host(s) and %d service(s) from %s",
			len(snap.Hosts), len(snap.Services), cfg.StatusFile)

		audit := report.BuildAudit(snap, cfg.StatusFile, time.Now())

		if cfg.DryRun {
			if err := outwriter.WriteAuditTables(audit, cfg, os.Stdout); err != nil {
				exitPlugin(report.CheckName, schema.StatusUnknown, err.Error(), "")
			}
		} else {
			html, err := report.RenderHTML(audit)
			if err != nil {
				exitPlugin(report.CheckName, schema.StatusUnknown, err.Error(), "")
			}
			msg := report.BuildMessage(cfg.From, cfg.To, cfg.Subject, html)
			if err := report.SendMail(cfg.SMTPAddr, cfg.From, cfg.To, msg); err != nil {
				exitPlugin(report.CheckName, schema.StatusUnknown, err.Error(), "")
			}
			contract.Tracef(cfg.Verbose, "report sent to %v via %s", cfg.To, cfg.SMTPAddr)
		}

		status, summary := report.Summary(audit)
		exitPlugin(report.CheckName, status, summary, "")
	},
}
