package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/huangsam/vigil/internal/contract"
	"github.com/huangsam/vigil/schema"
)

// WriteAuditTables renders the notification audit as console tables, used by
// the dry-run path instead of sending mail.
func WriteAuditTables(audit *schema.AuditReport, cfg *contract.Config, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Notification audit for %s\n", audit.StatusFile); err != nil {
		return err
	}
	if !audit.GlobalNotifications {
		if _, err := fmt.Fprintln(writer, "Notifications are disabled daemon-wide."); err != nil {
			return err
		}
	}
	if audit.Empty() {
		_, err := fmt.Fprintln(writer, "All hosts and services have notifications enabled.")
		return err
	}

	stampWidth := 19 // "2006-01-02 15:04:05"
	outputWidth := getTerminalWidth(cfg) - stampWidth - 40
	if outputWidth < 15 {
		outputWidth = 15
	}

	if len(audit.DisabledHosts) > 0 {
		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Host", "Last Check", "Output"})
		var data [][]string
		for _, h := range audit.DisabledHosts {
			data = append(data, []string{h.Name, stamp(h.LastCheck), TruncatePath(h.PluginOutput, outputWidth)})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if len(audit.DisabledServices) > 0 {
		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Host", "Service", "Last Check", "Output"})
		var data [][]string
		for _, s := range audit.DisabledServices {
			data = append(data, []string{s.HostName, s.Description, stamp(s.LastCheck), TruncatePath(s.PluginOutput, outputWidth)})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("2006-01-02 15:04:05")
}
