// Package report builds and delivers the notification-audit report.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/huangsam/vigil/schema"
)

// CheckName is the token prefixing the audit's status line.
const CheckName = "NOTIFY_AUDIT"

// BuildAudit collects everything in the snapshot with alerting switched off.
func BuildAudit(snap *schema.Snapshot, statusFile string, now time.Time) *schema.AuditReport {
	audit := &schema.AuditReport{
		StatusFile:          statusFile,
		GeneratedAt:         now,
		GlobalNotifications: snap.Program.EnableNotifications,
	}
	for _, h := range snap.Hosts {
		if !h.NotificationsEnabled {
			audit.DisabledHosts = append(audit.DisabledHosts, h)
		}
	}
	for _, s := range snap.Services {
		if !s.NotificationsEnabled {
			audit.DisabledServices = append(audit.DisabledServices, s)
		}
	}
	return audit
}

var htmlTemplate = template.Must(template.New("audit").Funcs(template.FuncMap{
	"stamp": func(t time.Time) string {
		if t.IsZero() {
			return "never"
		}
		return t.Format("2006-01-02 15:04:05")
	},
}).Parse(`<html>
<head><title>Notification audit</title></head>
<body>
<h2>Notification audit for {{.StatusFile}}</h2>
<p>Generated {{stamp .GeneratedAt}}</p>
{{if not .GlobalNotifications}}
<p><b>Notifications are disabled daemon-wide.</b></p>
{{end}}
{{if .Empty}}
<p>All hosts and services have notifications enabled.</p>
{{else}}
{{if .DisabledHosts}}
<h3>Hosts with notifications disabled</h3>
<table border="1" cellpadding="4">
<tr><th>Host</th><th>Last check</th><th>Output</th></tr>
{{range .DisabledHosts}}
<tr><td>{{.Name}}</td><td>{{stamp .LastCheck}}</td><td>{{.PluginOutput}}</td></tr>
{{end}}
</table>
{{end}}
{{if .DisabledServices}}
<h3>Services with notifications disabled</h3>
<table border="1" cellpadding="4">
<tr><th>Host</th><th>Service</th><th>Last check</th><th>Output</th></tr>
{{range .DisabledServices}}
<tr><td>{{.HostName}}</td><td>{{.Description}}</td><td>{{stamp .LastCheck}}</td><td>{{.PluginOutput}}</td></tr>
{{end}}
</table>
{{end}}
{{end}}
</body>
</html>
`))

// RenderHTML renders the audit as the HTML email body.
func RenderHTML(audit *schema.AuditReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, audit); err != nil {
		return nil, fmt.Errorf("render audit template: %w", err)
	}
	return buf.Bytes(), nil
}

// Summary is the single status line for the audit run, suitable for a
// monitoring scheduler that runs the audit itself as a check.
func Summary(audit *schema.AuditReport) (schema.Status, string) {
	if audit.Empty() {
		return schema.StatusOK, "all hosts and services have notifications enabled"
	}
	msg := fmt.Sprintf("%d host(s) and %d service(s) have notifications disabled",
		len(audit.DisabledHosts), len(audit.DisabledServices))
	if !audit.GlobalNotifications {
		msg = "notifications are disabled daemon-wide, " + msg
	}
	return schema.StatusWarn, msg
}
