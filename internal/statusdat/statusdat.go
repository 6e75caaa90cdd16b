// Package statusdat parses Nagios-compatible status.dat snapshots.
//
// The format is a sequence of "<type> { key=value ... }" blocks separated by
// a closing brace line. Unknown block types and keys are skipped so the
// parser survives snapshots written by newer daemons.
package statusdat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/vigil/schema"
)

// block is one raw stanza before it is mapped onto a typed struct.
type block struct {
	kind   string
	fields map[string]string
}

// Load reads and parses a status snapshot from disk.
func Load(path string) (*schema.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open status file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse decodes a status snapshot from a reader.
func Parse(r io.Reader) (*schema.Snapshot, error) {
	snap := &schema.Snapshot{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *block
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		switch {
		case text == "" || strings.HasPrefix(text, "#"):
			continue
		case current == nil:
			kind, ok := strings.CutSuffix(text, "{")
			if !ok {
				return nil, fmt.Errorf("line %d: expected block header, got %q", line, text)
			}
			current = &block{kind: strings.TrimSpace(kind), fields: make(map[string]string)}
		case text == "}":
			applyBlock(snap, current)
			current = nil
		default:
			key, value, ok := strings.Cut(text, "=")
			if !ok {
				// Plugin output may contain anything; a stray line inside a
				// block is ignored rather than fatal.
				continue
			}
			current.fields[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read status file: %w", err)
	}
	if current != nil {
		return nil, fmt.Errorf("unterminated %s block", current.kind)
	}
	return snap, nil
}

func applyBlock(snap *schema.Snapshot, b *block) {
	switch b.kind {
	case "info":
		snap.Created = fieldTime(b.fields, "created")
		snap.Version = b.fields["version"]
	case "programstatus":
		snap.Program = schema.ProgramStatus{
			PID:                 fieldInt(b.fields, "nagios_pid"),
			ProgramStart:        fieldTime(b.fields, "program_start"),
			EnableNotifications: fieldBool(b.fields, "enable_notifications"),
		}
	case "hoststatus":
		snap.Hosts = append(snap.Hosts, schema.HostStatus{
			Name:                 b.fields["host_name"],
			CurrentState:         fieldInt(b.fields, "current_state"),
			PluginOutput:         b.fields["plugin_output"],
			NotificationsEnabled: fieldBool(b.fields, "notifications_enabled"),
			ActiveChecksEnabled:  fieldBool(b.fields, "active_checks_enabled"),
			LastCheck:            fieldTime(b.fields, "last_check"),
		})
	case "servicestatus":
		snap.Services = append(snap.Services, schema.ServiceStatus{
			HostName:             b.fields["host_name"],
			Description:          b.fields["service_description"],
			CurrentState:         fieldInt(b.fields, "current_state"),
			PluginOutput:         b.fields["plugin_output"],
			NotificationsEnabled: fieldBool(b.fields, "notifications_enabled"),
			ActiveChecksEnabled:  fieldBool(b.fields, "active_checks_enabled"),
			LastCheck:            fieldTime(b.fields, "last_check"),
		})
	}
	// Comments, downtimes and anything newer are irrelevant to the audit.
}

func fieldInt(fields map[string]string, key string) int {
	v, err := strconv.Atoi(fields[key])
	if err != nil {
		return 0
	}
	return v
}

func fieldBool(fields map[string]string, key string) bool {
	return fields[key] == "1"
}

func fieldTime(fields map[string]string, key string) time.Time {
	epoch, err := strconv.ParseInt(fields[key], 10, 64)
	if err != nil || epoch == 0 {
		return time.Time{}
	}
	return time.Unix(epoch, 0)
}
