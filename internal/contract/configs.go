package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/vigil/schema"
)

// Config holds the validated runtime configuration shared by all commands.
// Raw threshold strings stay unparsed here: the file-age pipeline normalizes
// them after the existence gate, so an ignored missing file short-circuits
// before any threshold error can surface.
type Config struct {
	// File-age check
	Pattern       string
	WarnSpec      string
	CritSpec      string
	Mode          schema.CheckMode
	IgnoreMissing bool
	MissingPolicy schema.MissingPolicy

	// Notification audit
	StatusFile string
	To         []string
	From       string
	SMTPAddr   string
	Subject    string
	DryRun     bool

	Verbose bool
	Width   int // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	File    string `mapstructure:"file"`
	Warn    string `mapstructure:"warn"`
	Crit    string `mapstructure:"crit"`
	Older   bool   `mapstructure:"older"`
	Younger bool   `mapstructure:"younger"`
	Ignore  bool   `mapstructure:"ignore"`
	Missing string `mapstructure:"missing"`

	StatusFile string `mapstructure:"status-file"`
	To         string `mapstructure:"to"`
	From       string `mapstructure:"from"`
	SMTP       string `mapstructure:"smtp"`
	Subject    string `mapstructure:"subject"`
	DryRun     bool   `mapstructure:"dry-run"`

	Verbose bool `mapstructure:"verbose"`
	Width   int  `mapstructure:"width"`
}

// ProcessAndValidate resolves the raw input into the final Config. It covers
// the settings shared by every command; per-command requirements live in
// ValidateFileAge and ValidateNotifyAudit.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.Older && input.Younger {
		return fmt.Errorf("--older and --younger are mutually exclusive")
	}
	cfg.Mode = schema.OlderMode
	if input.Younger {
		cfg.Mode = schema.YoungerMode
	}

	policy := schema.MissingPolicy(input.Missing)
	if policy == "" {
		policy = schema.MissingUnknown
	}
	if _, ok := schema.ValidMissingPolicies[policy]; !ok {
		return fmt.Errorf("invalid missing policy %q: must be unknown or critical", input.Missing)
	}
	cfg.MissingPolicy = policy

	if input.Width < 0 {
		return fmt.Errorf("invalid width %d: must be non-negative", input.Width)
	}

	cfg.Pattern = input.File
	cfg.WarnSpec = input.Warn
	cfg.CritSpec = input.Crit
	cfg.IgnoreMissing = input.Ignore

	cfg.StatusFile = input.StatusFile
	cfg.To = splitAddrs(input.To)
	cfg.From = input.From
	cfg.SMTPAddr = input.SMTP
	cfg.Subject = input.Subject
	cfg.DryRun = input.DryRun

	cfg.Verbose = input.Verbose
	cfg.Width = input.Width

	return nil
}

// ValidateFileAge enforces the requirements specific to the filage command.
func ValidateFileAge(cfg *Config) error {
	if cfg.Pattern == "" {
		return fmt.Errorf("--file is required")
	}
	if cfg.WarnSpec == "" || cfg.CritSpec == "" {
		return fmt.Errorf("--warn and --crit must not be empty")
	}
	return nil
}

// ValidateNotifyAudit enforces the requirements specific to the notifyaudit
// command. Recipients are only needed when mail will actually be sent.
func ValidateNotifyAudit(cfg *Config) error {
	if cfg.StatusFile == "" {
		return fmt.Errorf("--status-file is required")
	}
	if !cfg.DryRun && len(cfg.To) == 0 {
		return fmt.Errorf("--to is required unless --dry-run is set")
	}
	return nil
}

// splitAddrs splits a comma-separated recipient list, dropping empties.
func splitAddrs(s string) []string {
	var addrs []string
	for _, part := range strings.Split(s, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}
