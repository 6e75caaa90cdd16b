// Package cmd defines the command-line interface for vigil.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/vigil/internal/contract"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(filageCmd)
	rootCmd.AddCommand(notifyauditCmd)
	rootCmd.AddCommand(versionCmd)

	// Plugin commands bend --help to the monitoring convention.
	filageCmd.SetHelpFunc(pluginHelp)
	notifyauditCmd.SetHelpFunc(pluginHelp)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Emit diagnostic trace to stderr (never changes the status line or exit code)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override for verbose tables (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of filageCmd to Viper
	filageCmd.Flags().String("file", "", "File or wildcard pattern to check (required)")
	filageCmd.Flags().String("warn", contract.DefaultWarnSpec, "Warn threshold as N with optional unit suffix s/m/h/d (default unit seconds)")
	filageCmd.Flags().String("crit", contract.DefaultCritSpec, "Critical threshold as N with optional unit suffix s/m/h/d")
	filageCmd.Flags().Bool("older", false, "Alert when file age exceeds the thresholds (default mode)")
	filageCmd.Flags().Bool("younger", false, "Alert when file age is below the thresholds")
	filageCmd.Flags().Bool("ignore", false, "Report OK instead of an alert when no file matches the pattern")
	filageCmd.Flags().String("missing", "unknown", "Status for a missing file without --ignore: unknown or critical")
	if err := viper.BindPFlags(filageCmd.Flags()); err != nil {
		contract.LogFatal("Error binding filage flags", err)
	}

	// Bind all flags of notifyauditCmd to Viper
	notifyauditCmd.Flags().String("status-file", contract.DefaultStatusFile, "Path to the monitoring daemon status snapshot")
	notifyauditCmd.Flags().String("to", "", "Comma-separated report recipients (required unless --dry-run)")
	notifyauditCmd.Flags().String("from", contract.DefaultFromAddr, "Report sender address")
	notifyauditCmd.Flags().String("smtp", contract.DefaultSMTPAddr, "SMTP server address")
	notifyauditCmd.Flags().String("subject", contract.DefaultSubject, "Report subject line")
	notifyauditCmd.Flags().Bool("dry-run", false, "Print the report to stdout instead of sending mail")
	if err := viper.BindPFlags(notifyauditCmd.Flags()); err != nil {
		contract.LogFatal("Error binding notifyaudit flags", err)
	}
}
