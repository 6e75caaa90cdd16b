package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/vigil/core"
	"github.com/huangsam/vigil/internal/contract"
	"github.com/huangsam/vigil/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "vigil",
	Short:              "Nagios-compatible monitoring plugins for file age and notification hygiene.",
	Long:               `Vigil is a small family of monitoring plugins invoked by a monitoring server over SSH or NRPE.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".vigil") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("VIGIL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("warn", contract.DefaultWarnSpec)
	viper.SetDefault("crit", contract.DefaultCritSpec)
	viper.SetDefault("missing", string(schema.MissingUnknown))
	viper.SetDefault("status-file", contract.DefaultStatusFile)
	viper.SetDefault("smtp", contract.DefaultSMTPAddr)
	viper.SetDefault("from", contract.DefaultFromAddr)
	viper.SetDefault("subject", contract.DefaultSubject)
	viper.SetDefault("width", 0)
}

// sharedSetup unmarshals the merged configuration sources and validates the
// settings shared by every command. A failure here is a usage error, which a
// monitoring plugin reports as UNKNOWN rather than a bare non-zero exit.
func sharedSetup() error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run shared validation, populating the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// exitPlugin prints the single status line the monitoring server consumes
// and terminates the process with the protocol exit code.
func exitPlugin(checkName string, status schema.Status, message, perfData string) {
	result := schema.RunResult{AggregateStatus: status, Message: message, PerfData: perfData}
	fmt.Println(core.FormatStatusLine(checkName, result))
	os.Exit(status.ExitCode())
}

// pluginHelp prints usage and exits UNKNOWN, per the plugin convention that
// a help invocation must not look like a passing check to the scheduler.
func pluginHelp(c *cobra.Command, _ []string) {
	fmt.Println(c.Long)
	fmt.Print(c.UsageString())
	os.Exit(schema.StatusUnknown.ExitCode())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
