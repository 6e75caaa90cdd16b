package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/huangsam/vigil/schema"
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)    // criticalColor represents standard danger.
	WarnColor     = color.New(color.FgYellow)             // warnColor represents standard caution, not bold.
	OKColor       = color.New(color.FgGreen)              // okColor represents a healthy signal.
	UnknownColor  = color.New(color.FgCyan)               // unknownColor represents an indeterminate signal.
	TraceColor    = color.New(color.FgWhite, color.Faint) // traceColor keeps verbose output out of the way.
)

// GetColorStatus returns the colored status token for console tables.
// The plain token from Status.String is used everywhere machine-facing.
func GetColorStatus(status schema.Status) string {
	switch status {
	case schema.StatusCritical:
		return CriticalColor.Sprint(status.String())
	case schema.StatusWarn:
		return WarnColor.Sprint(status.String())
	case schema.StatusOK:
		return OKColor.Sprint(status.String())
	default:
		return UnknownColor.Sprint(status.String())
	}
}

// LogFatal logs an error and exits the program with the UNKNOWN code, since
// a plugin that cannot run has no determinable state.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(schema.StatusUnknown.ExitCode())
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// Tracef writes a diagnostic line to stderr when verbose mode is on. It never
// touches stdout, so the primary plugin output line stays intact.
func Tracef(verbose bool, format string, args ...any) {
	if !verbose {
		return
	}
	_, _ = TraceColor.Fprintf(os.Stderr, format+"\n", args...)
}
