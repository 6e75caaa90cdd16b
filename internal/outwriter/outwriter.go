// Package outwriter has console rendering for verbose and dry-run output.
// Nothing here touches the primary plugin status line.
package outwriter

import (
	"os"

	"github.com/huangsam/vigil/internal/contract"
	"golang.org/x/term"
)

// getTerminalWidth returns the usable terminal width, honoring the --width
// override and falling back to a conservative default when detection fails.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 so there is room for the "..." prefix and at least
// one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}
