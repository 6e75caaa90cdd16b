// main is the entry point for the vigil monitoring plugins.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/vigil/cmd"
	"github.com/huangsam/vigil/schema"
)

func main() {
	// Flag and command errors are usage errors: the monitoring server must
	// see UNKNOWN, never a bare failure.
	if err := cmd.Execute(); err != nil {
		fmt.Printf("VIGIL %s - %v\n", schema.StatusUnknown, err)
		os.Exit(schema.StatusUnknown.ExitCode())
	}
}
