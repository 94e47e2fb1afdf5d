// executor is the entrypoint of the executor service. It brings up logging, reports
// readiness, and runs until interrupted.
package main

import (
	"fmt"
	"os"

	"github.com/effxhq/executor/cmd/executor/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
