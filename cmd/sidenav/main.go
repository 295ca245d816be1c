// Command sidenav replays drawer gesture scripts and inspects configuration.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/sidenav/cmd/sidenav/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
