package cmd

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/go-drift/sidenav/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Print the resolved configuration",
		Long: `Print the drawer configuration as YAML after applying defaults.

Reads sidenav.yaml from the current directory if present, or the file
given with --config. The output is a complete file that can be edited
and passed back with --config.`,
		Usage: "sidenav config [--config FILE]",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	var path string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a file path")
			}
			path = args[i+1]
			i++
		default:
			return fmt.Errorf("unexpected argument %q", args[i])
		}
	}

	c, err := resolveConfig(path)
	if err != nil {
		return err
	}
	data, err := config.Marshal(config.FromConfig(c))
	if err != nil {
		return errors.Wrap(err, "Failed to encode config")
	}
	_, err = stdout.Write(data)
	return err
}
