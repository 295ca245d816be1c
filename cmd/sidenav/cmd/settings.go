package cmd

import (
	"github.com/pkg/errors"

	"github.com/go-drift/sidenav/pkg/config"
	"github.com/go-drift/sidenav/pkg/sidenav"
)

// loadConfig reads path, or sidenav.yaml in the working directory when path
// is empty.
func loadConfig(path string) (*config.File, error) {
	if path != "" {
		f, err := config.Load(path)
		return f, errors.Wrap(err, "Failed to load config")
	}
	f, err := config.LoadOptional(".")
	return f, errors.Wrap(err, "Failed to load "+config.FileName)
}

func resolveConfig(path string) (sidenav.Config, error) {
	f, err := loadConfig(path)
	if err != nil {
		return sidenav.Config{}, err
	}
	c, err := f.Resolve()
	return c, errors.Wrap(err, "Invalid config")
}
