// Package config reads sidenav.yaml, the optional file that tunes drawer
// gestures and settle timing for the CLI and script replays.
//
// A minimal file:
//
//	version: v1.0.0
//	drawer:
//	  density: 2
//	  open_duration: 300ms
//
// Fields left out keep their defaults.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/sidenav/pkg/errors"
	"github.com/go-drift/sidenav/pkg/sidenav"
)

import stderrors "errors"

// FileName is the file LoadOptional looks for.
const FileName = "sidenav.yaml"

// CurrentVersion is written by Marshal and assumed when a file has no
// version. Files must share its major version.
const CurrentVersion = "v1.0.0"

// File is the on-disk form of sidenav.yaml.
type File struct {
	Version string       `yaml:"version,omitempty"`
	Drawer  DrawerConfig `yaml:"drawer"`
}

// DrawerConfig mirrors sidenav.Config.
type DrawerConfig struct {
	Density          float64  `yaml:"density"`
	TouchSlop        float64  `yaml:"touch_slop"`
	MinFlingVelocity float64  `yaml:"min_fling_velocity"`
	MaxFlingVelocity float64  `yaml:"max_fling_velocity"`
	OpenDuration     Duration `yaml:"open_duration"`
	CloseDuration    Duration `yaml:"close_duration"`
	VelocityHorizon  Duration `yaml:"velocity_horizon"`
	TapTimeout       Duration `yaml:"tap_timeout"`
}

// Duration is a time.Duration written as a Go duration string ("500ms").
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns a File holding sidenav.DefaultConfig.
func Default() *File {
	return FromConfig(sidenav.DefaultConfig())
}

// FromConfig converts a sidenav.Config to its file form.
func FromConfig(c sidenav.Config) *File {
	return &File{
		Version: CurrentVersion,
		Drawer: DrawerConfig{
			Density:          c.Density,
			TouchSlop:        c.TouchSlop,
			MinFlingVelocity: c.MinFlingVelocity,
			MaxFlingVelocity: c.MaxFlingVelocity,
			OpenDuration:     Duration(c.OpenDuration),
			CloseDuration:    Duration(c.CloseDuration),
			VelocityHorizon:  Duration(c.VelocityHorizon),
			TapTimeout:       Duration(c.TapTimeout),
		},
	}
}

// Parse decodes data over the defaults.
func Parse(data []byte) (*File, error) {
	f := Default()
	f.Version = ""
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, errors.New("config.Parse", errors.KindConfig, err)
	}
	return f, nil
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		e := errors.New("config.Load", errors.KindConfig, err)
		e.Path = path
		return nil, e
	}
	f, err := Parse(data)
	if err != nil {
		e := errors.New("config.Load", errors.KindConfig, err)
		e.Path = path
		return nil, e
	}
	return f, nil
}

// LoadOptional reads sidenav.yaml from dir if present, and returns the
// defaults otherwise.
func LoadOptional(dir string) (*File, error) {
	f, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return f, nil
}

// Resolve checks the file version and converts the drawer section to a
// validated sidenav.Config.
func (f *File) Resolve() (sidenav.Config, error) {
	version := strings.TrimSpace(f.Version)
	if version == "" {
		version = CurrentVersion
	}
	if !semver.IsValid(version) {
		return sidenav.Config{}, errors.New("config.Resolve", errors.KindConfig,
			fmt.Errorf("invalid version %q", f.Version))
	}
	if semver.Major(version) != semver.Major(CurrentVersion) {
		return sidenav.Config{}, errors.New("config.Resolve", errors.KindConfig,
			fmt.Errorf("unsupported version %s, want %s.x", version, semver.Major(CurrentVersion)))
	}

	d := f.Drawer
	c := sidenav.Config{
		Density:          d.Density,
		TouchSlop:        d.TouchSlop,
		MinFlingVelocity: d.MinFlingVelocity,
		MaxFlingVelocity: d.MaxFlingVelocity,
		OpenDuration:     time.Duration(d.OpenDuration),
		CloseDuration:    time.Duration(d.CloseDuration),
		VelocityHorizon:  time.Duration(d.VelocityHorizon),
		TapTimeout:       time.Duration(d.TapTimeout),
	}
	if err := c.Validate(); err != nil {
		return sidenav.Config{}, errors.New("config.Resolve", errors.KindConfig, err)
	}
	return c, nil
}

// Marshal encodes f as YAML.
func Marshal(f *File) ([]byte, error) {
	out := *f
	if out.Version == "" {
		out.Version = CurrentVersion
	}
	return yaml.Marshal(&out)
}
