package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/sidenav/pkg/errors"
	"github.com/go-drift/sidenav/pkg/sidenav"
)

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	f, err := Parse([]byte("drawer:\n  density: 2\n  open_duration: 250ms\n"))
	if err != nil {
		t.Fatal(err)
	}
	c, err := f.Resolve()
	if err != nil {
		t.Fatal(err)
	}

	want := sidenav.DefaultConfig()
	want.Density = 2
	want.OpenDuration = 250 * time.Millisecond
	if c != want {
		t.Errorf("Resolve() = %+v, want %+v", c, want)
	}
}

func TestParseZeroDuration(t *testing.T) {
	f, err := Parse([]byte("drawer:\n  close_duration: 0s\n"))
	if err != nil {
		t.Fatal(err)
	}
	c, err := f.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if c.CloseDuration != 0 {
		t.Errorf("CloseDuration = %v, want 0", c.CloseDuration)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad duration", "drawer:\n  open_duration: fast\n"},
		{"bad yaml", "drawer: [\n"},
		{"wrong type", "drawer:\n  density: lots\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.KindOf(err) != errors.KindConfig {
				t.Errorf("kind = %v, want config", errors.KindOf(err))
			}
		})
	}
}

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"", false},
		{"v1.0.0", false},
		{"v1.4", false},
		{"v2.0.0", true},
		{"1.0.0", true},
		{"latest", true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			f := Default()
			f.Version = tt.version
			_, err := f.Resolve()
			if (err != nil) != tt.wantErr {
				t.Errorf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveValidates(t *testing.T) {
	f := Default()
	f.Drawer.TouchSlop = -1
	_, err := f.Resolve()
	if err == nil || errors.KindOf(err) != errors.KindConfig {
		t.Fatalf("Resolve() error = %v, want a config error", err)
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	f, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c, err := f.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if c != sidenav.DefaultConfig() {
		t.Errorf("missing file should give defaults, got %+v", c)
	}
}

func TestLoadReportsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("drawer:\n  tap_timeout: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadOptional(dir)
	if err == nil {
		t.Fatal("expected error")
	}
	e, ok := err.(*errors.Error)
	if !ok || e.Path != path {
		t.Errorf("error = %v, want *errors.Error with path %s", err, path)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := sidenav.DefaultConfig()
	cfg.TapTimeout = 300 * time.Millisecond
	data, err := Marshal(FromConfig(cfg))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "tap_timeout: 300ms") {
		t.Errorf("durations should be written as strings:\n%s", data)
	}

	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	got, err := f.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
