package sidenav

import (
	"fmt"
	"time"

	"github.com/go-drift/sidenav/pkg/gestures"
)

// DefaultSettleDuration is how long an explicit open or close takes.
const DefaultSettleDuration = 500 * time.Millisecond

// Config tunes gesture thresholds and settle timing. Distances and velocities
// are in density-independent pixels and are multiplied by Density.
//
// Start from DefaultConfig: zero durations are meaningful (an instant
// settle), so a zero Config is not the same as the defaults.
type Config struct {
	// Density converts dp to pixels. Values <= 0 are treated as 1.
	Density float64

	// TouchSlop is the travel before a drag is classified.
	TouchSlop float64
	// MinFlingVelocity is the slowest release, in dp/s, treated as a fling.
	MinFlingVelocity float64
	// MaxFlingVelocity caps release velocity, in dp/s.
	MaxFlingVelocity float64

	// OpenDuration is the settle time for ShowNavigationView.
	OpenDuration time.Duration
	// CloseDuration is the settle time for ShowContentView.
	CloseDuration time.Duration

	// VelocityHorizon bounds the samples used for release velocity.
	VelocityHorizon time.Duration
	// TapTimeout is the longest press that closes an open drawer as a tap.
	TapTimeout time.Duration
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Density:          1,
		TouchSlop:        gestures.DefaultTouchSlop,
		MinFlingVelocity: gestures.DefaultMinFlingVelocity,
		MaxFlingVelocity: gestures.DefaultMaxFlingVelocity,
		OpenDuration:     DefaultSettleDuration,
		CloseDuration:    DefaultSettleDuration,
		VelocityHorizon:  gestures.DefaultVelocityHorizon,
		TapTimeout:       gestures.DefaultTapTimeout,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.TouchSlop < 0:
		return fmt.Errorf("touch slop must not be negative, got %v", c.TouchSlop)
	case c.MinFlingVelocity < 0:
		return fmt.Errorf("min fling velocity must not be negative, got %v", c.MinFlingVelocity)
	case c.MaxFlingVelocity > 0 && c.MaxFlingVelocity < c.MinFlingVelocity:
		return fmt.Errorf("max fling velocity %v is below min fling velocity %v", c.MaxFlingVelocity, c.MinFlingVelocity)
	case c.OpenDuration < 0 || c.CloseDuration < 0:
		return fmt.Errorf("settle durations must not be negative")
	case c.VelocityHorizon < 0 || c.TapTimeout < 0:
		return fmt.Errorf("velocity horizon and tap timeout must not be negative")
	}
	return nil
}

func (c Config) density() float64 {
	if c.Density <= 0 {
		return 1
	}
	return c.Density
}

func (c Config) touchSlop() float64        { return c.TouchSlop * c.density() }
func (c Config) minFlingVelocity() float64 { return c.MinFlingVelocity * c.density() }
func (c Config) maxFlingVelocity() float64 { return c.MaxFlingVelocity * c.density() }
