package testing

import (
	"image"
	"testing"

	"github.com/go-drift/sidenav/internal/harness"
	"github.com/go-drift/sidenav/pkg/sidenav"
)

const (
	// FrameDuration is the fake frame interval used by PumpFrames and
	// PumpAndSettle.
	FrameDuration = harness.FrameDuration
	// RestBeforeRelease is how long Drag holds the pointer still before
	// lifting it.
	RestBeforeRelease = harness.RestBeforeRelease
)

// Epoch is the time a new FakeClock starts at.
var Epoch = harness.Epoch

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = harness.ErrSettleTimeout

type (
	// FakeClock provides controllable time. It satisfies animation.Clock.
	FakeClock = harness.FakeClock
	// Pane is a sidenav.Pane that records what the layout did to it.
	Pane = harness.Pane
	// GestureTester drives a layout with synthetic pointer events and
	// frames on a fake clock.
	GestureTester = harness.Driver
)

// NewFakeClock returns a FakeClock starting at Epoch.
func NewFakeClock() *FakeClock {
	return harness.NewFakeClock()
}

// NewPane returns a visible, unmeasured pane.
func NewPane(name string, preferredWidth int) *Pane {
	return harness.NewPane(name, preferredWidth)
}

// NewGestureTester installs a fake clock and lays out layout in bounds.
// Call Cleanup when done, or use NewGestureTesterWithT instead.
func NewGestureTester(layout *sidenav.Layout, bounds image.Rectangle) *GestureTester {
	return harness.NewDriver(layout, bounds)
}

// NewGestureTesterWithT creates a tester that cleans up via t.Cleanup.
func NewGestureTesterWithT(t testing.TB, layout *sidenav.Layout, bounds image.Rectangle) *GestureTester {
	g := harness.NewDriver(layout, bounds)
	t.Cleanup(g.Cleanup)
	return g
}
