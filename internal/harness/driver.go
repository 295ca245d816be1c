// Package harness runs a sidenav.Layout headlessly: recording panes, a fake
// clock, and a driver that feeds pointer events and pumps frames. The script
// replayer runs on it, and pkg/testing exposes it to tests.
package harness

import (
	"errors"
	"image"
	"time"

	"github.com/go-drift/sidenav/pkg/animation"
	"github.com/go-drift/sidenav/pkg/gestures"
	"github.com/go-drift/sidenav/pkg/graphics"
	"github.com/go-drift/sidenav/pkg/sidenav"
)

const (
	// FrameDuration is the fake frame interval used by PumpFrames and
	// PumpAndSettle.
	FrameDuration = 16 * time.Millisecond

	// RestBeforeRelease is how long Drag holds the pointer still before
	// lifting it, long enough for the release velocity to drop to zero.
	RestBeforeRelease = 200 * time.Millisecond

	flingSteps = 10
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: layout did not settle")

// Driver drives a sidenav.Layout with synthetic pointer events and frames on
// a fake clock. It installs its clock as the animation clock for its
// lifetime.
type Driver struct {
	layout    *sidenav.Layout
	bounds    image.Rectangle
	clock     *FakeClock
	prevClock animation.Clock

	nextPointer int64
	pointer     int64
	position    graphics.Offset
	down        bool
}

// NewDriver installs a fake clock and lays out layout in bounds. Call
// Cleanup when done.
func NewDriver(layout *sidenav.Layout, bounds image.Rectangle) *Driver {
	clk := NewFakeClock()
	g := &Driver{
		layout: layout,
		bounds: bounds,
		clock:  clk,
	}
	g.prevClock = animation.SetClock(clk)
	layout.PerformLayout(bounds)
	return g
}

// Cleanup stops the layout's settle and restores the animation clock.
func (g *Driver) Cleanup() {
	g.layout.Dispose()
	animation.SetClock(g.prevClock)
}

// Layout returns the layout under test.
func (g *Driver) Layout() *sidenav.Layout {
	return g.layout
}

// Clock returns the fake clock.
func (g *Driver) Clock() *FakeClock {
	return g.clock
}

// Send delivers a raw event. A zero Timestamp is replaced by the clock time.
func (g *Driver) Send(event gestures.PointerEvent) bool {
	if event.Timestamp.IsZero() {
		event.Timestamp = g.clock.Now()
	}
	claimed := g.layout.HandlePointer(event)
	g.layoutIfNeeded()
	return claimed
}

// Down presses a new pointer at pos.
func (g *Driver) Down(pos graphics.Offset) bool {
	g.nextPointer++
	g.pointer = g.nextPointer
	g.position = pos
	g.down = true
	return g.Send(gestures.PointerEvent{
		PointerID: g.pointer,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
}

// MoveTo moves the current pointer to pos.
func (g *Driver) MoveTo(pos graphics.Offset) bool {
	g.position = pos
	return g.Send(gestures.PointerEvent{
		PointerID: g.pointer,
		Position:  pos,
		Phase:     gestures.PointerPhaseMove,
	})
}

// MoveBy moves the current pointer by (dx, dy).
func (g *Driver) MoveBy(dx, dy float64) bool {
	return g.MoveTo(g.position.Add(graphics.Offset{X: dx, Y: dy}))
}

// Up lifts the current pointer where it is.
func (g *Driver) Up() bool {
	g.down = false
	return g.Send(gestures.PointerEvent{
		PointerID: g.pointer,
		Position:  g.position,
		Phase:     gestures.PointerPhaseUp,
	})
}

// Cancel aborts the current pointer.
func (g *Driver) Cancel() bool {
	g.down = false
	return g.Send(gestures.PointerEvent{
		PointerID: g.pointer,
		Position:  g.position,
		Phase:     gestures.PointerPhaseCancel,
	})
}

// IsDown reports whether a pointer is pressed.
func (g *Driver) IsDown() bool {
	return g.down
}

// TapAt presses and immediately releases at pos.
func (g *Driver) TapAt(pos graphics.Offset) {
	g.Down(pos)
	g.clock.Advance(FrameDuration)
	g.Up()
}

// Drag moves from start by delta over duration, then rests for
// RestBeforeRelease before lifting, so the release is not a fling.
func (g *Driver) Drag(start, delta graphics.Offset, duration time.Duration) {
	g.moveInSteps(start, delta, duration)
	g.clock.Advance(RestBeforeRelease)
	g.Up()
}

// Fling moves from start by delta over duration and lifts while still
// moving, so the release carries delta/duration as velocity.
func (g *Driver) Fling(start, delta graphics.Offset, duration time.Duration) {
	g.moveInSteps(start, delta, duration)
	g.Up()
}

func (g *Driver) moveInSteps(start, delta graphics.Offset, duration time.Duration) {
	g.Down(start)
	step := duration / flingSteps
	for i := 1; i <= flingSteps; i++ {
		g.clock.Advance(step)
		frac := float64(i) / flingSteps
		g.MoveTo(graphics.Offset{X: start.X + delta.X*frac, Y: start.Y + delta.Y*frac})
	}
}

// Pump runs one frame at the current time: steps tickers, then lays out if
// the layout is dirty.
func (g *Driver) Pump() {
	animation.StepTickers()
	g.layoutIfNeeded()
}

// PumpFrames advances the clock by FrameDuration and pumps, n times.
func (g *Driver) PumpFrames(n int) {
	for i := 0; i < n; i++ {
		g.clock.Advance(FrameDuration)
		g.Pump()
	}
}

// PumpAndSettle pumps frames until no settle is running or timeout elapses.
func (g *Driver) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		g.Pump()
		if !g.layout.IsSettling() {
			return nil
		}
		g.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

func (g *Driver) layoutIfNeeded() {
	if g.layout.NeedsLayout() {
		g.layout.PerformLayout(g.bounds)
	}
}
