package gestures

import "time"

// Touch thresholds in density-independent pixels. Multiply by the display
// density to get physical pixels.
const (
	// DefaultTouchSlop is the distance a pointer may travel before the motion
	// is treated as a drag.
	DefaultTouchSlop = 8.0

	// DefaultMinFlingVelocity is the slowest release, in pixels per second,
	// that counts as a fling.
	DefaultMinFlingVelocity = 50.0

	// DefaultMaxFlingVelocity caps reported velocities, in pixels per second.
	DefaultMaxFlingVelocity = 8000.0
)

const (
	// DefaultVelocityHorizon is how far back from the newest sample the
	// velocity tracker looks.
	DefaultVelocityHorizon = 100 * time.Millisecond

	// DefaultPointerStoppedGap is the pause between samples after which
	// earlier samples no longer contribute to velocity.
	DefaultPointerStoppedGap = 40 * time.Millisecond

	// DefaultTapTimeout is the longest press that still counts as a tap.
	DefaultTapTimeout = 500 * time.Millisecond
)
