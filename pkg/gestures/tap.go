package gestures

import (
	"time"

	"github.com/go-drift/sidenav/pkg/graphics"
)

// TapDetector decides whether a single-pointer gesture was a tap: released
// within Timeout of the down event, without ever straying more than Slop
// from where it started.
type TapDetector struct {
	Slop    float64
	Timeout time.Duration

	pointer  int64
	start    graphics.Offset
	downTime time.Time
	tracking bool
	failed   bool
	tapped   bool
}

// NewTapDetector returns a detector with the given slop and the default timeout.
func NewTapDetector(slop float64) *TapDetector {
	return &TapDetector{Slop: slop, Timeout: DefaultTapTimeout}
}

// HandleEvent feeds a pointer event to the detector. It returns true on the
// up event that completes a tap.
func (d *TapDetector) HandleEvent(event PointerEvent) bool {
	switch event.Phase {
	case PointerPhaseDown:
		d.pointer = event.PointerID
		d.start = event.Position
		d.downTime = event.Timestamp
		d.tracking = true
		d.failed = false
		d.tapped = false
		return false
	}
	if !d.tracking || event.PointerID != d.pointer {
		return false
	}
	switch event.Phase {
	case PointerPhaseMove:
		if event.Position.Sub(d.start).Distance() > d.Slop {
			d.failed = true
		}
	case PointerPhaseUp:
		d.tracking = false
		if d.failed || event.Position.Sub(d.start).Distance() > d.Slop {
			return false
		}
		if d.Timeout > 0 && event.Timestamp.Sub(d.downTime) > d.Timeout {
			return false
		}
		d.tapped = true
		return true
	case PointerPhaseCancel:
		d.tracking = false
		d.failed = true
	}
	return false
}

// Tapped reports whether the last completed gesture was a tap.
func (d *TapDetector) Tapped() bool {
	return d.tapped
}
