// Package gestures provides the pointer event model and the small set of
// recognizer primitives the side navigation layout is built from: touch
// thresholds, a windowed velocity tracker, and a tap detector.
//
// Events are delivered by the host in the order they occur. All types in this
// package are meant to be used from the UI thread and are not safe for
// concurrent use.
package gestures

import (
	"fmt"
	"time"

	"github.com/go-drift/sidenav/pkg/graphics"
)

// PointerPhase identifies where a pointer event sits in its gesture.
type PointerPhase int

const (
	// PointerPhaseDown is the first event of a gesture.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove reports a pointer that moved while down.
	PointerPhaseMove
	// PointerPhaseUp is the final event of a completed gesture.
	PointerPhaseUp
	// PointerPhaseCancel ends a gesture that the platform aborted.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// ParsePointerPhase converts the String form of a phase back to a PointerPhase.
func ParsePointerPhase(s string) (PointerPhase, error) {
	switch s {
	case "down":
		return PointerPhaseDown, nil
	case "move":
		return PointerPhaseMove, nil
	case "up":
		return PointerPhaseUp, nil
	case "cancel":
		return PointerPhaseCancel, nil
	}
	return 0, fmt.Errorf("unknown pointer phase %q", s)
}

// PointerEvent is a single pointer sample in the receiver's local coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
	Timestamp time.Time
}

// IsTerminal reports whether the event ends its gesture.
func (e PointerEvent) IsTerminal() bool {
	return e.Phase == PointerPhaseUp || e.Phase == PointerPhaseCancel
}
