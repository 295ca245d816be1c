package sidenav

import (
	"fmt"
	"math"

	"github.com/go-drift/sidenav/pkg/gestures"
	"github.com/go-drift/sidenav/pkg/graphics"
	"github.com/go-drift/sidenav/pkg/log"
)

// Axis is the direction a touch session was classified as.
type Axis int

const (
	// AxisUndecided means the pointer has not yet moved beyond the slop.
	AxisUndecided Axis = iota
	// AxisHorizontal means the session drags the drawer.
	AxisHorizontal
	// AxisVertical means the session belongs to a child's vertical scroll.
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisUndecided:
		return "undecided"
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// touchSession lives from a pointer down to its up or cancel.
type touchSession struct {
	pointer int64
	start   graphics.Offset
	last    graphics.Offset
	axis    Axis
	// premarked sessions started on the exposed content pane of an open
	// drawer and are claimed from the down event.
	premarked bool
	// dragPos is the unrounded offset while dragging horizontally.
	dragPos float64

	tracker *gestures.VelocityTracker
	tap     *gestures.TapDetector
}

func newTouchSession(event gestures.PointerEvent, config Config) *touchSession {
	tracker := gestures.NewVelocityTracker()
	tracker.Horizon = config.VelocityHorizon
	tap := gestures.NewTapDetector(config.touchSlop())
	tap.Timeout = config.TapTimeout
	return &touchSession{
		pointer: event.PointerID,
		start:   event.Position,
		last:    event.Position,
		tracker: tracker,
		tap:     tap,
	}
}

func (s *touchSession) intercepting() bool {
	return s.premarked || s.axis == AxisHorizontal
}

// DragAxis returns the classification of the active touch session, or
// AxisUndecided when no session is active.
func (l *Layout) DragAxis() Axis {
	if l.session == nil {
		return AxisUndecided
	}
	return l.session.axis
}

// HandlePointer feeds one pointer event to the gesture classifier. It returns
// true while the layout claims the gesture; the host should then stop
// delivering it to children.
//
// Events other than down are ignored unless they belong to the pointer that
// started the current session.
func (l *Layout) HandlePointer(event gestures.PointerEvent) bool {
	if event.Phase == gestures.PointerPhaseDown {
		return l.handleDown(event)
	}
	s := l.session
	if s == nil || event.PointerID != s.pointer {
		log.Debugf("sidenav: ignoring %v for pointer %d without a session", event.Phase, event.PointerID)
		return false
	}
	switch {
	case event.IsTerminal():
		return l.handleRelease(s, event)
	case event.Phase == gestures.PointerPhaseMove:
		return l.handleMove(s, event)
	}
	return false
}

func (l *Layout) handleDown(event gestures.PointerEvent) bool {
	l.cancelSettle()

	s := newTouchSession(event, l.config)
	s.tracker.AddEvent(event)
	s.tap.HandleEvent(event)
	if l.showingNavigation && event.Position.X > float64(l.NavigationViewWidth()) {
		s.premarked = true
	}
	l.session = s
	return s.premarked
}

func (l *Layout) handleMove(s *touchSession, event gestures.PointerEvent) bool {
	s.tracker.AddEvent(event)
	s.tap.HandleEvent(event)

	if s.axis == AxisUndecided {
		total := event.Position.Sub(s.start)
		slop := l.config.touchSlop()
		switch {
		case math.Abs(total.Y) > slop:
			s.axis = AxisVertical
		case math.Abs(total.X) > slop:
			s.axis = AxisHorizontal
			s.dragPos = float64(l.offset)
			if nav := l.NavigationPane(); nav != nil {
				nav.SetVisibility(Visible)
			}
		}
		if s.axis != AxisUndecided {
			log.Debugf("sidenav: pointer %d classified %v", s.pointer, s.axis)
		}
	}

	if s.axis == AxisHorizontal {
		l.dragBy(s, event.Position.X-s.last.X)
		s.last = event.Position
	}
	return s.intercepting()
}

// dragBy moves the offset by dx, clamping after every step so that dragging
// past an edge and back responds immediately. dragPos only carries the
// sub-pixel remainder; if the offset was moved by anything other than this
// drag, such as a settle, the drag continues from the new offset.
func (l *Layout) dragBy(s *touchSession, dx float64) {
	if int(math.Round(s.dragPos)) != l.offset {
		s.dragPos = float64(l.offset)
	}
	width := float64(l.NavigationViewWidth())
	s.dragPos = math.Max(0, math.Min(width, s.dragPos+dx))
	l.setOffset(int(math.Round(s.dragPos)))
}

func (l *Layout) handleRelease(s *touchSession, event gestures.PointerEvent) bool {
	s.tracker.AddEvent(event)
	tapped := s.tap.HandleEvent(event)
	l.session = nil

	switch {
	case s.axis == AxisHorizontal:
		velocity := s.tracker.VelocityCapped(l.config.maxFlingVelocity()).X
		if math.Abs(velocity) > l.config.minFlingVelocity() {
			if velocity > 0 {
				l.beginSettle(l.NavigationViewWidth(), l.config.OpenDuration, velocity)
			} else {
				l.beginSettle(0, l.config.CloseDuration, velocity)
			}
		} else {
			l.settleToNearestEdge()
		}
	case s.premarked && tapped:
		l.ShowContentView()
	default:
		// Also resumes a settle that this session's down interrupted.
		l.settleToNearestEdge()
	}
	return s.intercepting()
}
