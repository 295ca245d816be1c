package animation

import (
	"math"
	"time"
)

// Scroller interpolates a one-dimensional integer position over time.
//
// A Scroller does not animate by itself. Its owner starts a scroll, then on
// every frame calls ComputeScrollOffset and reads CurrX until the scroller
// reports it is finished. A zero duration scroll jumps to its final position
// on the first frame.
//
//	s := animation.NewScroller()
//	s.StartScroll(0, 300, 500*time.Millisecond)
//	for s.ComputeScrollOffset() {
//	    apply(s.CurrX())
//	}
type Scroller struct {
	// Curve eases progress for scrolls started with StartScroll.
	// Nil means ViscousFluid.
	Curve func(float64) float64

	start     int
	final     int
	curr      int
	duration  time.Duration
	startTime time.Time
	curve     func(float64) float64
	finished  bool
}

// NewScroller returns a finished scroller resting at zero.
func NewScroller() *Scroller {
	return &Scroller{finished: true}
}

// StartScroll begins moving from start by dx over duration using Curve.
// Any scroll in progress is replaced.
func (s *Scroller) StartScroll(start, dx int, duration time.Duration) {
	s.StartScrollWithCurve(start, dx, duration, s.Curve)
}

// StartScrollWithCurve is StartScroll with an explicit easing curve.
func (s *Scroller) StartScrollWithCurve(start, dx int, duration time.Duration, curve func(float64) float64) {
	if duration < 0 {
		duration = 0
	}
	if curve == nil {
		curve = ViscousFluid
	}
	s.start = start
	s.curr = start
	s.final = start + dx
	s.duration = duration
	s.startTime = Now()
	s.curve = curve
	s.finished = false
}

// ComputeScrollOffset updates CurrX for the current time. It returns false
// when the scroller was already finished before this call, so the final
// position is reported exactly once.
func (s *Scroller) ComputeScrollOffset() bool {
	if s.finished {
		return false
	}
	elapsed := Now().Sub(s.startTime)
	if elapsed < s.duration {
		progress := s.curve(float64(elapsed) / float64(s.duration))
		s.curr = s.start + int(math.Round(progress*float64(s.final-s.start)))
		return true
	}
	s.curr = s.final
	s.finished = true
	return true
}

// ForceFinished marks the scroller finished (or not) without moving CurrX.
func (s *Scroller) ForceFinished(finished bool) {
	s.finished = finished
}

// IsFinished reports whether the scroll has completed or been stopped.
func (s *Scroller) IsFinished() bool {
	return s.finished
}

// CurrX returns the position computed by the last ComputeScrollOffset.
func (s *Scroller) CurrX() int {
	return s.curr
}
