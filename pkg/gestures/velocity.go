package gestures

import (
	"math"
	"time"

	"github.com/go-drift/sidenav/pkg/graphics"
)

// velocityHistory is the number of samples kept by a VelocityTracker.
const velocityHistory = 20

type velocitySample struct {
	time     time.Time
	position graphics.Offset
}

// VelocityTracker estimates pointer velocity from recent position samples.
//
// Velocity is the slope of a least-squares line through the samples that fall
// within Horizon of the newest one. A gap longer than StoppedGap between two
// samples means the pointer rested, and anything before the gap is ignored.
type VelocityTracker struct {
	// Horizon bounds how old a sample may be, relative to the newest.
	Horizon time.Duration
	// StoppedGap is the pause that discards earlier samples.
	StoppedGap time.Duration

	samples [velocityHistory]velocitySample
	head    int
	count   int
}

// NewVelocityTracker returns a tracker using the default horizon and gap.
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{
		Horizon:    DefaultVelocityHorizon,
		StoppedGap: DefaultPointerStoppedGap,
	}
}

// AddPosition records a pointer position at time t.
func (v *VelocityTracker) AddPosition(t time.Time, position graphics.Offset) {
	v.head = (v.head + 1) % velocityHistory
	v.samples[v.head] = velocitySample{time: t, position: position}
	if v.count < velocityHistory {
		v.count++
	}
}

// AddEvent records the position and timestamp of a pointer event.
func (v *VelocityTracker) AddEvent(event PointerEvent) {
	v.AddPosition(event.Timestamp, event.Position)
}

// Velocity returns the estimated velocity in pixels per second. It is zero
// when fewer than two usable samples exist.
func (v *VelocityTracker) Velocity() graphics.Offset {
	if v.count < 2 {
		return graphics.Offset{}
	}
	newest := v.samples[v.head]

	var n, sumT, sumTT, sumX, sumTX, sumY, sumTY float64
	prev := newest.time
	for i := 0; i < v.count; i++ {
		s := v.samples[(v.head-i+velocityHistory)%velocityHistory]
		age := newest.time.Sub(s.time)
		if age < 0 || (v.Horizon > 0 && age > v.Horizon) {
			break
		}
		if v.StoppedGap > 0 && prev.Sub(s.time) > v.StoppedGap {
			break
		}
		prev = s.time

		t := -age.Seconds()
		n++
		sumT += t
		sumTT += t * t
		sumX += s.position.X
		sumTX += t * s.position.X
		sumY += s.position.Y
		sumTY += t * s.position.Y
	}
	if n < 2 {
		return graphics.Offset{}
	}
	denom := n*sumTT - sumT*sumT
	if math.Abs(denom) < 1e-12 {
		return graphics.Offset{}
	}
	return graphics.Offset{
		X: (n*sumTX - sumT*sumX) / denom,
		Y: (n*sumTY - sumT*sumY) / denom,
	}
}

// VelocityCapped returns Velocity with each component clamped to
// [-maxAbs, maxAbs]. A non-positive maxAbs disables the cap.
func (v *VelocityTracker) VelocityCapped(maxAbs float64) graphics.Offset {
	vel := v.Velocity()
	if maxAbs <= 0 {
		return vel
	}
	return graphics.Offset{
		X: math.Max(-maxAbs, math.Min(maxAbs, vel.X)),
		Y: math.Max(-maxAbs, math.Min(maxAbs, vel.Y)),
	}
}
