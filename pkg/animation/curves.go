package animation

import "math"

// Curves map linear progress t in [0, 1] to eased progress, with f(0) = 0
// and f(1) = 1. Inputs outside [0, 1] are clamped.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return clampUnit(t)
}

// DecelerateCurve is a quadratic ease-out. Its slope at t = 0 is 2, so an
// animation covering distance d in 2d/v starts at exactly velocity v and
// comes to rest at the end, like a body under constant friction.
func DecelerateCurve(t float64) float64 {
	t = clampUnit(t)
	return 1 - (1-t)*(1-t)
}

const viscousFluidScale = 8.0

var (
	viscousFluidNormalize = 1 / viscousFluid(1)
	viscousFluidOffset    = 1 - viscousFluidNormalize*viscousFluid(1)
)

// viscousFluid models a body pushed through a viscous medium: it accelerates
// quickly, then decays exponentially toward its rest position.
func viscousFluid(x float64) float64 {
	x *= viscousFluidScale
	if x < 1 {
		return x - (1 - math.Exp(-x))
	}
	const start = 0.36787944117 // 1/e, the value reached at x == 1
	x = 1 - math.Exp(1-x)
	return start + x*(1-start)
}

// ViscousFluid is the default settle curve for scrollers.
func ViscousFluid(t float64) float64 {
	t = clampUnit(t)
	v := viscousFluidNormalize * viscousFluid(t)
	if v > 0 {
		v += viscousFluidOffset
	}
	return math.Min(v, 1)
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
