package sidenav

import (
	"math"
	"time"

	"github.com/go-drift/sidenav/pkg/animation"
	"github.com/go-drift/sidenav/pkg/errors"
	"github.com/go-drift/sidenav/pkg/log"
)

// beginSettle animates the offset to target, replacing any running settle.
// A non-zero velocity (px/s) comes from a fling: the settle then starts at
// that speed and decelerates, finishing early if the fling is fast enough.
func (l *Layout) beginSettle(target int, duration time.Duration, velocity float64) {
	start := l.offset
	dx := target - start
	curve := animation.ViscousFluid
	if velocity != 0 && dx != 0 {
		curve = animation.DecelerateCurve
		flingTime := time.Duration(2 * math.Abs(float64(dx)) / math.Abs(velocity) * float64(time.Second))
		if flingTime < duration {
			duration = flingTime
		}
	}

	log.Debugf("sidenav: settle %d -> %d over %v", start, target, duration)
	l.scroller.StartScrollWithCurve(start, dx, duration, curve)
	l.markNeedsLayout()
	l.ticker.Start()
}

// settleToNearestEdge opens or closes depending on which edge the offset is
// closer to. The midpoint itself opens.
func (l *Layout) settleToNearestEdge() {
	if l.offset < l.NavigationViewWidth()/2 {
		l.ShowContentView()
	} else {
		l.ShowNavigationView()
	}
}

// cancelSettle stops a running settle where it is, without notifying.
func (l *Layout) cancelSettle() {
	l.scroller.ForceFinished(true)
	l.ticker.Stop()
}

// IsSettling reports whether a settle animation is in progress.
func (l *Layout) IsSettling() bool {
	return !l.scroller.IsFinished()
}

// ComputeScroll advances a running settle to the current time. It is called
// by the layout's ticker on every animation.StepTickers; hosts that drive
// frames themselves may call it directly instead.
func (l *Layout) ComputeScroll() {
	if !l.scroller.ComputeScrollOffset() {
		l.ticker.Stop()
		return
	}
	l.setOffset(l.scroller.CurrX())
	if l.scroller.IsFinished() {
		l.ticker.Stop()
		l.finishSettle()
	}
}

func (l *Layout) finishSettle() {
	wasShowing := l.showingNavigation
	l.showingNavigation = l.offset != 0
	log.Debugf("sidenav: settled at %d (%v)", l.offset, l.State())

	if wasShowing != l.showingNavigation {
		l.notifyListener()
	}
	if nav := l.NavigationPane(); nav != nil {
		nav.SetVisibility(visibilityFor(l.showingNavigation))
	}
}

func (l *Layout) notifyListener() {
	listener := l.listener
	if listener == nil {
		return
	}
	defer errors.Recover("sidenav.Listener")
	if l.showingNavigation {
		listener.OnShowNavigationView(l)
	} else {
		listener.OnShowContentView(l)
	}
}
