// Package sidenav implements a sliding side navigation container.
//
// A Layout holds two panes. The first is the navigation pane, which stays
// fixed at the leading edge. The second is the content pane, which is drawn
// on top and slides right by the reveal offset to uncover the navigation
// pane. The offset is changed by horizontal drags and by settle animations
// that move it to one of its two resting values: 0 (closed) or the
// navigation pane's width (open).
//
// The host wires a Layout into its UI loop through three hooks:
//
//   - HandlePointer for every pointer event over the container. The return
//     value tells the host whether the container has claimed the gesture, in
//     which case children should stop receiving it.
//   - animation.StepTickers (or ComputeScroll) once per frame while a settle
//     is running.
//   - PerformLayout whenever NeedsLayout reports true.
//
// A Layout is not safe for concurrent use; drive it from the UI thread.
package sidenav

import (
	"fmt"
	"image"

	"github.com/go-drift/sidenav/pkg/animation"
	"github.com/go-drift/sidenav/pkg/errors"
)

// DrawerState is the settled state of the drawer.
type DrawerState int

const (
	// Closed means the content pane covers the navigation pane.
	Closed DrawerState = iota
	// Open means the navigation pane is revealed.
	Open
)

func (s DrawerState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Layout is the side navigation container.
type Layout struct {
	// OnNeedsLayout, if set, is called each time the layout becomes dirty.
	OnNeedsLayout func()

	config   Config
	children []Pane
	listener Listener

	offset            int
	showingNavigation bool
	needsLayout       bool

	scroller *animation.Scroller
	ticker   *animation.Ticker
	session  *touchSession
}

// New returns a closed Layout with no children.
func New(config Config) *Layout {
	l := &Layout{
		config:   config,
		scroller: animation.NewScroller(),
	}
	l.ticker = animation.NewTicker(l.ComputeScroll)
	return l
}

// Config returns the configuration the layout was created with.
func (l *Layout) Config() Config {
	return l.config
}

// AddChild attaches the next pane: the navigation pane first, then the
// content pane.
func (l *Layout) AddChild(p Pane) error {
	if p == nil {
		return errors.New("sidenav.AddChild", errors.KindLayout, fmt.Errorf("nil pane"))
	}
	if len(l.children) >= 2 {
		return errors.New("sidenav.AddChild", errors.KindLayout,
			fmt.Errorf("layout already has navigation and content panes"))
	}
	l.children = append(l.children, p)
	l.markNeedsLayout()
	return nil
}

// ChildCount returns the number of attached panes.
func (l *Layout) ChildCount() int {
	return len(l.children)
}

// NavigationPane returns the first child, or nil.
func (l *Layout) NavigationPane() Pane {
	if len(l.children) > 0 {
		return l.children[0]
	}
	return nil
}

// ContentPane returns the second child, or nil.
func (l *Layout) ContentPane() Pane {
	if len(l.children) > 1 {
		return l.children[1]
	}
	return nil
}

// SetNavigationListener replaces the state change listener. Nil removes it.
func (l *Layout) SetNavigationListener(listener Listener) {
	l.listener = listener
}

// ShowNavigationView settles the drawer open.
func (l *Layout) ShowNavigationView() {
	l.beginSettle(l.NavigationViewWidth(), l.config.OpenDuration, 0)
}

// ShowContentView settles the drawer closed.
func (l *Layout) ShowContentView() {
	l.beginSettle(0, l.config.CloseDuration, 0)
}

// Toggle settles toward whichever state the drawer is not currently in.
func (l *Layout) Toggle() {
	if l.showingNavigation {
		l.ShowContentView()
	} else {
		l.ShowNavigationView()
	}
}

// IsShowingNavigationView reports whether the drawer last settled open.
func (l *Layout) IsShowingNavigationView() bool {
	return l.showingNavigation
}

// State returns the last settled state.
func (l *Layout) State() DrawerState {
	if l.showingNavigation {
		return Open
	}
	return Closed
}

// Offset returns the current reveal offset.
func (l *Layout) Offset() int {
	return l.offset
}

// NavigationViewWidth returns the navigation pane's measured width, or 0
// when it is missing or not yet measured.
func (l *Layout) NavigationViewWidth() int {
	nav := l.NavigationPane()
	if nav == nil {
		return 0
	}
	if w := nav.Width(); w > 0 {
		return w
	}
	return 0
}

// NeedsLayout reports whether PerformLayout should run.
func (l *Layout) NeedsLayout() bool {
	return l.needsLayout
}

// PerformLayout lays out both panes in bounds. The navigation pane fills
// bounds; the content pane fills bounds shifted right by the offset.
func (l *Layout) PerformLayout(bounds image.Rectangle) {
	l.needsLayout = false
	if nav := l.NavigationPane(); nav != nil {
		nav.Layout(bounds)
	}
	if content := l.ContentPane(); content != nil {
		content.Layout(bounds.Add(image.Pt(l.offset, 0)))
	}
}

// Dispose stops any running settle and drops the active touch session.
func (l *Layout) Dispose() {
	l.cancelSettle()
	l.session = nil
}

// ClampOffset clamps raw into [0, width]. A negative width clamps to 0.
func ClampOffset(raw, width int) int {
	if width < 0 {
		width = 0
	}
	if raw < 0 {
		return 0
	}
	if raw > width {
		return width
	}
	return raw
}

func (l *Layout) setOffset(raw int) {
	clamped := ClampOffset(raw, l.NavigationViewWidth())
	if clamped == l.offset {
		return
	}
	l.offset = clamped
	l.markNeedsLayout()
}

func (l *Layout) markNeedsLayout() {
	l.needsLayout = true
	if l.OnNeedsLayout != nil {
		l.OnNeedsLayout()
	}
}
