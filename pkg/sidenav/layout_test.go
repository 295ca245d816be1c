package sidenav_test

import (
	"image"
	"testing"
	"time"

	"github.com/go-drift/sidenav/pkg/errors"
	"github.com/go-drift/sidenav/pkg/graphics"
	"github.com/go-drift/sidenav/pkg/sidenav"
	sntest "github.com/go-drift/sidenav/pkg/testing"
)

const (
	navWidth    = 300
	screenWidth = 400
)

var screen = image.Rect(0, 0, screenWidth, 800)

type callbacks struct {
	navigation int
	content    int
}

func (c *callbacks) listener() sidenav.Listener {
	return sidenav.ListenerFuncs{
		ShowNavigation: func(*sidenav.Layout) { c.navigation++ },
		ShowContent:    func(*sidenav.Layout) { c.content++ },
	}
}

type drawer struct {
	layout  *sidenav.Layout
	nav     *sntest.Pane
	content *sntest.Pane
	tester  *sntest.GestureTester
	calls   *callbacks
}

func newDrawer(t *testing.T, cfg sidenav.Config) *drawer {
	t.Helper()
	l := sidenav.New(cfg)
	nav := sntest.NewPane("navigation", navWidth)
	content := sntest.NewPane("content", 0)
	if err := l.AddChild(nav); err != nil {
		t.Fatalf("AddChild(nav): %v", err)
	}
	if err := l.AddChild(content); err != nil {
		t.Fatalf("AddChild(content): %v", err)
	}
	calls := &callbacks{}
	l.SetNavigationListener(calls.listener())
	return &drawer{
		layout:  l,
		nav:     nav,
		content: content,
		tester:  sntest.NewGestureTesterWithT(t, l, screen),
		calls:   calls,
	}
}

func (d *drawer) settle(t *testing.T) {
	t.Helper()
	if err := d.tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatal(err)
	}
}

func (d *drawer) open(t *testing.T) {
	t.Helper()
	d.layout.ShowNavigationView()
	d.settle(t)
	if d.layout.Offset() != navWidth || !d.layout.IsShowingNavigationView() {
		t.Fatalf("setup: drawer not open (offset %d)", d.layout.Offset())
	}
	*d.calls = callbacks{}
}

func pt(x, y float64) graphics.Offset {
	return graphics.Offset{X: x, Y: y}
}

func TestClampOffset(t *testing.T) {
	for _, width := range []int{-5, 0, 1, 150, navWidth} {
		for raw := -500; raw <= 800; raw += 7 {
			got := sidenav.ClampOffset(raw, width)
			maxOffset := max(width, 0)
			if got < 0 || got > maxOffset {
				t.Fatalf("ClampOffset(%d, %d) = %d, outside [0, %d]", raw, width, got, maxOffset)
			}
			if again := sidenav.ClampOffset(got, width); again != got {
				t.Fatalf("ClampOffset not idempotent for (%d, %d): %d then %d", raw, width, got, again)
			}
		}
	}
}

func TestNavigationWidthBeforeMeasure(t *testing.T) {
	l := sidenav.New(sidenav.DefaultConfig())
	nav := sntest.NewPane("navigation", navWidth)
	if err := l.AddChild(nav); err != nil {
		t.Fatal(err)
	}
	if w := l.NavigationViewWidth(); w != 0 {
		t.Errorf("width before first layout = %d, want 0", w)
	}
	l.PerformLayout(screen)
	if w := l.NavigationViewWidth(); w != navWidth {
		t.Errorf("width after layout = %d, want %d", w, navWidth)
	}
}

func TestAddChildRejectsThirdPane(t *testing.T) {
	d := newDrawer(t, sidenav.DefaultConfig())
	err := d.layout.AddChild(sntest.NewPane("extra", 10))
	if err == nil {
		t.Fatal("expected error adding a third pane")
	}
	if errors.KindOf(err) != errors.KindLayout {
		t.Errorf("error kind = %v, want layout", errors.KindOf(err))
	}
	if err := d.layout.AddChild(nil); err == nil {
		t.Error("expected error adding a nil pane")
	}
	if n := d.layout.ChildCount(); n != 2 {
		t.Errorf("ChildCount() = %d, want 2 after rejected adds", n)
	}
}

func TestPerformLayoutShiftsContent(t *testing.T) {
	d := newDrawer(t, sidenav.DefaultConfig())
	d.open(t)

	if d.nav.Bounds != screen {
		t.Errorf("navigation bounds = %v, want %v", d.nav.Bounds, screen)
	}
	want := screen.Add(image.Pt(navWidth, 0))
	if d.content.Bounds != want {
		t.Errorf("content bounds = %v, want %v", d.content.Bounds, want)
	}
}

func TestShowNavigationViewCallbacksOncePerTransition(t *testing.T) {
	d := newDrawer(t, sidenav.DefaultConfig())

	d.layout.ShowNavigationView()
	d.settle(t)
	d.layout.ShowNavigationView()
	d.settle(t)
	if d.calls.navigation != 1 || d.calls.content != 0 {
		t.Fatalf("after two opens: %+v, want 1 navigation callback", *d.calls)
	}
	if d.layout.State() != sidenav.Open {
		t.Errorf("state = %v, want open", d.layout.State())
	}

	d.layout.ShowContentView()
	d.settle(t)
	d.layout.ShowContentView()
	d.settle(t)
	if d.calls.navigation != 1 || d.calls.content != 1 {
		t.Fatalf("after two closes: %+v, want one of each", *d.calls)
	}
	if d.layout.Offset() != 0 || d.layout.IsShowingNavigationView() {
		t.Errorf("offset = %d showing = %v, want closed", d.layout.Offset(), d.layout.IsShowingNavigationView())
	}
}

func TestNoCallbackMidSettle(t *testing.T) {
	d := newDrawer(t, sidenav.DefaultConfig())
	d.layout.ShowNavigationView()

	prev := 0
	for d.layout.IsSettling() {
		d.tester.PumpFrames(1)
		off := d.layout.Offset()
		if off < prev || off > navWidth {
			t.Fatalf("offset %d after %d is not monotonic within [0, %d]", off, prev, navWidth)
		}
		if d.layout.IsSettling() && d.calls.navigation != 0 {
			t.Fatal("callback fired before the settle finished")
		}
		prev = off
	}
	if d.layout.Offset() != navWidth || d.calls.navigation != 1 {
		t.Errorf("offset %d callbacks %+v, want %d and one callback", d.layout.Offset(), *d.calls, navWidth)
	}
}

func TestToggle(t *testing.T) {
	d := newDrawer(t, sidenav.DefaultConfig())
	d.layout.Toggle()
	d.settle(t)
	if !d.layout.IsShowingNavigationView() {
		t.Fatal("toggle from closed should open")
	}
	d.layout.Toggle()
	d.settle(t)
	if d.layout.IsShowingNavigationView() {
		t.Fatal("toggle from open should close")
	}
}

func TestZeroDurationSettleIsImmediate(t *testing.T) {
	cfg := sidenav.DefaultConfig()
	cfg.OpenDuration = 0
	d := newDrawer(t, cfg)

	d.layout.ShowNavigationView()
	d.tester.Pump()
	if d.layout.Offset() != navWidth || d.layout.IsSettling() {
		t.Errorf("offset %d settling %v, want %d and done after one frame", d.layout.Offset(), d.layout.IsSettling(), navWidth)
	}
	if d.calls.navigation != 1 {
		t.Errorf("navigation callbacks = %d, want 1", d.calls.navigation)
	}
}

func TestZeroChildren(t *testing.T) {
	l := sidenav.New(sidenav.DefaultConfig())
	g := sntest.NewGestureTesterWithT(t, l, screen)

	if w := l.NavigationViewWidth(); w != 0 {
		t.Errorf("NavigationViewWidth() = %d, want 0", w)
	}
	l.ShowNavigationView()
	if err := g.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if l.Offset() != 0 || l.IsShowingNavigationView() {
		t.Errorf("offset %d showing %v, want a no-op settle", l.Offset(), l.IsShowingNavigationView())
	}

	g.Down(pt(10, 10))
	g.MoveTo(pt(200, 10))
	g.Up()
	if err := g.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if l.Offset() != 0 {
		t.Errorf("drag with no children moved offset to %d", l.Offset())
	}
}

func TestOnlyNavigationPane(t *testing.T) {
	l := sidenav.New(sidenav.DefaultConfig())
	nav := sntest.NewPane("navigation", navWidth)
	if err := l.AddChild(nav); err != nil {
		t.Fatal(err)
	}
	g := sntest.NewGestureTesterWithT(t, l, screen)

	l.ShowNavigationView()
	if err := g.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if l.ContentPane() != nil {
		t.Error("expected no content pane")
	}
	if nav.Bounds != screen {
		t.Errorf("navigation bounds = %v, want %v", nav.Bounds, screen)
	}
}

type panicCatcher struct {
	panics []*errors.PanicError
}

func (p *panicCatcher) HandleError(*errors.Error) {}

func (p *panicCatcher) HandlePanic(err *errors.PanicError) {
	p.panics = append(p.panics, err)
}

func TestListenerPanicIsReported(t *testing.T) {
	catcher := &panicCatcher{}
	prev := errors.SetHandler(catcher)
	defer errors.SetHandler(prev)

	d := newDrawer(t, sidenav.DefaultConfig())
	d.layout.SetNavigationListener(sidenav.ListenerFuncs{
		ShowNavigation: func(*sidenav.Layout) { panic("listener exploded") },
	})

	d.layout.ShowNavigationView()
	d.settle(t)

	if len(catcher.panics) != 1 || catcher.panics[0].Op != "sidenav.Listener" {
		t.Fatalf("panics = %v, want one from sidenav.Listener", catcher.panics)
	}
	if !d.layout.IsShowingNavigationView() {
		t.Error("state should be open despite the panicking listener")
	}
	if d.nav.Visibility != sidenav.Visible {
		t.Errorf("navigation visibility = %v, want visible", d.nav.Visibility)
	}
}

func TestReplacingListenerDropsPrevious(t *testing.T) {
	d := newDrawer(t, sidenav.DefaultConfig())
	second := &callbacks{}
	d.layout.SetNavigationListener(second.listener())

	d.layout.ShowNavigationView()
	d.settle(t)

	if d.calls.navigation != 0 || second.navigation != 1 {
		t.Errorf("first %+v second %+v, want only the second listener called", *d.calls, *second)
	}

	d.layout.SetNavigationListener(nil)
	d.layout.ShowContentView()
	d.settle(t)
	if second.content != 0 {
		t.Error("removed listener was still called")
	}
}

func TestNeedsLayoutHook(t *testing.T) {
	d := newDrawer(t, sidenav.DefaultConfig())
	dirty := 0
	d.layout.OnNeedsLayout = func() { dirty++ }

	d.layout.ShowNavigationView()
	d.settle(t)
	if dirty == 0 {
		t.Error("expected OnNeedsLayout during the settle")
	}
	if d.layout.NeedsLayout() {
		t.Error("tester should have laid out the dirty layout")
	}
}
