package harness

import (
	"image"

	"github.com/go-drift/sidenav/pkg/sidenav"
)

// Pane is a sidenav.Pane that records what the layout did to it.
//
// Its width is unmeasured (0) until the first Layout call, after which it is
// PreferredWidth, limited to the bounds it was given. A PreferredWidth of 0
// fills the bounds.
type Pane struct {
	Name           string
	PreferredWidth int

	// Bounds is the rectangle from the most recent Layout call.
	Bounds      image.Rectangle
	LayoutCount int
	Visibility  sidenav.Visibility
	// VisibilityLog records every SetVisibility call in order.
	VisibilityLog []sidenav.Visibility

	measured int
}

// NewPane returns a visible, unmeasured pane.
func NewPane(name string, preferredWidth int) *Pane {
	return &Pane{Name: name, PreferredWidth: preferredWidth}
}

// Width returns the measured width.
func (p *Pane) Width() int {
	return p.measured
}

// Layout records bounds and measures the pane.
func (p *Pane) Layout(bounds image.Rectangle) {
	p.Bounds = bounds
	p.LayoutCount++
	w := bounds.Dx()
	if p.PreferredWidth > 0 && p.PreferredWidth < w {
		w = p.PreferredWidth
	}
	p.measured = w
}

// SetVisibility records v.
func (p *Pane) SetVisibility(v sidenav.Visibility) {
	p.Visibility = v
	p.VisibilityLog = append(p.VisibilityLog, v)
}
