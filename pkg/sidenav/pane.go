package sidenav

import "image"

// Visibility is whether a pane should be drawn.
type Visibility int

const (
	// Visible panes are drawn and receive input.
	Visible Visibility = iota
	// Hidden panes are skipped entirely.
	Hidden
)

func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

func visibilityFor(open bool) Visibility {
	if open {
		return Visible
	}
	return Hidden
}

// Pane is a child of the Layout. The host's view for each pane implements
// it; the Layout never looks inside a pane.
type Pane interface {
	// Width returns the pane's measured width, or 0 before it has been laid
	// out for the first time.
	Width() int
	// Layout positions the pane within bounds, in the Layout's coordinates.
	Layout(bounds image.Rectangle)
	// SetVisibility shows or hides the pane.
	SetVisibility(v Visibility)
}
