// Package preview renders drawer states as images, for inspecting gesture
// replays without a device.
//
// Panes are drawn as flat rectangles: the navigation pane fills the screen
// and darkens as the drawer closes, and the content pane is drawn on top,
// shifted right by the drawer offset with a shadow along its leading edge.
package preview

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/sidenav/pkg/graphics"
)

// Palette colors.
var (
	Background     = graphics.RGB(0x20, 0x20, 0x24)
	NavigationFill = graphics.RGB(0x3f, 0x51, 0xb5)
	ContentFill    = graphics.RGB(0xfa, 0xfa, 0xfa)
	Shadow         = graphics.RGB(0, 0, 0).WithAlpha(0.35)
	LabelColor     = graphics.RGB(0x21, 0x21, 0x21)
	Divider        = graphics.RGB(0x90, 0x90, 0x90)
)

const (
	shadowWidth = 6
	// closedShade is how far the navigation fill is blended toward black
	// when the drawer is fully closed.
	closedShade = 0.6
	labelMargin = 4
)

// Snapshot is one drawer state to render.
type Snapshot struct {
	Bounds          image.Rectangle
	NavigationWidth int
	Offset          int
	// Label is drawn in the content pane's top-left corner.
	Label string
}

// Render draws s at its bounds' size.
func Render(s Snapshot) *image.RGBA {
	b := s.Bounds.Sub(s.Bounds.Min)
	img := image.NewRGBA(b)
	fill(img, b, Background)

	if s.NavigationWidth > 0 {
		open := float64(s.Offset) / float64(s.NavigationWidth)
		nav := NavigationFill.Lerp(graphics.RGB(0, 0, 0), closedShade*(1-open))
		fill(img, image.Rect(0, 0, s.NavigationWidth, b.Dy()), nav)
	}

	content := b.Add(image.Pt(s.Offset, 0)).Intersect(b)
	if !content.Empty() {
		if s.Offset > 0 {
			shadow := image.Rect(content.Min.X-shadowWidth, 0, content.Min.X, b.Dy()).Intersect(b)
			fill(img, shadow, Shadow)
		}
		fill(img, content, ContentFill)
		drawLabel(img, content, s.Label)
	}
	return img
}

// Filmstrip renders snapshots scaled to thumbWidth and lays them out left to
// right with a one pixel divider. A thumbWidth <= 0 keeps full size.
func Filmstrip(snapshots []Snapshot, thumbWidth int) *image.RGBA {
	if len(snapshots) == 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	first := snapshots[0].Bounds
	w, h := first.Dx(), first.Dy()
	if thumbWidth > 0 && w > 0 {
		h = h * thumbWidth / w
		w = thumbWidth
	}

	n := len(snapshots)
	strip := image.NewRGBA(image.Rect(0, 0, n*w+(n-1), h))
	fill(strip, strip.Bounds(), Divider)
	for i, s := range snapshots {
		frame := Render(s)
		dst := image.Rect(i*(w+1), 0, i*(w+1)+w, h)
		draw.ApproxBiLinear.Scale(strip, dst, frame, frame.Bounds(), draw.Src, nil)
	}
	return strip
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func fill(img draw.Image, r image.Rectangle, c graphics.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func drawLabel(img *image.RGBA, r image.Rectangle, label string) {
	if label == "" {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img.SubImage(r).(*image.RGBA),
		Src:  image.NewUniform(LabelColor),
		Face: face,
		Dot:  fixed.P(r.Min.X+labelMargin, r.Min.Y+labelMargin+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(label)
}
