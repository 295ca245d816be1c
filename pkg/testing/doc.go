// Package testing provides helpers for testing code built on sidenav.
//
// A GestureTester owns a fake animation clock and drives a layout with
// synthetic pointer events and frames:
//
//	layout := sidenav.New(sidenav.DefaultConfig())
//	layout.AddChild(sntest.NewPane("navigation", 300))
//	layout.AddChild(sntest.NewPane("content", 0))
//	tester := sntest.NewGestureTesterWithT(t, layout, image.Rect(0, 0, 400, 800))
//
//	tester.Fling(graphics.Offset{X: 10, Y: 100}, graphics.Offset{X: 250}, 100*time.Millisecond)
//	tester.PumpAndSettle(time.Second)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import sntest "github.com/go-drift/sidenav/pkg/testing"
package testing
