package script

import (
	"strings"
	"testing"

	"github.com/go-drift/sidenav/pkg/errors"
	"github.com/go-drift/sidenav/pkg/sidenav"
)

const flingOpen = `
version: v1.0.0
steps:
  - {action: down, x: 10, y: 100}
  - {action: move, x: 60, y: 101, after: 10ms}
  - {action: move, x: 110, y: 102, after: 10ms}
  - {action: move, x: 160, y: 103, after: 10ms}
  - {action: up}
  - {action: settle}
`

func mustParse(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func TestRunFlingOpens(t *testing.T) {
	res, err := Run(mustParse(t, flingOpen), sidenav.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if res.Final != sidenav.Open || res.FinalOffset != defaultNavWidth {
		t.Errorf("final %v at %d, want open at %d", res.Final, res.FinalOffset, defaultNavWidth)
	}
	if len(res.Notifications) != 1 || res.Notifications[0] != "navigation" {
		t.Errorf("notifications = %v, want [navigation]", res.Notifications)
	}

	var moves []int
	for _, f := range res.Frames {
		if f.Event == "move" {
			moves = append(moves, f.Offset)
			if !f.Claimed {
				t.Error("horizontal moves should be claimed")
			}
		}
	}
	if len(moves) != 3 || moves[0] != 50 || moves[2] != 150 {
		t.Errorf("move offsets = %v, want [50 100 150]", moves)
	}
}

func TestRunTapClosesInitiallyOpen(t *testing.T) {
	s := mustParse(t, `
initially_open: true
steps:
  - {action: down, x: 350, y: 100}
  - {action: up, after: 50ms}
  - {action: settle}
`)
	res, err := Run(s, sidenav.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if res.Frames[0].Event != "start" || res.Frames[0].Offset != defaultNavWidth {
		t.Errorf("first frame = %+v, want start at %d", res.Frames[0], defaultNavWidth)
	}
	if !res.Frames[1].Claimed {
		t.Error("down on the exposed content should be claimed")
	}
	if res.Final != sidenav.Closed || res.FinalOffset != 0 {
		t.Errorf("final %v at %d, want closed at 0", res.Final, res.FinalOffset)
	}
	if len(res.Notifications) != 1 || res.Notifications[0] != "content" {
		t.Errorf("notifications = %v, want [content]", res.Notifications)
	}

	prev := defaultNavWidth
	for _, f := range res.Frames {
		if f.Offset > prev {
			t.Fatalf("closing offset rose from %d to %d", prev, f.Offset)
		}
		prev = f.Offset
	}
}

func TestRunWaitPumpsSettle(t *testing.T) {
	s := mustParse(t, `
steps:
  - {action: open}
  - {action: wait, after: 1s}
`)
	res, err := Run(s, sidenav.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if res.Final != sidenav.Open {
		t.Errorf("final = %v, want open after waiting past the settle", res.Final)
	}
}

func TestRunCustomDimensions(t *testing.T) {
	s := mustParse(t, "width: 200\nheight: 300\nnavigation_width: 500\nsteps: []\n")
	res, err := Run(s, sidenav.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if res.Bounds.Dx() != 200 || res.Bounds.Dy() != 300 {
		t.Errorf("bounds = %v, want 200x300", res.Bounds)
	}
	if res.NavigationWidth != 200 {
		t.Errorf("navigation width = %d, want it limited to the screen", res.NavigationWidth)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown action", "steps:\n  - {action: jump}\n"},
		{"bad delay", "steps:\n  - {action: wait, after: later}\n"},
		{"future version", "version: v2.0.0\nsteps: []\n"},
		{"negative size", "width: -1\nsteps: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.KindOf(err) != errors.KindInput {
				t.Errorf("kind = %v, want input", errors.KindOf(err))
			}
		})
	}
}

func TestRunRejectsMoveWithoutDown(t *testing.T) {
	s := mustParse(t, "steps:\n  - {action: move, x: 10}\n")
	_, err := Run(s, sidenav.DefaultConfig())
	if err == nil || !strings.Contains(err.Error(), "step 1") {
		t.Fatalf("Run() error = %v, want step 1 failure", err)
	}
}

func TestSummary(t *testing.T) {
	res, err := Run(mustParse(t, flingOpen), sidenav.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	out := res.Summary()
	if !strings.Contains(out, "final: open at 300 (notified: navigation)") {
		t.Errorf("summary missing final line:\n%s", out)
	}
	if strings.Count(out, "claimed") != 4 {
		t.Errorf("expected 4 claimed events (3 moves and the up):\n%s", out)
	}
}
