// Package script replays recorded drawer interactions on a fake clock.
//
// A script is YAML:
//
//	version: v1.0.0
//	width: 400
//	height: 800
//	navigation_width: 300
//	steps:
//	  - {action: down, x: 10, y: 100}
//	  - {action: move, x: 160, y: 104, after: 80ms}
//	  - {action: up, after: 16ms}
//	  - {action: settle}
//
// Each step waits for After, pumping frames, and then applies its action.
// Run records one Frame per pumped frame and per event.
package script

import (
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/sidenav/internal/harness"
	"github.com/go-drift/sidenav/pkg/config"
	"github.com/go-drift/sidenav/pkg/errors"
	"github.com/go-drift/sidenav/pkg/graphics"
	"github.com/go-drift/sidenav/pkg/sidenav"
)

// Action is what a step does.
type Action string

const (
	ActionDown   Action = "down"
	ActionMove   Action = "move"
	ActionUp     Action = "up"
	ActionCancel Action = "cancel"
	ActionOpen   Action = "open"
	ActionClose  Action = "close"
	ActionToggle Action = "toggle"
	// ActionWait only pumps frames for After.
	ActionWait Action = "wait"
	// ActionSettle pumps frames until no settle is running.
	ActionSettle Action = "settle"
)

const (
	defaultWidth    = 400
	defaultHeight   = 800
	defaultNavWidth = 300
	settleTimeout   = 10 * time.Second
)

// Script is a replayable interaction.
type Script struct {
	Version         string `yaml:"version,omitempty"`
	Width           int    `yaml:"width,omitempty"`
	Height          int    `yaml:"height,omitempty"`
	NavigationWidth int    `yaml:"navigation_width,omitempty"`
	InitiallyOpen   bool   `yaml:"initially_open,omitempty"`
	Steps           []Step `yaml:"steps"`
}

// Step is one action. X and Y are used by down and move; up and cancel
// release wherever the pointer is.
type Step struct {
	Action Action          `yaml:"action"`
	X      float64         `yaml:"x,omitempty"`
	Y      float64         `yaml:"y,omitempty"`
	After  config.Duration `yaml:"after,omitempty"`
}

// Frame is the drawer state at a point in the replay.
type Frame struct {
	Time     time.Duration
	Offset   int
	State    sidenav.DrawerState
	Settling bool
	// Event names the step applied at this frame, or is empty for a pumped
	// animation frame.
	Event string
	// Claimed reports whether the layout claimed the pointer event.
	Claimed bool
}

// Result is the outcome of a replay.
type Result struct {
	Frames []Frame
	// Notifications lists listener callbacks in order, as "navigation" or
	// "content".
	Notifications []string
	Final         sidenav.DrawerState
	FinalOffset   int
	// Bounds is the screen the replay ran on.
	Bounds          image.Rectangle
	NavigationWidth int
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.New("script.Parse", errors.KindInput, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		e := errors.New("script.Load", errors.KindInput, err)
		e.Path = path
		return nil, e
	}
	s, err := Parse(data)
	if err != nil {
		e := errors.New("script.Load", errors.KindInput, err)
		e.Path = path
		return nil, e
	}
	return s, nil
}

// Validate reports the first malformed step.
func (s *Script) Validate() error {
	if s.Version != "" && semver.Major(s.Version) != semver.Major(config.CurrentVersion) {
		return errors.New("script.Validate", errors.KindInput,
			fmt.Errorf("unsupported script version %q", s.Version))
	}
	if s.Width < 0 || s.Height < 0 || s.NavigationWidth < 0 {
		return errors.New("script.Validate", errors.KindInput, fmt.Errorf("negative dimensions"))
	}
	for i, step := range s.Steps {
		switch step.Action {
		case ActionDown, ActionMove, ActionUp, ActionCancel,
			ActionOpen, ActionClose, ActionToggle, ActionWait, ActionSettle:
		default:
			return errors.New("script.Validate", errors.KindInput,
				fmt.Errorf("step %d: unknown action %q", i+1, step.Action))
		}
		if step.After < 0 {
			return errors.New("script.Validate", errors.KindInput,
				fmt.Errorf("step %d: negative delay", i+1))
		}
	}
	return nil
}

func (s *Script) bounds() image.Rectangle {
	w, h := s.Width, s.Height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	return image.Rect(0, 0, w, h)
}

func (s *Script) navigationWidth() int {
	if s.NavigationWidth == 0 {
		return defaultNavWidth
	}
	return s.NavigationWidth
}

// Run replays s against a fresh layout with cfg.
func Run(s *Script, cfg sidenav.Config) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	layout := sidenav.New(cfg)
	nav := harness.NewPane("navigation", s.navigationWidth())
	content := harness.NewPane("content", 0)
	if err := layout.AddChild(nav); err != nil {
		return nil, err
	}
	if err := layout.AddChild(content); err != nil {
		return nil, err
	}

	res := &Result{Bounds: s.bounds()}
	layout.SetNavigationListener(sidenav.ListenerFuncs{
		ShowNavigation: func(*sidenav.Layout) { res.Notifications = append(res.Notifications, "navigation") },
		ShowContent:    func(*sidenav.Layout) { res.Notifications = append(res.Notifications, "content") },
	})

	tester := harness.NewDriver(layout, res.Bounds)
	defer tester.Cleanup()
	res.NavigationWidth = layout.NavigationViewWidth()

	r := &runner{tester: tester, result: res}
	if s.InitiallyOpen {
		layout.ShowNavigationView()
		if err := r.settle(); err != nil {
			return nil, err
		}
		res.Notifications = nil
		res.Frames = nil
		r.start = tester.Clock().Elapsed()
	}
	r.record("start", false)

	for i, step := range s.Steps {
		r.wait(time.Duration(step.After))
		if err := r.apply(step); err != nil {
			return nil, errors.New("script.Run", errors.KindInput, fmt.Errorf("step %d: %w", i+1, err))
		}
	}

	res.Final = layout.State()
	res.FinalOffset = layout.Offset()
	return res, nil
}

type runner struct {
	tester *harness.Driver
	result *Result
	start  time.Duration
}

func (r *runner) record(event string, claimed bool) {
	l := r.tester.Layout()
	r.result.Frames = append(r.result.Frames, Frame{
		Time:     r.tester.Clock().Elapsed() - r.start,
		Offset:   l.Offset(),
		State:    l.State(),
		Settling: l.IsSettling(),
		Event:    event,
		Claimed:  claimed,
	})
}

// wait advances the clock by d in frame steps, pumping and recording each
// frame while a settle runs.
func (r *runner) wait(d time.Duration) {
	for d > 0 {
		step := min(d, harness.FrameDuration)
		r.tester.Clock().Advance(step)
		d -= step
		if r.tester.Layout().IsSettling() {
			r.tester.Pump()
			r.record("", false)
		}
	}
}

func (r *runner) settle() error {
	for elapsed := time.Duration(0); r.tester.Layout().IsSettling(); elapsed += harness.FrameDuration {
		if elapsed >= settleTimeout {
			return harness.ErrSettleTimeout
		}
		r.tester.Clock().Advance(harness.FrameDuration)
		r.tester.Pump()
		r.record("", false)
	}
	return nil
}

func (r *runner) apply(step Step) error {
	g := r.tester
	pos := graphics.Offset{X: step.X, Y: step.Y}
	claimed := false

	switch step.Action {
	case ActionDown:
		if g.IsDown() {
			return fmt.Errorf("down while a pointer is already down")
		}
		claimed = g.Down(pos)
	case ActionMove:
		if !g.IsDown() {
			return fmt.Errorf("move without a pointer down")
		}
		claimed = g.MoveTo(pos)
	case ActionUp:
		if !g.IsDown() {
			return fmt.Errorf("up without a pointer down")
		}
		claimed = g.Up()
	case ActionCancel:
		if !g.IsDown() {
			return fmt.Errorf("cancel without a pointer down")
		}
		claimed = g.Cancel()
	case ActionOpen:
		g.Layout().ShowNavigationView()
	case ActionClose:
		g.Layout().ShowContentView()
	case ActionToggle:
		g.Layout().Toggle()
	case ActionWait:
		return nil
	case ActionSettle:
		return r.settle()
	}

	g.Pump()
	r.record(string(step.Action), claimed)
	return nil
}

// Summary describes a result on one line per frame that carries an event,
// followed by the final state.
func (res *Result) Summary() string {
	var b strings.Builder
	for _, f := range res.Frames {
		if f.Event == "" {
			continue
		}
		fmt.Fprintf(&b, "%8v  %-7s offset=%-4d %-6v", f.Time, f.Event, f.Offset, f.State)
		if f.Claimed {
			b.WriteString(" claimed")
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "final: %v at %d", res.Final, res.FinalOffset)
	if len(res.Notifications) > 0 {
		fmt.Fprintf(&b, " (notified: %s)", strings.Join(res.Notifications, ", "))
	}
	b.WriteByte('\n')
	return b.String()
}
