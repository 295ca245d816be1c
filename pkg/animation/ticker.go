// Package animation drives time-based motion from the host's frame loop.
//
// The host calls [StepTickers] once per rendered frame. Every active
// [Ticker] then receives the time elapsed since it was started. A [Scroller]
// turns that elapsed time into an eased offset between two positions, which
// is how the side navigation layout settles open or closed.
//
// Nothing in this package sleeps or spawns goroutines: an animation waits
// for its next frame simply by leaving its ticker registered.
package animation

import "sync"

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
type Ticker struct {
	callback func()
	isActive bool
}

// NewTicker creates an inactive ticker with the given callback.
func NewTicker(callback func()) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker. Starting an active ticker does nothing.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is waiting for frames.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// StepTickers advances all active tickers. Call it once per frame.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Callbacks may start or stop tickers.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback()
		}
	}
}

// HasActiveTickers reports whether another frame is needed.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
