package tracker

import (
	"slices"
	"time"

	"fansite/internal/model"
)

// DefaultWindow is the width of a traffic window
const DefaultWindow = 60 * time.Minute

// windowResolution is the timestamp precision of the access log
const windowResolution = time.Second

// TrafficWindowTracker finds the busiest fixed-width windows of a
// chronological stream.
//
// The open window covers [start, start+width). A timestamp at or past the
// end closes it: the window is submitted to the leaderboard, start moves to
// ts-width+1s and timestamps before the new start are evicted from the
// front of the queue.
type TrafficWindowTracker struct {
	width time.Duration

	started bool
	start   time.Time
	queue   []time.Time
	head    int

	// board holds at most TopLimit closed windows, busiest first
	board []model.TrafficWindow
}

// NewTrafficWindowTracker creates a tracker with windows of the given
// width. A non-positive width uses DefaultWindow.
func NewTrafficWindowTracker(width time.Duration) *TrafficWindowTracker {
	if width <= 0 {
		width = DefaultWindow
	}
	return &TrafficWindowTracker{width: width}
}

// Record adds a request at ts. Timestamps must not decrease.
func (t *TrafficWindowTracker) Record(ts time.Time) {
	if !t.started {
		t.started = true
		t.start = ts
	}

	for !ts.Before(t.start.Add(t.width)) {
		t.submit(model.TrafficWindow{Start: t.start, Count: int64(t.Count())})
		t.start = ts.Add(-t.width).Add(windowResolution)
		t.evict()
	}

	t.queue = append(t.queue, ts)
}

// Count returns the number of requests in the open window
func (t *TrafficWindowTracker) Count() int {
	return len(t.queue) - t.head
}

// Current returns the open window, which is not ranked until it closes
func (t *TrafficWindowTracker) Current() (model.TrafficWindow, bool) {
	if !t.started {
		return model.TrafficWindow{}, false
	}
	return model.TrafficWindow{Start: t.start, Count: int64(t.Count())}, true
}

// Flush closes the open window at the end of a stream. The next Record
// opens a fresh window.
func (t *TrafficWindowTracker) Flush() {
	if t.started && t.Count() > 0 {
		t.submit(model.TrafficWindow{Start: t.start, Count: int64(t.Count())})
	}
	t.started = false
	t.start = time.Time{}
	t.queue = nil
	t.head = 0
}

// TopWindows returns the busiest closed windows. Equal counts keep the
// earlier window first.
func (t *TrafficWindowTracker) TopWindows() []model.TrafficWindow {
	return slices.Clone(t.board)
}

// TopTen returns TopWindows keyed by the window start in log format
func (t *TrafficWindowTracker) TopTen() []model.RankedEntry {
	out := make([]model.RankedEntry, 0, len(t.board))
	for _, w := range t.board {
		out = append(out, w.Ranked())
	}
	return out
}

// Reset drops the open window and the leaderboard
func (t *TrafficWindowTracker) Reset() {
	t.Flush()
	t.board = nil
}

func (t *TrafficWindowTracker) evict() {
	for t.head < len(t.queue) && t.queue[t.head].Before(t.start) {
		t.head++
	}

	// compact once the dead prefix dominates
	if t.head > 0 && t.head*2 >= len(t.queue) {
		n := copy(t.queue, t.queue[t.head:])
		t.queue = t.queue[:n]
		t.head = 0
	}
}

// submit inserts w after every window with an equal or higher count
func (t *TrafficWindowTracker) submit(w model.TrafficWindow) {
	if len(t.board) == TopLimit && w.Count <= t.board[TopLimit-1].Count {
		return
	}

	i := len(t.board)
	for i > 0 && t.board[i-1].Count < w.Count {
		i--
	}
	t.board = slices.Insert(t.board, i, w)

	if len(t.board) > TopLimit {
		t.board = t.board[:TopLimit]
	}
}
