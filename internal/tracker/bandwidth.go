package tracker

import (
	"fansite/internal/model"
)

// BandwidthTracker sums response bytes per resource path
type BandwidthTracker struct {
	bytes counter
}

// NewBandwidthTracker creates an empty BandwidthTracker
func NewBandwidthTracker() *BandwidthTracker {
	return &BandwidthTracker{bytes: newCounter()}
}

// Record adds size bytes to path. Negative sizes count as 0.
func (t *BandwidthTracker) Record(path string, size int64) {
	if size < 0 {
		size = 0
	}
	t.bytes.add(path, size)
}

// Total returns the bytes recorded for path
func (t *BandwidthTracker) Total(path string) int64 {
	return t.bytes.get(path)
}

// TopTen returns the paths with the highest byte totals, largest first
func (t *BandwidthTracker) TopTen() []model.RankedEntry {
	return t.bytes.ranked()
}

// Len returns the number of paths ever seen
func (t *BandwidthTracker) Len() int {
	return t.bytes.len()
}

// Reset zeroes every total while keeping the known paths
func (t *BandwidthTracker) Reset() {
	t.bytes.reset()
}

// Clear forgets every path
func (t *BandwidthTracker) Clear() {
	t.bytes.clear()
}
