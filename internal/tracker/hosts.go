package tracker

import (
	"fansite/internal/model"
)

// ActiveHostsTracker counts requests per client
type ActiveHostsTracker struct {
	counts counter
}

// NewActiveHostsTracker creates an empty ActiveHostsTracker
func NewActiveHostsTracker() *ActiveHostsTracker {
	return &ActiveHostsTracker{counts: newCounter()}
}

// Record counts one request from host
func (t *ActiveHostsTracker) Record(host string) {
	t.counts.add(host, 1)
}

// Count returns the number of requests recorded for host
func (t *ActiveHostsTracker) Count(host string) int64 {
	return t.counts.get(host)
}

// TopTen returns the most active hosts, busiest first. Hosts with equal
// counts keep the order they were first seen in.
func (t *ActiveHostsTracker) TopTen() []model.RankedEntry {
	return t.counts.ranked()
}

// Len returns the number of hosts ever seen
func (t *ActiveHostsTracker) Len() int {
	return t.counts.len()
}

// Reset zeroes every count. Hosts stay known and keep their tie-break order.
func (t *ActiveHostsTracker) Reset() {
	t.counts.reset()
}

// Clear forgets every host
func (t *ActiveHostsTracker) Clear() {
	t.counts.clear()
}
