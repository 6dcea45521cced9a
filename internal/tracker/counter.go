package tracker

import (
	"slices"

	"fansite/internal/model"
)

// TopLimit is the length of every ranking returned by the trackers
const TopLimit = 10

// counter accumulates a metric per key and ranks keys by it. Keys keep the
// position they were first seen at, which is the tie-break of the ranking.
type counter struct {
	index   map[string]int
	entries []counterEntry
	top     []model.RankedEntry
	cached  bool
}

type counterEntry struct {
	key    string
	metric int64
	// live is false for keys not recorded since the last reset
	live bool
}

func newCounter() counter {
	return counter{index: make(map[string]int)}
}

func (c *counter) add(key string, delta int64) {
	c.cached = false

	i, ok := c.index[key]
	if !ok {
		i = len(c.entries)
		c.index[key] = i
		c.entries = append(c.entries, counterEntry{key: key})
	}
	c.entries[i].metric += delta
	c.entries[i].live = true
}

func (c *counter) get(key string) int64 {
	if i, ok := c.index[key]; ok {
		return c.entries[i].metric
	}
	return 0
}

func (c *counter) len() int {
	return len(c.entries)
}

// ranked returns the TopLimit entries by metric descending. The result is
// cached until the next add.
func (c *counter) ranked() []model.RankedEntry {
	if !c.cached {
		c.top = c.rank()
		c.cached = true
	}
	return slices.Clone(c.top)
}

func (c *counter) rank() []model.RankedEntry {
	all := make([]model.RankedEntry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.live {
			all = append(all, model.RankedEntry{Key: e.key, Metric: e.metric})
		}
	}

	slices.SortStableFunc(all, func(a, b model.RankedEntry) int {
		switch {
		case a.Metric > b.Metric:
			return -1
		case a.Metric < b.Metric:
			return 1
		}
		return 0
	})

	if len(all) > TopLimit {
		all = all[:TopLimit:TopLimit]
	}
	return all
}

// reset zeroes every metric but keeps the keys and their first-seen order
func (c *counter) reset() {
	for i := range c.entries {
		c.entries[i].metric = 0
		c.entries[i].live = false
	}
	c.top = nil
	c.cached = false
}

// clear forgets every key
func (c *counter) clear() {
	*c = newCounter()
}
