package model

import (
	"time"
)

// RankedEntry represents a key and the metric it is ranked by
type RankedEntry struct {
	Key    string `json:"key"`
	Metric int64  `json:"metric"`
}

// TrafficWindow represents a closed 60-minute window and its request count
type TrafficWindow struct {
	Start time.Time `json:"start"`
	Count int64     `json:"count"`
}

// Ranked converts the window to a ranked entry keyed by its log-format start
func (w TrafficWindow) Ranked() RankedEntry {
	return RankedEntry{Key: w.Start.Format(TimestampLayout), Metric: w.Count}
}

// ActiveBlock represents a client that is blocked until a point in time
type ActiveBlock struct {
	Host  string    `json:"host"`
	Until time.Time `json:"until"`
}

// IngestStats represents line level counters of an ingestion run
type IngestStats struct {
	TotalLines   int64 `json:"total_lines"`
	SkippedLines int64 `json:"skipped_lines"`
	UntimedLines int64 `json:"untimed_lines"`
}

// Report represents the four analytics of a run
type Report struct {
	RunID       string        `json:"run_id"`
	Hosts       []RankedEntry `json:"hosts"`
	Resources   []RankedEntry `json:"resources"`
	Hours       []RankedEntry `json:"hours"`
	OpenWindow  *RankedEntry  `json:"open_window,omitempty"`
	Blocked     []string      `json:"blocked"`
	Stats       IngestStats   `json:"stats"`
	GeneratedAt time.Time     `json:"generated_at"`
}
