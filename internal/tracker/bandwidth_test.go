package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fansite/internal/model"
)

func TestBandwidthTracker_TopTen(t *testing.T) {
	tests := []struct {
		name    string
		records []struct {
			path  string
			bytes int64
		}
		want []model.RankedEntry
	}{
		{
			name: "empty",
			want: []model.RankedEntry{},
		},
		{
			name: "sums per path",
			records: []struct {
				path  string
				bytes int64
			}{
				{"/images/a.gif", 100},
				{"/index.html", 50},
				{"/images/a.gif", 25},
				{"/index.html", 100},
			},
			want: []model.RankedEntry{
				{Key: "/index.html", Metric: 150},
				{Key: "/images/a.gif", Metric: 125},
			},
		},
		{
			name: "negative sizes count as zero",
			records: []struct {
				path  string
				bytes int64
			}{
				{"/a", -10},
				{"/b", 5},
				{"/a", 3},
			},
			want: []model.RankedEntry{
				{Key: "/b", Metric: 5},
				{Key: "/a", Metric: 3},
			},
		},
		{
			name: "zero byte paths still rank in first-seen order",
			records: []struct {
				path  string
				bytes int64
			}{
				{"/x", 0},
				{"/y", 0},
			},
			want: []model.RankedEntry{
				{Key: "/x", Metric: 0},
				{Key: "/y", Metric: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewBandwidthTracker()
			for _, r := range tt.records {
				tr.Record(r.path, r.bytes)
			}
			assert.Equal(t, tt.want, tr.TopTen())
			assert.Equal(t, tr.TopTen(), tr.TopTen())
		})
	}
}

func TestBandwidthTracker_AtMostTen(t *testing.T) {
	tr := NewBandwidthTracker()
	for i := 0; i < 30; i++ {
		tr.Record(string(rune('A'+i)), int64(i))
	}

	top := tr.TopTen()
	assert.Len(t, top, TopLimit)
	assert.Equal(t, int64(29), top[0].Metric)
	assert.Equal(t, int64(20), top[TopLimit-1].Metric)
}

func TestBandwidthTracker_ResetAndClear(t *testing.T) {
	tr := NewBandwidthTracker()
	tr.Record("/a", 10)
	tr.Record("/b", 20)

	tr.Reset()
	assert.Empty(t, tr.TopTen())
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, int64(0), tr.Total("/b"))

	tr.Record("/b", 1)
	assert.Equal(t, []model.RankedEntry{{Key: "/b", Metric: 1}}, tr.TopTen())

	tr.Clear()
	assert.Equal(t, 0, tr.Len())
	assert.Empty(t, tr.TopTen())
}
