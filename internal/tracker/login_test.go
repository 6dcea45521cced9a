package tracker

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fansite/internal/model"
)

func request(host string, offset time.Duration, method, path string, status int) model.LogRecord {
	ts := at(offset)
	return model.LogRecord{
		Host:      host,
		Timestamp: ts,
		HasTime:   true,
		Method:    method,
		Path:      path,
		Protocol:  "HTTP/1.0",
		Status:    status,
		Raw: fmt.Sprintf(`%s - - [%s] "%s %s HTTP/1.0" %d 0`,
			host, ts.Format(model.TimestampLayout), method, path, status),
	}
}

func failedLogin(host string, offset time.Duration) model.LogRecord {
	return request(host, offset, "POST", "/login", 403)
}

func TestLoginBlockTracker_Empty(t *testing.T) {
	tr := NewLoginBlockTracker(DefaultLoginPolicy())

	assert.NotNil(t, tr.Blocked())
	assert.Empty(t, tr.Blocked())
	assert.Empty(t, tr.ActiveBlocks())
}

func TestLoginBlockTracker_BlocksAfterThreeFailures(t *testing.T) {
	tr := NewLoginBlockTracker(DefaultLoginPolicy())

	assert.False(t, tr.Record(failedLogin("x", 0)))
	assert.False(t, tr.Record(failedLogin("x", 5*time.Second)))
	assert.False(t, tr.Record(failedLogin("x", 15*time.Second)), "the triggering failure is not blocked")
	require.True(t, tr.IsBlocked("x"))
	assert.Equal(t, []model.ActiveBlock{{Host: "x", Until: at(315 * time.Second)}}, tr.ActiveBlocks())

	inside := []model.LogRecord{
		request("x", 16*time.Second, "GET", "/index.html", 200),
		failedLogin("x", 100*time.Second),
		request("x", 314*time.Second, "POST", "/login", 200),
	}
	for _, rec := range inside {
		assert.True(t, tr.Record(rec))
	}

	after := request("x", 316*time.Second, "GET", "/after.html", 200)
	assert.False(t, tr.Record(after))
	assert.False(t, tr.IsBlocked("x"))

	want := []string{inside[0].Raw, inside[1].Raw, inside[2].Raw}
	assert.Equal(t, want, tr.Blocked())
	assert.NotContains(t, tr.Blocked(), after.Raw)
}

func TestLoginBlockTracker_UnblockIsEdgeTriggered(t *testing.T) {
	tr := NewLoginBlockTracker(DefaultLoginPolicy())

	for _, s := range []int{0, 1, 2} {
		tr.Record(failedLogin("x", time.Duration(s)*time.Second))
	}
	require.True(t, tr.IsBlocked("x"))

	// the request landing on the deadline is evaluated as a new first failure
	assert.False(t, tr.Record(failedLogin("x", 302*time.Second)))
	assert.False(t, tr.IsBlocked("x"))
	assert.Equal(t, 1, tr.Failures("x"))
	assert.Empty(t, tr.Blocked())
}

func TestLoginBlockTracker_SuccessClearsEvidence(t *testing.T) {
	tr := NewLoginBlockTracker(DefaultLoginPolicy())

	tr.Record(failedLogin("x", 0))
	tr.Record(failedLogin("x", 5*time.Second))
	tr.Record(request("x", 7*time.Second, "POST", "/login", 200))
	assert.Equal(t, 0, tr.Failures("x"))

	tr.Record(failedLogin("x", 15*time.Second))
	assert.False(t, tr.IsBlocked("x"))
	assert.Equal(t, 1, tr.Failures("x"))

	assert.False(t, tr.Record(request("x", 20*time.Second, "GET", "/", 200)))
	assert.Empty(t, tr.Blocked())
}

func TestLoginBlockTracker_TwentySecondSpan(t *testing.T) {
	tests := []struct {
		name    string
		seconds []int
		blocked bool
	}{
		{name: "within span", seconds: []int{0, 10, 20}, blocked: true},
		{name: "oldest rolls out", seconds: []int{0, 10, 21}, blocked: false},
		{name: "rolling window catches later burst", seconds: []int{0, 30, 35, 40}, blocked: true},
		{name: "spread out", seconds: []int{0, 25, 50, 75}, blocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewLoginBlockTracker(DefaultLoginPolicy())
			for _, s := range tt.seconds {
				tr.Record(failedLogin("x", time.Duration(s)*time.Second))
			}
			assert.Equal(t, tt.blocked, tr.IsBlocked("x"))
			assert.LessOrEqual(t, tr.Failures("x"), 2)
		})
	}
}

func TestLoginBlockTracker_PerClient(t *testing.T) {
	tr := NewLoginBlockTracker(DefaultLoginPolicy())

	for _, s := range []int{0, 1, 2} {
		tr.Record(failedLogin("attacker", time.Duration(s)*time.Second))
	}
	tr.Record(failedLogin("other", 3*time.Second))

	assert.True(t, tr.IsBlocked("attacker"))
	assert.False(t, tr.IsBlocked("other"))

	assert.False(t, tr.Record(request("other", 4*time.Second, "GET", "/", 200)))
	assert.True(t, tr.Record(request("attacker", 4*time.Second, "GET", "/", 200)))
	assert.Len(t, tr.Blocked(), 1)
}

func TestLoginBlockTracker_OnlyLoginRequestsCount(t *testing.T) {
	tr := NewLoginBlockTracker(DefaultLoginPolicy())

	tr.Record(request("x", 0, "GET", "/login", 403))
	tr.Record(request("x", time.Second, "POST", "/login.html", 403))
	tr.Record(request("x", 2*time.Second, "POST", "/login", 500))
	tr.Record(request("x", 3*time.Second, "POST", "/other", 401))
	tr.Record(request("x", 4*time.Second, "post", "/login", 401))
	tr.Record(request("x", 5*time.Second, "Post", "/login", 401))
	tr.Record(request("x", 6*time.Second, "post", "/login", 401))

	assert.Equal(t, 0, tr.Failures("x"))
	assert.False(t, tr.IsBlocked("x"))
}

func TestLoginBlockTracker_SeededBlock(t *testing.T) {
	tr := NewLoginBlockTracker(DefaultLoginPolicy(),
		model.ActiveBlock{Host: "x", Until: at(time.Minute)},
		model.ActiveBlock{Host: "ignored"},
	)

	assert.True(t, tr.IsBlocked("x"))
	assert.False(t, tr.IsBlocked("ignored"))

	assert.True(t, tr.Record(request("x", 10*time.Second, "GET", "/", 200)))
	assert.False(t, tr.Record(request("x", time.Minute, "GET", "/", 200)))
	assert.Len(t, tr.Blocked(), 1)
	assert.Len(t, tr.BlockedRecords(), 1)
}

func TestLoginBlockTracker_CustomPolicy(t *testing.T) {
	policy := DefaultLoginPolicy()
	policy.MaxFailures = 2
	policy.BlockDuration = time.Minute
	tr := NewLoginBlockTracker(policy)

	tr.Record(failedLogin("x", 0))
	tr.Record(failedLogin("x", time.Second))

	assert.Equal(t, []model.ActiveBlock{{Host: "x", Until: at(61 * time.Second)}}, tr.ActiveBlocks())
}

func TestLoginBlockTracker_ResetAndClear(t *testing.T) {
	tr := NewLoginBlockTracker(DefaultLoginPolicy())
	for _, s := range []int{0, 1, 2} {
		tr.Record(failedLogin("x", time.Duration(s)*time.Second))
	}
	tr.Record(failedLogin("y", 2*time.Second))
	tr.Record(request("x", 3*time.Second, "GET", "/", 200))

	tr.Reset()
	assert.False(t, tr.IsBlocked("x"))
	assert.Equal(t, 0, tr.Failures("y"))
	assert.Len(t, tr.Blocked(), 1, "reset keeps blocked output")

	assert.False(t, tr.Record(request("x", 4*time.Second, "GET", "/", 200)))

	tr.Clear()
	assert.Empty(t, tr.Blocked())
}

func TestLoginBlockTracker_CorruptStatePanics(t *testing.T) {
	tr := NewLoginBlockTracker(DefaultLoginPolicy())
	tr.clients["x"] = &clientState{blocked: true}

	assert.Panics(t, func() {
		tr.Record(request("x", 0, "GET", "/", 200))
	})
}
