package tracker

import (
	"slices"
	"strings"
	"time"

	"fansite/internal/model"
)

// LoginPolicy describes what a login request is and when a client is blocked
type LoginPolicy struct {
	Method   string
	Path     string
	Protocol string
	// MaxFailures failed logins within FailureWindow block the client
	FailureWindow time.Duration
	MaxFailures   int
	BlockDuration time.Duration
}

// DefaultLoginPolicy blocks a client for 5 minutes after 3 failed
// "POST /login HTTP/1.0" requests within 20 seconds.
func DefaultLoginPolicy() LoginPolicy {
	return LoginPolicy{
		Method:        "POST",
		Path:          "/login",
		Protocol:      "HTTP/1.0",
		FailureWindow: 20 * time.Second,
		MaxFailures:   3,
		BlockDuration: 5 * time.Minute,
	}
}

type clientState struct {
	// failures holds at most MaxFailures-1 unresolved failure times
	failures  []time.Time
	blocked   bool
	unblockAt time.Time
}

// LoginBlockTracker runs one NORMAL/BLOCKED state machine per client and
// collects the requests it suppressed.
type LoginBlockTracker struct {
	policy  LoginPolicy
	clients map[string]*clientState
	blocked []model.LogRecord
}

// NewLoginBlockTracker creates a tracker. Blocks handed off from a previous
// run can be passed as seeds.
func NewLoginBlockTracker(policy LoginPolicy, seeds ...model.ActiveBlock) *LoginBlockTracker {
	if policy.MaxFailures < 1 {
		policy.MaxFailures = 1
	}
	t := &LoginBlockTracker{
		policy:  policy,
		clients: make(map[string]*clientState),
	}
	t.Seed(seeds...)
	return t
}

// Seed puts each client into BLOCKED until its deadline. Seeds without a
// deadline are ignored.
func (t *LoginBlockTracker) Seed(blocks ...model.ActiveBlock) {
	for _, b := range blocks {
		if b.Until.IsZero() {
			continue
		}
		t.clients[b.Host] = &clientState{blocked: true, unblockAt: b.Until}
	}
}

// Record feeds one timed request and reports whether it was blocked
func (t *LoginBlockTracker) Record(rec model.LogRecord) bool {
	st := t.clients[rec.Host]

	if st != nil && st.blocked {
		if st.unblockAt.IsZero() {
			panic("tracker: blocked client " + rec.Host + " has no unblock time")
		}
		if rec.Timestamp.Before(st.unblockAt) {
			t.blocked = append(t.blocked, rec)
			return true
		}
		// block expired, evaluate this request normally
		delete(t.clients, rec.Host)
		st = nil
	}

	if !t.isLogin(rec) {
		return false
	}

	switch rec.StatusClass() {
	case 4:
		if st == nil {
			st = &clientState{}
			t.clients[rec.Host] = st
		}
		t.fail(st, rec.Timestamp)
	case 2:
		if st != nil {
			delete(t.clients, rec.Host)
		}
	}
	return false
}

// fail adds a failure at ts and blocks once MaxFailures fall within the
// failure window ending at ts.
func (t *LoginBlockTracker) fail(st *clientState, ts time.Time) {
	n := 0
	for _, f := range st.failures {
		if ts.Sub(f) <= t.policy.FailureWindow {
			st.failures[n] = f
			n++
		}
	}
	st.failures = st.failures[:n]

	if len(st.failures)+1 >= t.policy.MaxFailures {
		st.failures = nil
		st.blocked = true
		st.unblockAt = ts.Add(t.policy.BlockDuration)
		return
	}
	st.failures = append(st.failures, ts)
}

func (t *LoginBlockTracker) isLogin(rec model.LogRecord) bool {
	return rec.Method == t.policy.Method &&
		rec.Path == t.policy.Path &&
		rec.Protocol == t.policy.Protocol
}

// IsBlocked reports whether host is in BLOCKED as of its last request
func (t *LoginBlockTracker) IsBlocked(host string) bool {
	st := t.clients[host]
	return st != nil && st.blocked
}

// Failures returns the number of unresolved failures tracked for host
func (t *LoginBlockTracker) Failures(host string) int {
	if st := t.clients[host]; st != nil {
		return len(st.failures)
	}
	return 0
}

// Blocked returns the raw lines of every blocked request in arrival order
func (t *LoginBlockTracker) Blocked() []string {
	lines := make([]string, 0, len(t.blocked))
	for _, rec := range t.blocked {
		lines = append(lines, rec.Raw)
	}
	return lines
}

// BlockedRecords returns every blocked request in arrival order
func (t *LoginBlockTracker) BlockedRecords() []model.LogRecord {
	return slices.Clone(t.blocked)
}

// ActiveBlocks returns the clients still blocked after the last request,
// sorted by host, for hand-off to a later run.
func (t *LoginBlockTracker) ActiveBlocks() []model.ActiveBlock {
	blocks := make([]model.ActiveBlock, 0)
	for host, st := range t.clients {
		if st.blocked {
			blocks = append(blocks, model.ActiveBlock{Host: host, Until: st.unblockAt})
		}
	}
	slices.SortFunc(blocks, func(a, b model.ActiveBlock) int {
		return strings.Compare(a.Host, b.Host)
	})
	return blocks
}

// Reset clears every client's evidence and block. Blocked output is kept.
func (t *LoginBlockTracker) Reset() {
	t.clients = make(map[string]*clientState)
}

// Clear resets the tracker and drops the blocked output
func (t *LoginBlockTracker) Clear() {
	t.Reset()
	t.blocked = nil
}
