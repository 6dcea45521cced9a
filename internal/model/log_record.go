package model

import (
	"strings"
	"time"
)

// TimestampLayout is the bracketed timestamp layout of the access log
const TimestampLayout = "02/Jan/2006:15:04:05 -0700"

// LogRecord represents one parsed access log line
type LogRecord struct {
	Host      string    `json:"host"`
	Timestamp time.Time `json:"timestamp"`
	HasTime   bool      `json:"has_time"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Protocol  string    `json:"protocol"`
	Status    int       `json:"status"`
	Bytes     int64     `json:"bytes"`
	Raw       string    `json:"raw"`
}

// Request returns the request line as it appeared between the quotes
func (r LogRecord) Request() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.Method, r.Path, r.Protocol} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// StatusClass returns the hundreds digit of the status code (2 for 2xx)
func (r LogRecord) StatusClass() int {
	return r.Status / 100
}
