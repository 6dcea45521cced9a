package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fansite/internal/model"
)

var (
	// ErrEmptyLine is returned for blank input lines
	ErrEmptyLine = errors.New("empty line")
	// ErrMalformedLine is returned when the line does not look like an access log entry
	ErrMalformedLine = errors.New("malformed log line")
	// ErrUnparsableTimestamp is returned together with a usable record whose
	// timestamp could not be read
	ErrUnparsableTimestamp = errors.New("unparsable timestamp")
)

// commonLogRe matches Common Log Format:
// 199.72.81.55 - - [01/Jul/1995:00:00:01 -0400] "GET /history/apollo/ HTTP/1.0" 200 6245
var commonLogRe = regexp.MustCompile(`^(\S+)\s+\S+\s+\S+\s+\[([^\]]*)\]\s+"([^"]*)"\s+(\S+)(?:\s+(\S+))?`)

// ParseLine parses a single access log line.
//
// A record with an unreadable timestamp is still returned, with HasTime
// false, alongside ErrUnparsableTimestamp.
func ParseLine(line string) (model.LogRecord, error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return model.LogRecord{}, ErrEmptyLine
	}

	matches := commonLogRe.FindStringSubmatch(line)
	if matches == nil {
		return model.LogRecord{}, ErrMalformedLine
	}

	status, err := strconv.Atoi(matches[4])
	if err != nil {
		return model.LogRecord{}, fmt.Errorf("%w: bad status %q", ErrMalformedLine, matches[4])
	}

	rec := model.LogRecord{
		Host:   matches[1],
		Status: status,
		Bytes:  parseBytes(matches[5]),
		Raw:    line,
	}

	request := strings.Fields(matches[3])
	if len(request) > 0 {
		rec.Method = request[0]
	}
	if len(request) > 1 {
		rec.Path = request[1]
	}
	if len(request) > 2 {
		rec.Protocol = request[2]
	}

	ts, err := time.Parse(model.TimestampLayout, matches[2])
	if err != nil {
		return rec, fmt.Errorf("%w: %q", ErrUnparsableTimestamp, matches[2])
	}
	rec.Timestamp = ts
	rec.HasTime = true

	return rec, nil
}

// FormatTimestamp renders t the way the access log writes timestamps
func FormatTimestamp(t time.Time) string {
	return t.Format(model.TimestampLayout)
}

// parseBytes reads a byte size field, treating "-", junk and negatives as 0
func parseBytes(field string) int64 {
	if field == "" || field == "-" {
		return 0
	}
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
