package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Run("full line", func(t *testing.T) {
		line := `199.72.81.55 - - [01/Jul/1995:00:00:01 -0400] "POST /login HTTP/1.0" 401 1420`

		rec, err := ParseLine(line)
		require.NoError(t, err)

		assert.Equal(t, "199.72.81.55", rec.Host)
		assert.Equal(t, "POST", rec.Method)
		assert.Equal(t, "/login", rec.Path)
		assert.Equal(t, "HTTP/1.0", rec.Protocol)
		assert.Equal(t, 401, rec.Status)
		assert.Equal(t, int64(1420), rec.Bytes)
		assert.Equal(t, line, rec.Raw)
		assert.True(t, rec.HasTime)

		_, offset := rec.Timestamp.Zone()
		assert.Equal(t, -4*60*60, offset)
		assert.Equal(t, time.Date(1995, time.July, 1, 4, 0, 1, 0, time.UTC), rec.Timestamp.UTC())
	})

	t.Run("dash bytes are zero", func(t *testing.T) {
		rec, err := ParseLine(`burger.letters.com - - [01/Jul/1995:00:00:12 -0400] "GET /video/livevideo.gif HTTP/1.0" 304 -`)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rec.Bytes)
		assert.Equal(t, 304, rec.Status)
	})

	t.Run("missing bytes are zero", func(t *testing.T) {
		rec, err := ParseLine(`host - - [01/Jul/1995:00:00:12 -0400] "GET / HTTP/1.0" 200`)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rec.Bytes)
	})

	t.Run("junk bytes are zero", func(t *testing.T) {
		rec, err := ParseLine(`host - - [01/Jul/1995:00:00:12 -0400] "GET / HTTP/1.0" 200 12ab`)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rec.Bytes)
	})

	t.Run("request without protocol", func(t *testing.T) {
		rec, err := ParseLine(`host - - [01/Jul/1995:00:00:12 -0400] "GET /index.html" 200 10`)
		require.NoError(t, err)
		assert.Equal(t, "GET", rec.Method)
		assert.Equal(t, "/index.html", rec.Path)
		assert.Empty(t, rec.Protocol)
	})

	t.Run("unparsable timestamp keeps the record", func(t *testing.T) {
		rec, err := ParseLine(`host - - [yesterday] "GET /a HTTP/1.0" 200 10`)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnparsableTimestamp)
		assert.False(t, rec.HasTime)
		assert.Equal(t, "host", rec.Host)
		assert.Equal(t, "/a", rec.Path)
		assert.Equal(t, int64(10), rec.Bytes)
	})

	t.Run("empty line", func(t *testing.T) {
		_, err := ParseLine("   ")
		assert.ErrorIs(t, err, ErrEmptyLine)
	})

	t.Run("malformed line", func(t *testing.T) {
		_, err := ParseLine("this is not a log line")
		assert.ErrorIs(t, err, ErrMalformedLine)
	})

	t.Run("bad status", func(t *testing.T) {
		_, err := ParseLine(`host - - [01/Jul/1995:00:00:12 -0400] "GET / HTTP/1.0" abc 10`)
		assert.ErrorIs(t, err, ErrMalformedLine)
	})
}

func TestFormatTimestamp(t *testing.T) {
	rec, err := ParseLine(`host - - [01/Jul/1995:00:00:01 -0400] "GET / HTTP/1.0" 200 1`)
	require.NoError(t, err)

	assert.Equal(t, "01/Jul/1995:00:00:01 -0400", FormatTimestamp(rec.Timestamp))
}

func TestScanner(t *testing.T) {
	input := "first\n\nthird\r\n"
	s := NewScanner(strings.NewReader(input))

	var lines []string
	var numbers []int
	for s.Scan() {
		lines = append(lines, s.Text())
		numbers = append(numbers, s.Line())
	}

	require.NoError(t, s.Err())
	assert.Equal(t, []string{"first", "", "third"}, lines)
	assert.Equal(t, []int{1, 2, 3}, numbers)
}
