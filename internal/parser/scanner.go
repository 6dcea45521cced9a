package parser

import (
	"bufio"
	"io"
)

const maxLineSize = 1024 * 1024

// Scanner reads an access log line by line
type Scanner struct {
	sc   *bufio.Scanner
	line int
}

// NewScanner creates a Scanner over r
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	return &Scanner{sc: sc}
}

// Scan advances to the next line
func (s *Scanner) Scan() bool {
	if !s.sc.Scan() {
		return false
	}
	s.line++
	return true
}

// Text returns the current line
func (s *Scanner) Text() string {
	return s.sc.Text()
}

// Line returns the 1-based number of the current line
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first non-EOF read error
func (s *Scanner) Err() error {
	return s.sc.Err()
}
