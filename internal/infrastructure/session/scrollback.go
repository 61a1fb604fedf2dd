package session

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// Scrollback keeps the most recent output lines of a session. Escape
// sequences are stripped; the multiplexer core does not emulate a terminal.
type Scrollback struct {
	mu      sync.Mutex
	lines   []string
	partial strings.Builder
	limit   int
}

// NewScrollback creates a buffer holding at most limit complete lines.
func NewScrollback(limit int) *Scrollback {
	if limit <= 0 {
		limit = 1
	}
	return &Scrollback{limit: limit}
}

// Write appends raw output. It never fails.
func (s *Scrollback) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text := strings.ReplaceAll(string(p), "\r\n", "\n")
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			s.partial.WriteString(text)
			break
		}
		s.partial.WriteString(text[:i])
		s.push(ansi.Strip(s.partial.String()))
		s.partial.Reset()
		text = text[i+1:]
	}
	return len(p), nil
}

func (s *Scrollback) push(line string) {
	line = strings.TrimRight(line, "\r")
	s.lines = append(s.lines, line)
	if over := len(s.lines) - s.limit; over > 0 {
		s.lines = append(s.lines[:0], s.lines[over:]...)
	}
}

// SetLimit changes the retained line count, dropping the oldest lines
// when shrinking.
func (s *Scrollback) SetLimit(limit int) {
	if limit <= 0 {
		limit = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limit = limit
	if over := len(s.lines) - limit; over > 0 {
		s.lines = append(s.lines[:0], s.lines[over:]...)
	}
}

// Tail returns up to n of the newest lines, including an unterminated
// last line.
func (s *Scrollback) Tail(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.lines
	if s.partial.Len() > 0 {
		all = append(all[:len(all):len(all)], ansi.Strip(s.partial.String()))
	}
	if n <= 0 || n > len(all) {
		n = len(all)
	}
	out := make([]string, n)
	copy(out, all[len(all)-n:])
	return out
}

// Len returns the number of complete lines held.
func (s *Scrollback) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}
