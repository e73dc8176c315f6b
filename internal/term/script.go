package term

import (
	"io"
	"strings"
	"sync"
)

// Script implements Backend in memory: input is a scripted byte sequence,
// output is captured for inspection. It records Start/Stop transitions so
// tests can assert the raw-mode lifecycle.
type Script struct {
	mu       sync.Mutex
	input    []byte
	pos      int
	output   strings.Builder
	flushes  int
	started  bool
	startCnt int
	stopCnt  int
}

// NewScript creates a test backend that will play back the given input
// bytes.
func NewScript(input []byte) *Script {
	return &Script{input: input}
}

// Start marks the backend as active.
func (s *Script) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.started = true
		s.startCnt++
	}
	return nil
}

// Stop marks the backend as inactive. Idempotent like the real backend.
func (s *Script) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		s.started = false
		s.stopCnt++
	}
	return nil
}

// ReadByte returns the next scripted byte, or io.EOF when the script is
// exhausted.
func (s *Script) ReadByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.input) {
		return 0, io.EOF
	}
	b := s.input[s.pos]
	s.pos++
	return b, nil
}

// PollByte returns the next scripted byte without blocking.
func (s *Script) PollByte() (byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.input) {
		return 0, false, nil
	}
	b := s.input[s.pos]
	s.pos++
	return b, true, nil
}

// WriteString captures output.
func (s *Script) WriteString(str string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.output.WriteString(str)
	return nil
}

// Flush counts flushes; output is already captured.
func (s *Script) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flushes++
	return nil
}

// Feed appends more input bytes to the script.
func (s *Script) Feed(input ...byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.input = append(s.input, input...)
}

// Output returns everything written so far.
func (s *Script) Output() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.output.String()
}

// Flushes returns how many times Flush was called.
func (s *Script) Flushes() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.flushes
}

// Started reports whether the backend is between Start and Stop.
func (s *Script) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.started
}

// StopCount returns how many effective Stop transitions occurred.
func (s *Script) StopCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stopCnt
}
