package key

import (
	"io"
	"testing"
)

// scriptSource plays back a fixed byte sequence.
type scriptSource struct {
	bytes []byte
	pos   int
}

func (s *scriptSource) ReadByte() (byte, error) {
	if s.pos >= len(s.bytes) {
		return 0, io.EOF
	}
	b := s.bytes[s.pos]
	s.pos++
	return b, nil
}

func (s *scriptSource) PollByte() (byte, bool, error) {
	if s.pos >= len(s.bytes) {
		return 0, false, nil
	}
	b := s.bytes[s.pos]
	s.pos++
	return b, true, nil
}

func TestReaderRead(t *testing.T) {
	r := NewReader(&scriptSource{bytes: []byte{scanPrefix, 'H', 'a', '\r'}})

	ev, err := r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Key != KeyUp {
		t.Errorf("expected Up, got %s", ev.Key)
	}

	ev, err = r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ev.IsRune() || ev.Rune != 'a' {
		t.Errorf("expected rune 'a', got %#v", ev)
	}

	ev, err = r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ev.IsEnter() {
		t.Errorf("expected Enter, got %#v", ev)
	}
}

func TestReaderReadEOF(t *testing.T) {
	r := NewReader(&scriptSource{})
	if _, err := r.Read(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReaderPoll(t *testing.T) {
	r := NewReader(&scriptSource{bytes: []byte{'x'}})

	ev, ok, err := r.Poll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a pending event")
	}
	if !ev.IsRune() || ev.Rune != 'x' {
		t.Errorf("expected rune 'x', got %#v", ev)
	}

	_, ok, err = r.Poll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no event on drained source")
	}
}

// A special-key prefix with its code not yet arrived must not produce an
// event; the half-received sequence stays buffered until the code shows up.
func TestReaderPollHalfSequence(t *testing.T) {
	src := &scriptSource{bytes: []byte{scanPrefix}}
	r := NewReader(src)

	_, ok, err := r.Poll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("half-received sequence should not resolve")
	}

	src.bytes = append(src.bytes, 'P')
	ev, ok, err := r.Poll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || ev.Key != KeyDown {
		t.Errorf("expected Down after code byte arrives, got %#v ok=%v", ev, ok)
	}
}
