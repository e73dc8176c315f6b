package term

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Tty implements Backend over the process's controlling terminal.
type Tty struct {
	in    *os.File
	out   *os.File
	w     *bufio.Writer
	mu    sync.Mutex
	state *term.State
}

// NewTty creates a backend over stdin and stdout.
func NewTty() *Tty {
	return &Tty{
		in:  os.Stdin,
		out: os.Stdout,
		w:   bufio.NewWriter(os.Stdout),
	}
}

// Start puts the input device into raw mode.
func (t *Tty) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.state = state
	return nil
}

// Stop restores the terminal mode saved by Start.
func (t *Tty) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.state)
	t.state = nil
	if err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// ReadByte blocks until one raw byte arrives.
func (t *Tty) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := t.in.Read(buf[:])
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return buf[0], nil
		}
	}
}

// PollByte checks the input device with a zero-timeout poll and reads one
// byte only when input is already pending.
func (t *Tty) PollByte() (byte, bool, error) {
	fds := []unix.PollFd{{Fd: int32(t.in.Fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("poll input: %w", err)
	}
	if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		return 0, false, nil
	}
	b, err := t.ReadByte()
	if err != nil {
		return 0, false, err
	}
	return b, true, nil
}

// WriteString appends s to the buffered output.
func (t *Tty) WriteString(s string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := t.w.WriteString(s)
	return err
}

// Flush writes buffered output to the terminal.
func (t *Tty) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.w.Flush()
}
