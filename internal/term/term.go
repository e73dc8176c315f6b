package term

// Backend is the terminal a session renders to and reads from. Exactly one
// session should drive a backend at a time: the minimal-repaint strategy
// assumes exclusive knowledge of the cursor's physical position.
type Backend interface {
	// Start puts the terminal into a mode that delivers individual
	// keystrokes without line buffering or local echo.
	Start() error

	// Stop restores the terminal to its prior mode. Stop is idempotent.
	Stop() error

	// ReadByte blocks until one raw input byte is available.
	ReadByte() (byte, error)

	// PollByte returns the next raw input byte if one is pending, without
	// blocking. The second result is false when no input is waiting.
	PollByte() (byte, bool, error)

	// WriteString appends s to the output buffer.
	WriteString(s string) error

	// Flush writes buffered output to the terminal. Called after each
	// logically atomic redraw.
	Flush() error
}
