package key

// Key identifies a keyboard key.
type Key int

// Key constants for the keys the input primitives react to.
const (
	// KeyIgnored marks input that resolved to nothing actionable: stray
	// control bytes, unrecognized escape sequences, bytes outside the
	// printable ASCII range.
	KeyIgnored Key = iota

	// KeyRune is a printable character (use the Rune field).
	KeyRune

	KeyEnter
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
)

// String returns a readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyIgnored:
		return "Ignored"
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	default:
		return "Unknown"
	}
}

// IsNavigation returns true for cursor and paging keys.
func (k Key) IsNavigation() bool {
	switch k {
	case KeyLeft, KeyRight, KeyUp, KeyDown, KeyPageUp, KeyPageDown:
		return true
	}
	return false
}
