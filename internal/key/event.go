package key

import "fmt"

// Event represents a single resolved key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune
}

// NewRuneEvent creates an event for a printable character.
func NewRuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// NewSpecialEvent creates an event for a non-character key.
func NewSpecialEvent(key Key) Event {
	return Event{Key: key}
}

// IsRune returns true if this is a printable character event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsEnter returns true if this is the Enter key.
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter
}

// IsBackspace returns true if this is the Backspace key.
func (e Event) IsBackspace() bool {
	return e.Key == KeyBackspace
}

// IsIgnored returns true if the input resolved to nothing actionable.
func (e Event) IsIgnored() bool {
	return e.Key == KeyIgnored
}

// String returns a canonical representation, e.g. "a", "Enter", "Up".
func (e Event) String() string {
	if e.Key == KeyRune {
		return string(e.Rune)
	}
	return e.Key.String()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q}", e.Key.String(), e.Rune)
}
