// Package ansi builds the cursor-control escape sequences used by the
// repaint directives: relative cursor movement, carriage return, and
// blank padding for erasing previously rendered text.
package ansi

import (
	"strconv"
	"strings"
)

// Single-character control output.
const (
	CR = "\r"
	LF = "\n"

	// CRLF starts a fresh line regardless of the current column. Raw mode
	// disables output post-processing, so a bare LF does not imply CR.
	CRLF = "\r\n"
)

// CursorUp moves the cursor up n rows. Returns "" for n <= 0.
func CursorUp(n int) string {
	return seq(n, 'A')
}

// CursorDown moves the cursor down n rows. Returns "" for n <= 0.
func CursorDown(n int) string {
	return seq(n, 'B')
}

// CursorForward moves the cursor right n columns. Returns "" for n <= 0.
func CursorForward(n int) string {
	return seq(n, 'C')
}

// CursorBack moves the cursor left n columns. Returns "" for n <= 0.
func CursorBack(n int) string {
	return seq(n, 'D')
}

// Blank returns n spaces, used to overwrite stale cells in place.
func Blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func seq(n int, final byte) string {
	switch {
	case n <= 0:
		return ""
	case n == 1:
		return "\x1b[" + string(final)
	default:
		return "\x1b[" + strconv.Itoa(n) + string(final)
	}
}
