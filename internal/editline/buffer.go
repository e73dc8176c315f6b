package editline

import (
	"github.com/dshills/keyline/internal/ansi"
)

// Buffer is a line of text under edit: an ordered character sequence plus
// a cursor index. Mutations return repaint directives describing the
// minimal terminal update. The zero value is an empty buffer.
//
// Buffer is not safe for concurrent use; callers that share one across
// goroutines serialize access themselves.
type Buffer struct {
	content []rune
	cursor  int
}

// New creates a buffer holding initial, cursor at the end.
func New(initial string) *Buffer {
	content := []rune(initial)
	return &Buffer{content: content, cursor: len(content)}
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return len(b.content)
}

// Cursor returns the logical cursor index.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Snapshot returns the buffer content without mutating it.
func (b *Buffer) Snapshot() string {
	return string(b.content)
}

// Insert places r at the cursor and advances it. The directive rewrites
// from the insertion point to the end of the line, then walks the visual
// cursor back to the logical position: every character after the insertion
// point shifted right by one.
func (b *Buffer) Insert(r rune) string {
	b.content = append(b.content, 0)
	copy(b.content[b.cursor+1:], b.content[b.cursor:])
	b.content[b.cursor] = r
	b.cursor++

	rest := string(b.content[b.cursor:])
	return string(r) + rest + ansi.CursorBack(len(rest))
}

// DeleteBefore removes the character before the cursor. No-op at the line
// start or on an empty buffer. The directive steps the cursor left one
// column, rewrites the remainder with one trailing blank to erase the
// stale last cell, then returns to the logical position.
func (b *Buffer) DeleteBefore() string {
	if len(b.content) == 0 || b.cursor == 0 {
		return ""
	}

	rest := string(b.content[b.cursor:])
	b.content = append(b.content[:b.cursor-1], b.content[b.cursor:]...)
	b.cursor--

	return ansi.CursorBack(1) + rest + " " + ansi.CursorBack(len(rest)+1)
}

// MoveLeft steps the cursor one position left. No-op at the line start.
func (b *Buffer) MoveLeft() string {
	if b.cursor == 0 {
		return ""
	}
	b.cursor--
	return ansi.CursorBack(1)
}

// MoveRight steps the cursor one position right. No-op at the line end.
func (b *Buffer) MoveRight() string {
	if b.cursor >= len(b.content) {
		return ""
	}
	b.cursor++
	return ansi.CursorForward(1)
}

// Reset returns the content and empties the buffer. The directive erases
// the rendered text regardless of where the cursor sits: back to the text
// start, blank over every cell, back again. Empty buffers erase nothing.
func (b *Buffer) Reset() (string, string) {
	s := string(b.content)
	if len(b.content) == 0 {
		return s, ""
	}

	directive := ansi.CursorBack(b.cursor) +
		ansi.Blank(len(b.content)) +
		ansi.CursorBack(len(b.content))
	b.content = b.content[:0]
	b.cursor = 0
	return s, directive
}
