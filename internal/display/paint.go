package display

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/keyline/internal/ansi"
)

// ClearRegion erases the visible region: every registry row and the
// trailing prompt row. It may start with the cursor anywhere on the
// prompt row and ends with the cursor at column zero of the prompt row,
// having touched exactly capacity+1 rows.
func ClearRegion(lines []string, prompt, live string) string {
	var b strings.Builder
	b.WriteString(ansi.CR)
	b.WriteString(ansi.CursorUp(len(lines)))
	for _, line := range lines {
		b.WriteString(ansi.Blank(runewidth.StringWidth(line)))
		b.WriteString(ansi.CR)
		b.WriteString(ansi.CursorDown(1))
	}
	b.WriteString(ansi.Blank(runewidth.StringWidth(prompt) + runewidth.StringWidth(live)))
	b.WriteString(ansi.CR)
	return b.String()
}

// RenderRegion draws every registry row and the prompt row with the live
// edit line, then positions the cursor at the live line's logical column.
// It expects the cursor at column zero of the prompt row of an erased
// region, and ends on the prompt row, the same physical row it started
// from.
func RenderRegion(lines []string, prompt, live string, cursor int) string {
	return ansi.CursorUp(len(lines)) + paintRows(lines, prompt, live, cursor)
}

// InitialRender draws the region for the first time, creating its rows
// from the current position instead of climbing over existing ones.
func InitialRender(lines []string, prompt, live string, cursor int) string {
	return paintRows(lines, prompt, live, cursor)
}

func paintRows(lines []string, prompt, live string, cursor int) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(ansi.CRLF)
	}
	b.WriteString(prompt)
	b.WriteString(live)
	b.WriteString(ansi.CursorBack(len([]rune(live)) - cursor))
	return b.String()
}
