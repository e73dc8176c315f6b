package menu

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/keyline/internal/ansi"
	"github.com/dshills/keyline/internal/key"
)

// Menu is a fixed vertical list of options with one highlighted. It holds
// no terminal state of its own; every transition returns the repaint
// directive that keeps the terminal in sync.
type Menu struct {
	options   []string
	active    string
	passive   string
	wrap      bool
	index     int
	width     int
	confirmed bool
}

// New creates a menu over options. Construction fails before any terminal
// output when options is empty.
func New(options []string, active, passive string, wrap bool) (*Menu, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}

	// Widest rendered line: longest label plus the wider marker. Every
	// line reset blanks this many cells so marker length changes never
	// leave residue.
	width := 0
	for _, opt := range options {
		if w := runewidth.StringWidth(opt); w > width {
			width = w
		}
	}
	marker := runewidth.StringWidth(active)
	if w := runewidth.StringWidth(passive); w > marker {
		marker = w
	}

	return &Menu{
		options: options,
		active:  active,
		passive: passive,
		wrap:    wrap,
		width:   width + marker,
	}, nil
}

// Len returns the number of options.
func (m *Menu) Len() int {
	return len(m.options)
}

// Index returns the highlighted option's index.
func (m *Menu) Index() int {
	return m.index
}

// Confirmed reports whether Enter has selected an option.
func (m *Menu) Confirmed() bool {
	return m.confirmed
}

// Selected returns the highlighted option.
func (m *Menu) Selected() string {
	return m.options[m.index]
}

// InitialPaint renders every option line once, the first highlighted, and
// leaves the cursor at column zero of the first line.
func (m *Menu) InitialPaint() string {
	s := m.active + m.options[0]
	for _, opt := range m.options[1:] {
		s += ansi.CRLF + m.passive + opt
	}
	return s + ansi.CR + ansi.CursorUp(len(m.options)-1)
}

// Apply consumes one key event. It returns the repaint directive for the
// transition and whether the event confirmed the selection. Keys other
// than Enter, Up and Down are consumed without effect.
func (m *Menu) Apply(ev key.Event) (string, bool) {
	if m.confirmed {
		return "", true
	}

	switch ev.Key {
	case key.KeyEnter:
		m.confirmed = true
		// Step below the list so later output does not overwrite it.
		return ansi.CursorDown(len(m.options)-1-m.index) + ansi.CRLF, true
	case key.KeyDown:
		return m.moveDown(), false
	case key.KeyUp:
		return m.moveUp(), false
	default:
		return "", false
	}
}

func (m *Menu) moveDown() string {
	last := len(m.options) - 1
	switch {
	case m.index < last:
		prev := m.index
		m.index++
		return m.repaintLine(prev, m.passive) +
			ansi.CursorDown(1) +
			m.repaintLine(m.index, m.active)
	case m.wrap && last > 0:
		prev := m.index
		m.index = 0
		return m.repaintLine(prev, m.passive) +
			ansi.CursorUp(last) +
			m.repaintLine(0, m.active)
	default:
		return ""
	}
}

func (m *Menu) moveUp() string {
	last := len(m.options) - 1
	switch {
	case m.index > 0:
		prev := m.index
		m.index--
		return m.repaintLine(prev, m.passive) +
			ansi.CursorUp(1) +
			m.repaintLine(m.index, m.active)
	case m.wrap && last > 0:
		prev := m.index
		m.index = last
		return m.repaintLine(prev, m.passive) +
			ansi.CursorDown(last) +
			m.repaintLine(last, m.active)
	default:
		return ""
	}
}

// repaintLine blanks the current line and rewrites one option with the
// given marker, ending at column zero.
func (m *Menu) repaintLine(idx int, marker string) string {
	return ansi.CR + ansi.Blank(m.width) + ansi.CR +
		marker + m.options[idx] + ansi.CR
}
