package keyline

import (
	"github.com/dshills/keyline/internal/ansi"
	"github.com/dshills/keyline/internal/editline"
	"github.com/dshills/keyline/internal/key"
	"github.com/dshills/keyline/internal/menu"
	"github.com/dshills/keyline/internal/term"
)

// Terminal is a session factory bound to one terminal backend. Each call
// to Selection, Input or Masked is one input session: the terminal enters
// raw mode for its duration and is restored when it returns.
type Terminal struct {
	backend term.Backend
}

// New creates a Terminal over the process's standard input and output.
func New() *Terminal {
	return &Terminal{backend: term.NewTty()}
}

// newTerminal binds a Terminal to an arbitrary backend. Tests use it with
// the scripted in-memory backend.
func newTerminal(backend term.Backend) *Terminal {
	return &Terminal{backend: backend}
}

// Selection presents a keyboard-navigable vertical list and blocks until
// one option is confirmed with Enter. Constructing with zero options
// fails with ErrNoOptions before anything is written.
func Selection(options []string, opts ...SelectOption) (string, error) {
	return New().Selection(options, opts...)
}

// Input reads one line of text with in-place editing: cursor movement,
// insertion and deletion anywhere in the line.
func Input(prompt string, opts ...InputOption) (string, error) {
	return New().Input(prompt, opts...)
}

// Masked reads one line of text without echoing the keys pressed.
func Masked(prompt string) (string, error) {
	return New().Masked(prompt)
}

// Selection presents a keyboard-navigable vertical list on this terminal.
func (t *Terminal) Selection(options []string, opts ...SelectOption) (_ string, err error) {
	cfg := selectConfig{active: DefaultActiveMarker, passive: DefaultPassiveMarker}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate before the terminal is touched.
	m, err := menu.New(options, cfg.active, cfg.passive, cfg.wrap)
	if err != nil {
		return "", err
	}

	if err := t.backend.Start(); err != nil {
		return "", err
	}
	defer t.restoreOn(&err)

	if err := t.write(m.InitialPaint()); err != nil {
		return "", err
	}

	reader := key.NewReader(t.backend)
	for {
		ev, err := reader.Read()
		if err != nil {
			return "", err
		}
		directive, confirmed := m.Apply(ev)
		if err := t.write(directive); err != nil {
			return "", err
		}
		if confirmed {
			return m.Selected(), nil
		}
	}
}

// Input reads one line with in-place editing on this terminal.
func (t *Terminal) Input(prompt string, opts ...InputOption) (_ string, err error) {
	var cfg inputConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := t.backend.Start(); err != nil {
		return "", err
	}
	defer t.restoreOn(&err)

	buf := editline.New(cfg.initial)
	if err := t.write(prompt + cfg.initial); err != nil {
		return "", err
	}

	reader := key.NewReader(t.backend)
	for {
		ev, err := reader.Read()
		if err != nil {
			return "", err
		}

		var directive string
		switch ev.Key {
		case key.KeyEnter:
			if err := t.write(ansi.CRLF); err != nil {
				return "", err
			}
			return buf.Snapshot(), nil
		case key.KeyBackspace:
			directive = buf.DeleteBefore()
		case key.KeyLeft:
			directive = buf.MoveLeft()
		case key.KeyRight:
			directive = buf.MoveRight()
		case key.KeyRune:
			directive = buf.Insert(ev.Rune)
		}
		// Up, Down, paging and ignored input are consumed without effect.

		if err := t.write(directive); err != nil {
			return "", err
		}
	}
}

// Masked reads one line without echo on this terminal. Navigation keys
// are consumed but ignored; only Enter, Backspace and printable
// characters apply.
func (t *Terminal) Masked(prompt string) (_ string, err error) {
	if err := t.backend.Start(); err != nil {
		return "", err
	}
	defer t.restoreOn(&err)

	if err := t.write(prompt); err != nil {
		return "", err
	}

	buf := editline.New("")
	reader := key.NewReader(t.backend)
	for {
		ev, err := reader.Read()
		if err != nil {
			return "", err
		}

		switch ev.Key {
		case key.KeyEnter:
			if err := t.write(ansi.CRLF); err != nil {
				return "", err
			}
			return buf.Snapshot(), nil
		case key.KeyBackspace:
			buf.DeleteBefore()
		case key.KeyRune:
			buf.Insert(ev.Rune)
		}
	}
}

// write sends a directive and flushes it as one atomic redraw. Empty
// directives are dropped without touching the terminal.
func (t *Terminal) write(directive string) error {
	if directive == "" {
		return nil
	}
	if err := t.backend.WriteString(directive); err != nil {
		return err
	}
	return t.backend.Flush()
}

// restoreOn leaves raw mode, preferring an earlier session error over a
// restore failure.
func (t *Terminal) restoreOn(err *error) {
	if restoreErr := t.backend.Stop(); *err == nil {
		*err = restoreErr
	}
}
