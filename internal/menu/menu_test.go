package menu

import (
	"strings"
	"testing"

	"github.com/dshills/keyline/internal/key"
)

func newTestMenu(t *testing.T, wrap bool) *Menu {
	t.Helper()
	m, err := New([]string{"A", "B", "C"}, " >", "> ", wrap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestNewEmptyOptions(t *testing.T) {
	m, err := New(nil, " >", "> ", false)
	if err != ErrNoOptions {
		t.Errorf("expected ErrNoOptions, got %v", err)
	}
	if m != nil {
		t.Error("expected nil menu on error")
	}
}

func TestInitialPaint(t *testing.T) {
	m := newTestMenu(t, false)
	paint := m.InitialPaint()

	if !strings.HasPrefix(paint, " >A") {
		t.Errorf("first line should carry the active marker, got %q", paint)
	}
	if !strings.Contains(paint, "> B") || !strings.Contains(paint, "> C") {
		t.Errorf("remaining lines should carry the passive marker, got %q", paint)
	}
	if !strings.HasSuffix(paint, "\x1b[2A") {
		t.Errorf("paint should end repositioning the cursor to the top, got %q", paint)
	}
}

func TestDownWithoutWrap(t *testing.T) {
	m := newTestMenu(t, false)

	for i, want := range []int{1, 2, 2} {
		directive, confirmed := m.Apply(key.NewSpecialEvent(key.KeyDown))
		if confirmed {
			t.Fatalf("step %d: Down should not confirm", i)
		}
		if m.Index() != want {
			t.Errorf("step %d: expected index %d, got %d", i, want, m.Index())
		}
		if want == 2 && i == 2 && directive != "" {
			t.Errorf("Down at the last option without wrap should be a no-op, got %q", directive)
		}
	}
}

func TestUpAtTopWithoutWrap(t *testing.T) {
	m := newTestMenu(t, false)

	directive, confirmed := m.Apply(key.NewSpecialEvent(key.KeyUp))
	if confirmed || directive != "" || m.Index() != 0 {
		t.Errorf("Up at the top without wrap should be a no-op, got %q index %d", directive, m.Index())
	}
}

func TestDownWrapsAround(t *testing.T) {
	m := newTestMenu(t, true)

	m.Apply(key.NewSpecialEvent(key.KeyDown))
	m.Apply(key.NewSpecialEvent(key.KeyDown))
	if m.Index() != 2 {
		t.Fatalf("expected index 2, got %d", m.Index())
	}

	directive, _ := m.Apply(key.NewSpecialEvent(key.KeyDown))
	if m.Index() != 0 {
		t.Errorf("expected wrap to index 0, got %d", m.Index())
	}
	// Wrapping to the top moves the cursor up n-1 lines.
	if !strings.Contains(directive, "\x1b[2A") {
		t.Errorf("expected cursor-up-2 in wrap directive, got %q", directive)
	}
}

func TestUpWrapsAround(t *testing.T) {
	m := newTestMenu(t, true)

	directive, _ := m.Apply(key.NewSpecialEvent(key.KeyUp))
	if m.Index() != 2 {
		t.Errorf("expected wrap to last index 2, got %d", m.Index())
	}
	if !strings.Contains(directive, "\x1b[2B") {
		t.Errorf("expected cursor-down-2 in wrap directive, got %q", directive)
	}
}

func TestEnterConfirms(t *testing.T) {
	m := newTestMenu(t, false)
	m.Apply(key.NewSpecialEvent(key.KeyDown))

	directive, confirmed := m.Apply(key.NewSpecialEvent(key.KeyEnter))
	if !confirmed || !m.Confirmed() {
		t.Fatal("Enter should confirm the selection")
	}
	if m.Selected() != "B" {
		t.Errorf("expected selection %q, got %q", "B", m.Selected())
	}
	// From index 1 of 3 the cursor steps one row down, then onto a fresh
	// line below the list.
	if directive != "\x1b[B\r\n" {
		t.Errorf("expected confirm directive %q, got %q", "\x1b[B\r\n", directive)
	}
}

func TestOtherKeysConsumedWithoutEffect(t *testing.T) {
	m := newTestMenu(t, true)

	for _, ev := range []key.Event{
		key.NewRuneEvent('x'),
		key.NewSpecialEvent(key.KeyLeft),
		key.NewSpecialEvent(key.KeyRight),
		key.NewSpecialEvent(key.KeyBackspace),
		key.NewSpecialEvent(key.KeyIgnored),
	} {
		directive, confirmed := m.Apply(ev)
		if directive != "" || confirmed || m.Index() != 0 {
			t.Errorf("%v: expected no-op, got %q confirmed=%v index=%d",
				ev, directive, confirmed, m.Index())
		}
	}
}

func TestSingleOptionWrapStaysPut(t *testing.T) {
	m, err := New([]string{"only"}, " >", "> ", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if directive, _ := m.Apply(key.NewSpecialEvent(key.KeyDown)); directive != "" {
		t.Errorf("single-option wrap should be a no-op, got %q", directive)
	}
	if m.Index() != 0 {
		t.Errorf("expected index 0, got %d", m.Index())
	}
}
