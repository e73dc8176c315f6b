package ansi

import "testing"

func TestCursorMovement(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"up one", CursorUp(1), "\x1b[A"},
		{"up many", CursorUp(3), "\x1b[3A"},
		{"up zero", CursorUp(0), ""},
		{"up negative", CursorUp(-2), ""},
		{"down one", CursorDown(1), "\x1b[B"},
		{"down many", CursorDown(12), "\x1b[12B"},
		{"forward one", CursorForward(1), "\x1b[C"},
		{"back one", CursorBack(1), "\x1b[D"},
		{"back many", CursorBack(5), "\x1b[5D"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, tt.got)
		}
	}
}

func TestBlank(t *testing.T) {
	if got := Blank(4); got != "    " {
		t.Errorf("expected four spaces, got %q", got)
	}
	if got := Blank(0); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if got := Blank(-1); got != "" {
		t.Errorf("expected empty string for negative count, got %q", got)
	}
}
