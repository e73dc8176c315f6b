package key

import "testing"

// feedAll runs a byte sequence through a fresh decoder and collects every
// completed event.
func feedAll(bytes ...byte) []Event {
	var d Decoder
	var events []Event
	for _, b := range bytes {
		if ev, done := d.Feed(b); done {
			events = append(events, ev)
		}
	}
	return events
}

func TestDecodePrintable(t *testing.T) {
	events := feedAll('a')
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if !events[0].IsRune() || events[0].Rune != 'a' {
		t.Errorf("expected rune 'a', got %#v", events[0])
	}
}

func TestDecodeEnterVariants(t *testing.T) {
	for _, b := range []byte{'\r', '\n'} {
		events := feedAll(b)
		if len(events) != 1 || events[0].Key != KeyEnter {
			t.Errorf("byte %#x: expected Enter, got %v", b, events)
		}
	}
}

func TestDecodeBackspaceVariants(t *testing.T) {
	for _, b := range []byte{0x08, 0x7f} {
		events := feedAll(b)
		if len(events) != 1 || events[0].Key != KeyBackspace {
			t.Errorf("byte %#x: expected Backspace, got %v", b, events)
		}
	}
}

func TestDecodeScanCodes(t *testing.T) {
	tests := []struct {
		name   string
		prefix byte
		code   byte
		want   Key
	}{
		{"up", scanPrefix, 'H', KeyUp},
		{"down", scanPrefix, 'P', KeyDown},
		{"left", scanPrefix, 'K', KeyLeft},
		{"right", scanPrefix, 'M', KeyRight},
		{"page up", scanPrefix, 'I', KeyPageUp},
		{"page down", scanPrefix, 'Q', KeyPageDown},
		{"extended up", scanPrefixExt, 'H', KeyUp},
		{"extended right", scanPrefixExt, 'M', KeyRight},
	}

	for _, tt := range tests {
		events := feedAll(tt.prefix, tt.code)
		if len(events) != 1 {
			t.Errorf("%s: expected 1 event, got %d", tt.name, len(events))
			continue
		}
		if events[0].Key != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, events[0].Key)
		}
	}
}

// Uppercase letters that collide with raw scan codes must decode as
// printable characters when no prefix precedes them.
func TestDecodeBareScanCodeIsPrintable(t *testing.T) {
	for _, b := range []byte{'H', 'P', 'K', 'M'} {
		events := feedAll(b)
		if len(events) != 1 {
			t.Fatalf("byte %q: expected 1 event, got %d", b, len(events))
		}
		if !events[0].IsRune() || events[0].Rune != rune(b) {
			t.Errorf("byte %q: expected printable rune, got %#v", b, events[0])
		}
	}
}

// A prefix followed by an unrelated byte must not be misread as a
// navigation key: the prefix is dropped and the follower keeps its plain
// meaning.
func TestDecodeOrphanedScanPrefix(t *testing.T) {
	events := feedAll(scanPrefix, 'x')
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if !events[0].IsRune() || events[0].Rune != 'x' {
		t.Errorf("expected printable 'x', got %#v", events[0])
	}

	// A chained prefix keeps the decoder mid-sequence.
	var d Decoder
	if _, done := d.Feed(scanPrefix); done {
		t.Error("prefix alone should not complete an event")
	}
	if !d.Pending() {
		t.Error("decoder should be pending after a lone prefix")
	}
}

func TestDecodeCSISequences(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  Key
	}{
		{"up", []byte{esc, '[', 'A'}, KeyUp},
		{"down", []byte{esc, '[', 'B'}, KeyDown},
		{"right", []byte{esc, '[', 'C'}, KeyRight},
		{"left", []byte{esc, '[', 'D'}, KeyLeft},
		{"page up", []byte{esc, '[', '5', '~'}, KeyPageUp},
		{"page down", []byte{esc, '[', '6', '~'}, KeyPageDown},
	}

	for _, tt := range tests {
		events := feedAll(tt.bytes...)
		if len(events) != 1 {
			t.Errorf("%s: expected 1 event, got %d", tt.name, len(events))
			continue
		}
		if events[0].Key != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, events[0].Key)
		}
	}
}

func TestDecodeOrphanedEscape(t *testing.T) {
	events := feedAll(esc, 'a')
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if !events[0].IsRune() || events[0].Rune != 'a' {
		t.Errorf("expected printable 'a', got %#v", events[0])
	}
}

func TestDecodeUnknownCSIIsIgnored(t *testing.T) {
	events := feedAll(esc, '[', 'Z')
	if len(events) != 1 || events[0].Key != KeyIgnored {
		t.Errorf("expected Ignored, got %v", events)
	}
}

func TestDecodeControlBytesIgnored(t *testing.T) {
	events := feedAll(0x01, 0x09, 0x80)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Key != KeyIgnored {
			t.Errorf("event %d: expected Ignored, got %s", i, ev.Key)
		}
	}
}

func TestDecoderReset(t *testing.T) {
	var d Decoder
	d.Feed(scanPrefix)
	d.Reset()
	if d.Pending() {
		t.Error("decoder should not be pending after Reset")
	}
	ev, done := d.Feed('H')
	if !done || !ev.IsRune() || ev.Rune != 'H' {
		t.Errorf("after Reset, 'H' should be printable, got %#v done=%v", ev, done)
	}
}
