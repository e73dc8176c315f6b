package key

// Raw input bytes with special meaning.
const (
	scanPrefix    = 0x00 // console special-key prefix
	scanPrefixExt = 0xE0 // extended console special-key prefix
	esc           = 0x1b

	scanUp       = 'H'
	scanDown     = 'P'
	scanLeft     = 'K'
	scanRight    = 'M'
	scanPageUp   = 'I'
	scanPageDown = 'Q'
)

// decoder states. The prefix/code pairing is modeled as an explicit state
// machine so that an orphaned prefix byte is a reachable, testable case
// rather than incidental "last byte seen" behavior.
type decoderState int

const (
	stateIdle        decoderState = iota
	stateScan                     // seen a console scan prefix, awaiting the code byte
	stateEsc                      // seen ESC, awaiting '['
	stateCSI                      // seen ESC '[', awaiting the final byte
	stateCSIPageUp                // seen ESC '[' '5', awaiting '~'
	stateCSIPageDown              // seen ESC '[' '6', awaiting '~'
)

// Decoder turns a stream of raw input bytes into Events. Feed one byte at
// a time; a two-read special key yields its Event only once both bytes
// have arrived.
//
// The zero value is ready to use.
type Decoder struct {
	state decoderState
}

// Feed consumes one raw byte. It returns the resolved event and true when
// the byte completes an event, or the zero Event and false when the byte
// opens (or extends) a special-key sequence.
//
// A scan code byte arriving in the idle state decodes as its printable
// character. A prefix followed by an unrelated byte drops the prefix and
// decodes the follower on its own, so the pair is never misread as a
// navigation key.
func (d *Decoder) Feed(b byte) (Event, bool) {
	switch d.state {
	case stateScan:
		d.state = stateIdle
		switch b {
		case scanUp:
			return NewSpecialEvent(KeyUp), true
		case scanDown:
			return NewSpecialEvent(KeyDown), true
		case scanLeft:
			return NewSpecialEvent(KeyLeft), true
		case scanRight:
			return NewSpecialEvent(KeyRight), true
		case scanPageUp:
			return NewSpecialEvent(KeyPageUp), true
		case scanPageDown:
			return NewSpecialEvent(KeyPageDown), true
		default:
			// Orphaned prefix: the follower keeps its plain meaning.
			return d.Feed(b)
		}

	case stateEsc:
		if b == '[' {
			d.state = stateCSI
			return Event{}, false
		}
		// Orphaned ESC: drop it, decode the follower on its own.
		d.state = stateIdle
		return d.Feed(b)

	case stateCSI:
		d.state = stateIdle
		switch b {
		case 'A':
			return NewSpecialEvent(KeyUp), true
		case 'B':
			return NewSpecialEvent(KeyDown), true
		case 'C':
			return NewSpecialEvent(KeyRight), true
		case 'D':
			return NewSpecialEvent(KeyLeft), true
		case '5':
			d.state = stateCSIPageUp
			return Event{}, false
		case '6':
			d.state = stateCSIPageDown
			return Event{}, false
		default:
			return NewSpecialEvent(KeyIgnored), true
		}

	case stateCSIPageUp:
		d.state = stateIdle
		if b == '~' {
			return NewSpecialEvent(KeyPageUp), true
		}
		return NewSpecialEvent(KeyIgnored), true

	case stateCSIPageDown:
		d.state = stateIdle
		if b == '~' {
			return NewSpecialEvent(KeyPageDown), true
		}
		return NewSpecialEvent(KeyIgnored), true

	default: // stateIdle
		switch {
		case b == scanPrefix || b == scanPrefixExt:
			d.state = stateScan
			return Event{}, false
		case b == esc:
			d.state = stateEsc
			return Event{}, false
		case b == '\r' || b == '\n':
			return NewSpecialEvent(KeyEnter), true
		case b == 0x08 || b == 0x7f:
			return NewSpecialEvent(KeyBackspace), true
		case b >= 0x20 && b < 0x7f:
			return NewRuneEvent(rune(b)), true
		default:
			// Control bytes and non-ASCII input; multi-byte characters
			// are out of scope.
			return NewSpecialEvent(KeyIgnored), true
		}
	}
}

// Pending returns true when the decoder is mid-sequence, holding a prefix
// that still needs its follow-up byte.
func (d *Decoder) Pending() bool {
	return d.state != stateIdle
}

// Reset discards any partially consumed sequence.
func (d *Decoder) Reset() {
	d.state = stateIdle
}
