package key

// ByteSource supplies raw input bytes. The terminal backend implements it
// over a raw-mode file descriptor; tests implement it over a scripted
// byte slice.
type ByteSource interface {
	// ReadByte blocks until one raw byte is available.
	ReadByte() (byte, error)

	// PollByte returns the next raw byte if one is pending, without
	// blocking. The second result is false when no input is waiting.
	PollByte() (byte, bool, error)
}

// Reader consumes raw bytes from a source and produces resolved key
// events. It never writes output.
type Reader struct {
	src ByteSource
	dec Decoder
}

// NewReader creates a reader over the given byte source.
func NewReader(src ByteSource) *Reader {
	return &Reader{src: src}
}

// Poll returns the next resolved event if enough input is pending to
// complete one. The second result is false when no event is available;
// a half-received special-key sequence stays buffered in the decoder
// until its remaining bytes arrive.
func (r *Reader) Poll() (Event, bool, error) {
	for {
		b, ok, err := r.src.PollByte()
		if err != nil {
			return Event{}, false, err
		}
		if !ok {
			return Event{}, false, nil
		}
		if ev, done := r.dec.Feed(b); done {
			return ev, true, nil
		}
	}
}

// Read blocks until one resolved event is available.
func (r *Reader) Read() (Event, error) {
	for {
		b, err := r.src.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if ev, done := r.dec.Feed(b); done {
			return ev, nil
		}
	}
}
