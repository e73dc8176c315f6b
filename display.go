package keyline

import (
	"sync"
	"time"

	"github.com/dshills/keyline/internal/display"
	"github.com/dshills/keyline/internal/editline"
	"github.com/dshills/keyline/internal/key"
	"github.com/dshills/keyline/internal/term"
)

// pollInterval is how long the consumption loop sleeps when no input is
// pending.
const pollInterval = 5 * time.Millisecond

// Display is a scrolling multi-line region with a live-edited prompt line
// beneath it. The region holds the most recent lines pushed into its
// fixed-capacity registry; the prompt line is edited in place as keys
// arrive.
//
// The consumption loop runs either on the caller (Run) or on one
// background goroutine (Start). Push, Append, Flush, Clear and Get may be
// called from any goroutine; they serialize against the loop's own
// redraws through the display's mutex.
type Display struct {
	backend         term.Backend
	reader          *key.Reader
	prompt          string
	dispatchOnEnter bool
	onSubmit        func(string)

	mu        sync.Mutex
	reg       *display.Registry
	buf       *editline.Buffer
	cleared   bool // region erased, render still pending
	running   bool
	inHandler bool // loop goroutine is inside the submit handler
	stopCh    chan struct{}
	done      chan struct{}
	runErr    error
}

// Display creates a scrolling display on this terminal. The default
// registry capacity is display.DefaultCapacity lines and the live line is
// cleared after each Enter.
func (t *Terminal) Display(prompt string, opts ...DisplayOption) *Display {
	cfg := displayConfig{dispatchOnEnter: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Display{
		backend:         t.backend,
		reader:          key.NewReader(t.backend),
		prompt:          prompt,
		dispatchOnEnter: cfg.dispatchOnEnter,
		onSubmit:        cfg.onSubmit,
		reg:             display.NewRegistry(cfg.capacity),
		buf:             editline.New(""),
	}
}

// Capacity returns the registry's fixed line count.
func (d *Display) Capacity() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reg.Capacity()
}

// Lines returns a copy of the registry content, oldest first.
func (d *Display) Lines() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reg.Lines()
}

// Run starts the consumption loop on the calling goroutine and blocks
// until Stop is called (from a submit handler or another goroutine) or
// the loop fails.
func (d *Display) Run() error {
	if err := d.begin(); err != nil {
		return err
	}
	return d.loop()
}

// Start launches the consumption loop on a background goroutine and
// returns once the region is rendered. A loop failure is surfaced by
// Stop.
func (d *Display) Start() error {
	if err := d.begin(); err != nil {
		return err
	}

	d.mu.Lock()
	d.done = make(chan struct{})
	done := d.done
	d.mu.Unlock()

	go func() {
		err := d.loop()
		d.mu.Lock()
		d.runErr = err
		d.mu.Unlock()
		close(done)
	}()
	return nil
}

// Stop halts the consumption loop. When the loop runs in the background,
// Stop waits for it to exit before returning, so no further redraws race
// with caller output afterwards, and returns the loop's error if it
// faulted. A submit handler may call Stop itself; since the handler runs
// on the loop's goroutine, Stop then skips the wait and the loop exits as
// soon as the handler returns, without drawing again. When erase is true
// the visible region is wiped from the terminal as a final cleanup. Stop
// is idempotent.
func (d *Display) Stop(erase bool) error {
	d.mu.Lock()
	wasRunning := d.running
	if wasRunning {
		d.running = false
		close(d.stopCh)
	}
	done := d.done
	d.done = nil
	fromHandler := d.inHandler
	d.mu.Unlock()

	// Waiting for the loop from inside the submit handler would never
	// return: the loop is blocked in the handler, inside this call.
	if done != nil && !fromHandler {
		<-done
	}

	d.mu.Lock()
	err := d.runErr
	d.runErr = nil
	if wasRunning && erase {
		if werr := d.write(display.ClearRegion(d.reg.Lines(), d.prompt, d.buf.Snapshot())); err == nil {
			err = werr
		}
	}
	d.mu.Unlock()

	if restoreErr := d.backend.Stop(); err == nil {
		err = restoreErr
	}
	return err
}

// Push appends one or more lines to the registry, evicting as many from
// the front, and redraws the region. Content containing embedded line
// breaks is split into separate entries, each counting as its own push.
func (d *Display) Push(lines ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clearLocked()
	d.reg.Push(lines...)
	d.renderLocked()
}

// Append is Push without the redraw: the region is erased and the
// registry updated, but nothing is drawn until Flush. Use it to batch
// several pushes into one repaint.
func (d *Display) Append(lines ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clearLocked()
	d.reg.Push(lines...)
}

// Flush redraws the region after a batch of Append calls.
func (d *Display) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clearLocked()
	d.renderLocked()
}

// Clear resets every registry slot to empty and redraws the region.
func (d *Display) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clearLocked()
	d.reg.Clear()
	d.renderLocked()
}

// Get returns the live edit line's current text. When consume is true the
// live line is also cleared and its rendered text erased.
func (d *Display) Get(consume bool) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !consume {
		return d.buf.Snapshot()
	}
	text, directive := d.buf.Reset()
	_ = d.write(directive) // best-effort; these operations have no error channel
	return text
}

// begin transitions to running and renders the region for the first time.
func (d *Display) begin() error {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return ErrAlreadyRunning
	}
	d.running = true
	d.stopCh = make(chan struct{})
	d.mu.Unlock()

	if err := d.backend.Start(); err != nil {
		d.mu.Lock()
		d.running = false
		d.mu.Unlock()
		return err
	}

	d.mu.Lock()
	d.cleared = false
	err := d.write(display.InitialRender(d.reg.Lines(), d.prompt, d.buf.Snapshot(), d.buf.Cursor()))
	if err != nil {
		d.running = false
		d.mu.Unlock()
		_ = d.backend.Stop()
		return err
	}
	d.mu.Unlock()
	return nil
}

// loop consumes key events until the stop signal. All buffer mutation and
// terminal output happen here or under the same mutex.
func (d *Display) loop() error {
	for {
		select {
		case <-d.stopCh:
			return nil
		default:
		}

		ev, ok, err := d.reader.Poll()
		if err != nil {
			return err
		}
		if !ok {
			time.Sleep(pollInterval)
			continue
		}

		text, submitted, err := d.apply(ev)
		if err != nil {
			return err
		}
		// The handler runs unlocked so it can call Push or Stop itself.
		// The loop is marked while it runs so that Stop, invoked from
		// within, does not wait on its own goroutine.
		if submitted && d.onSubmit != nil {
			d.mu.Lock()
			d.inHandler = true
			d.mu.Unlock()
			d.onSubmit(text)
			d.mu.Lock()
			d.inHandler = false
			d.mu.Unlock()
		}
	}
}

// apply consumes one key event against the live line. It returns the
// completed text and true when the event was Enter.
func (d *Display) apply(ev key.Event) (string, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch ev.Key {
	case key.KeyEnter:
		if d.dispatchOnEnter {
			text, directive := d.buf.Reset()
			return text, true, d.write(directive)
		}
		return d.buf.Snapshot(), true, nil
	case key.KeyBackspace:
		return "", false, d.write(d.buf.DeleteBefore())
	case key.KeyLeft:
		return "", false, d.write(d.buf.MoveLeft())
	case key.KeyRight:
		return "", false, d.write(d.buf.MoveRight())
	case key.KeyRune:
		return "", false, d.write(d.buf.Insert(ev.Rune))
	default:
		// Up, Down, paging and ignored input are consumed without effect.
		return "", false, nil
	}
}

// clearLocked erases the visible region once per repaint cycle. Erasing
// uses the widths of what is currently drawn, so it must run before the
// registry mutates.
func (d *Display) clearLocked() {
	if d.cleared {
		return
	}
	_ = d.write(display.ClearRegion(d.reg.Lines(), d.prompt, d.buf.Snapshot()))
	d.cleared = true
}

// renderLocked redraws the erased region.
func (d *Display) renderLocked() {
	_ = d.write(display.RenderRegion(d.reg.Lines(), d.prompt, d.buf.Snapshot(), d.buf.Cursor()))
	d.cleared = false
}

// write sends a directive and flushes it as one atomic redraw.
func (d *Display) write(directive string) error {
	if directive == "" {
		return nil
	}
	if err := d.backend.WriteString(directive); err != nil {
		return err
	}
	return d.backend.Flush()
}
