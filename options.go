package keyline

// Default decorative markers, matching the selection defaults.
const (
	DefaultActiveMarker  = " >"
	DefaultPassiveMarker = "> "
)

type selectConfig struct {
	active  string
	passive string
	wrap    bool
}

// SelectOption configures a selection call.
type SelectOption func(*selectConfig)

// WithMarkers sets the decorative strings prepended to the highlighted
// and passive option lines.
func WithMarkers(active, passive string) SelectOption {
	return func(c *selectConfig) {
		c.active = active
		c.passive = passive
	}
}

// WithWrap makes navigation wrap around when moving past either end of
// the option list.
func WithWrap() SelectOption {
	return func(c *selectConfig) {
		c.wrap = true
	}
}

type inputConfig struct {
	initial string
}

// InputOption configures an editable input call.
type InputOption func(*inputConfig)

// WithInitialText seeds the edit buffer with editable text, cursor at the
// end.
func WithInitialText(text string) InputOption {
	return func(c *inputConfig) {
		c.initial = text
	}
}

type displayConfig struct {
	capacity        int
	dispatchOnEnter bool
	onSubmit        func(string)
}

// DisplayOption configures a Display.
type DisplayOption func(*displayConfig)

// WithCapacity sets the number of scrollback lines kept above the prompt.
func WithCapacity(capacity int) DisplayOption {
	return func(c *displayConfig) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// WithoutDispatchOnEnter keeps the live line's text on screen after Enter
// instead of clearing it.
func WithoutDispatchOnEnter() DisplayOption {
	return func(c *displayConfig) {
		c.dispatchOnEnter = false
	}
}

// WithSubmitHandler sets the callback invoked with the live line's text
// each time Enter completes a line.
func WithSubmitHandler(fn func(string)) DisplayOption {
	return func(c *displayConfig) {
		c.onSubmit = fn
	}
}
