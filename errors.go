package keyline

import (
	"errors"

	"github.com/dshills/keyline/internal/menu"
)

// Errors returned by keyline operations.
var (
	// ErrNoOptions indicates a selection was requested with an empty
	// option set. Returned before any terminal output occurs.
	ErrNoOptions = menu.ErrNoOptions

	// ErrAlreadyRunning indicates Start or Run was called on a display
	// whose consumption loop is still active.
	ErrAlreadyRunning = errors.New("keyline: display is already running")
)
