package menu

import "errors"

// Errors returned by menu construction.
var (
	// ErrNoOptions indicates a menu was requested with an empty option set.
	ErrNoOptions = errors.New("menu: no options supplied")
)
