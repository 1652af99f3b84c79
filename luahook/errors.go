package luahook

import "errors"

var (
	// ErrRuntimeClosed is returned when operating on a closed runtime.
	ErrRuntimeClosed = errors.New("lua runtime is closed")

	// ErrHookNotFound is returned when a hook name does not resolve to a
	// global Lua function.
	ErrHookNotFound = errors.New("lua hook not found")
)
