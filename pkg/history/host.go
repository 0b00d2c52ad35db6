package history

import (
	"errors"
	"fmt"
)

// Mode selects how a host exposes the active location.
type Mode int

const (
	// ModePath routes the plain path of the host location.
	ModePath Mode = iota

	// ModeHash routes the "#"-delimited fragment, read as a path.
	ModeHash
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePath:
		return "path"
	case ModeHash:
		return "hash"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Binding is one host navigation surface: a current-value read, push
// and replace primitives, and a subscribe-to-changes capability.
// Subscribers are invoked without any host lock held.
type Binding interface {
	// Current returns the active path for this binding.
	Current() string

	// Push navigates to path, adding a history entry.
	Push(path string)

	// Replace navigates to path, replacing the current entry.
	Replace(path string)

	// Subscribe registers fn for subsequent path changes and returns
	// a cancel function.
	Subscribe(fn func(path string)) (cancel func())
}

// Host exposes navigation bindings per mode.
type Host interface {
	// Binding returns the binding for mode, or ErrModeUnsupported
	// when the host cannot serve it.
	Binding(mode Mode) (Binding, error)
}

// ErrModeUnsupported is returned by hosts that cannot serve a
// requested navigation mode.
var ErrModeUnsupported = errors.New("history: navigation mode not supported by host")

// ConfigurationError reports a router setup failure: the requested
// navigation mode is unsupported by the hosting environment. It is
// raised at construction time, never deferred to first navigation.
type ConfigurationError struct {
	// Mode is the requested navigation mode.
	Mode Mode

	// Err is the underlying host error.
	Err error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("history: cannot bind %s navigation: %v", e.Mode, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
