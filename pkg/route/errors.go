package route

import (
	"errors"
	"fmt"
)

// ErrNoMatch is the sentinel for match failures. Use errors.Is to test
// any error returned by Match or Dispatch:
//
//	if errors.Is(err, route.ErrNoMatch) {
//	    renderNotFound()
//	}
var ErrNoMatch = errors.New("route: no match")

// NoMatchError reports that no registered pattern is compatible with a
// location. Match never falls back silently; rendering a "not found"
// state is the caller's decision.
type NoMatchError struct {
	// Location is the path that failed to match.
	Location string
}

// Error implements the error interface.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("route: no pattern matches %q", e.Location)
}

// Is makes errors.Is(err, ErrNoMatch) succeed for NoMatchError values.
func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}
