package route

import "strings"

// Params are the named captures extracted from a matched location.
type Params map[string]string

// Handler produces a result for a matched location. The Context it
// receives is scoped to the unconsumed remainder of the path, so a
// handler can route further with its own Router (see Dispatch).
type Handler[T any] func(ctx *Context) T

// routeEntry pairs a compiled pattern with its handler.
type routeEntry[T any] struct {
	pattern *Pattern
	handler Handler[T]
}

// Router is an ordered table of route patterns. Patterns are compiled
// once at registration and never mutated afterward, so a fully built
// Router is safe for concurrent matching.
type Router[T any] struct {
	entries []routeEntry[T]
}

// NewRouter creates an empty router.
func NewRouter[T any]() *Router[T] {
	return &Router[T]{}
}

// Handle registers a handler for a pattern. Registering the same
// matching shape twice leaves the first registration reachable only
// via tie-break; use Validate to detect such tables.
func (r *Router[T]) Handle(pattern string, handler Handler[T]) {
	r.entries = append(r.entries, routeEntry[T]{
		pattern: Compile(pattern),
		handler: handler,
	})
}

// Patterns returns the registered pattern strings in registration order.
func (r *Router[T]) Patterns() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.pattern.Raw
	}
	return out
}

// Len returns the number of registered routes.
func (r *Router[T]) Len() int {
	return len(r.entries)
}

// Validate checks the route table for conflicts. See Validator.
func (r *Router[T]) Validate() error {
	v := NewValidator(r.Patterns())
	return v.Validate()
}

// Match resolves a location against the route table.
//
// The location is split on "/" and every registered pattern is tested
// for compatibility; among the compatible ones the most specific wins
// (see the package documentation for the precedence rules). The match
// consumes Pattern.Length leading segments: MatchedPath is the joined
// consumed prefix and Rest is the "/"-rooted remainder handed to
// sub-routing. Rest always begins with "/", even when nothing is left.
//
// Match is pure: it has no side effects and is safe to call
// concurrently on an immutable table.
func (r *Router[T]) Match(location string) (*Match[T], error) {
	parts := splitLocation(location)

	var best *routeEntry[T]
	for i := range r.entries {
		e := &r.entries[i]
		if !e.pattern.compatible(parts) {
			continue
		}
		if best == nil || outranks(e.pattern, best.pattern, len(parts)) {
			best = e
		}
	}

	if best == nil {
		return nil, &NoMatchError{Location: location}
	}

	consumed := best.pattern.Length
	joined := consumed
	if joined > len(parts) {
		joined = len(parts)
	}

	rest := "/"
	if consumed < len(parts) {
		rest = "/" + strings.Join(parts[consumed:], "/")
	}

	return &Match[T]{
		Pattern:     best.pattern,
		Handler:     best.handler,
		Params:      best.pattern.bindParams(parts),
		Consumed:    consumed,
		MatchedPath: strings.Join(parts[:joined], "/"),
		Rest:        rest,
	}, nil
}

// Match is the result of resolving a location against a Router.
type Match[T any] struct {
	// Pattern is the winning compiled pattern.
	Pattern *Pattern

	// Handler is the handler registered for Pattern.
	Handler Handler[T]

	// Params are the named captures bound from the location.
	Params Params

	// Consumed is the number of leading location segments the match
	// consumed (the pattern's Length).
	Consumed int

	// MatchedPath is the consumed prefix of the location.
	MatchedPath string

	// Rest is the "/"-rooted unconsumed remainder.
	Rest string
}

// outranks reports whether pattern a beats pattern b for a location of
// locationLen segments. Position by position, a literal constraint
// outranks an in-range param, which outranks no constraint. Equal
// ranks prefer the pattern overshooting the location by fewer
// segments. A false result on full tie keeps the earlier registration.
func outranks(a, b *Pattern, locationLen int) bool {
	max := a.Length
	if b.Length > max {
		max = b.Length
	}
	for i := 0; i < max; i++ {
		ra, rb := a.rankAt(i, locationLen), b.rankAt(i, locationLen)
		if ra != rb {
			return ra > rb
		}
	}

	ovA, ovB := overshoot(a, locationLen), overshoot(b, locationLen)
	return ovA < ovB
}

// overshoot is how many segments the pattern would consume past the
// end of the location.
func overshoot(p *Pattern, locationLen int) int {
	if p.Length <= locationLen {
		return 0
	}
	return p.Length - locationLen
}
