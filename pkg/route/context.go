package route

import "github.com/wayfind-dev/wayfind/pkg/reactive"

// NavigateFunc is the outbound navigation effect. It receives a fully
// prefixed absolute path and hands it to the host navigation primitive.
type NavigateFunc func(path string)

// Context is the router context a handler runs in. A fresh Context is
// built for every successful match and never shared across
// evaluations; the outer evaluation rebuilds the whole chain on the
// next location change.
type Context struct {
	// PrefixPath accumulates every path segment consumed by ancestor
	// matches. It is non-decreasing in length as routing descends and
	// is prepended to every navigation target, so navigation stays
	// absolute no matter how deep the match chain is.
	PrefixPath string

	// Location is the path this context routes. For a root context it
	// is the live location signal; for a descendant it is fixed to the
	// remainder left over by the parent match for this evaluation.
	Location *reactive.Signal[string]

	// Params are the captures bound by the match that produced this
	// context. Empty for a root context.
	Params Params

	navigate NavigateFunc
}

// NewContext builds a root context over a location signal. navigate
// may be nil for purely computational use (tests, validation tools).
func NewContext(location *reactive.Signal[string], navigate NavigateFunc) *Context {
	return &Context{
		PrefixPath: "",
		Location:   location,
		navigate:   navigate,
	}
}

// Descend derives the context for a matched handler: the child's
// prefix grows by the matched path and its location is pinned to the
// remainder. The child shares the parent's navigation effect, so
// Navigate from any depth still reaches the host.
func Descend(parent *Context, matchedPath, rest string, params Params) *Context {
	return &Context{
		PrefixPath: parent.PrefixPath + matchedPath,
		Location:   reactive.NewSignal(rest),
		Params:     params,
		navigate:   parent.navigate,
	}
}

// Href resolves a path relative to this context into an absolute one.
func (c *Context) Href(rel string) string {
	return c.PrefixPath + rel
}

// Navigate requests navigation to rel, interpreted relative to this
// context's accumulated prefix. No-op when the context has no
// navigation effect.
func (c *Context) Navigate(rel string) {
	if c.navigate == nil {
		return
	}
	c.navigate(c.Href(rel))
}

// Dispatch matches the context's current location against r and, on
// success, invokes the winning handler with the descended context.
// This is the recursive sub-routing step: a handler calls Dispatch on
// its own Router to route the remainder it was given.
func Dispatch[T any](r *Router[T], ctx *Context) (T, error) {
	m, err := r.Match(ctx.Location.Get())
	if err != nil {
		var zero T
		return zero, err
	}
	return m.Handler(Descend(ctx, m.MatchedPath, m.Rest, m.Params)), nil
}
