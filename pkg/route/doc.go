// Package route implements wayfind's declarative path router.
//
// A Router maps route patterns to handlers. Patterns are "/"-separated
// strings; a segment beginning with ":" captures the location segment
// at that position under the given name, and the bare pattern "*"
// matches any location by consuming a single segment:
//
//	r := route.NewRouter[string]()
//	r.Handle("/users/:id", func(ctx *route.Context) string {
//	    return "user " + ctx.Params["id"]
//	})
//	r.Handle("*", func(ctx *route.Context) string { return "fallback" })
//
// Matching is prefix-based: a pattern only constrains as many leading
// location segments as it has, and the unconsumed remainder is handed
// to the matched handler as a "/"-rooted rest path. Handlers can route
// that remainder with their own Router, composing recursively:
//
//	r.Handle("/app", func(ctx *route.Context) string {
//	    sub := route.NewRouter[string]()
//	    sub.Handle("/dashboard", dashboard)
//	    out, err := route.Dispatch(sub, ctx)
//	    ...
//	})
//
// # Precedence
//
// When several patterns are compatible with a location, the winner is
// chosen by specificity, not registration order: comparing position by
// position, a literal segment outranks a parameter, and a parameter
// that actually lies within the location outranks no constraint at
// all. Among otherwise equal candidates the pattern that overshoots
// the location by fewer segments wins, and remaining ties fall back to
// registration order. Registering "*" first therefore never hides a
// more specific pattern.
//
// # Reactive evaluation
//
// Bind attaches a Router to a LocationSource (see pkg/history). The
// resulting Outlet re-runs the match once per location change and
// publishes handler results on a signal:
//
//	outlet := route.Bind(r, source)
//	current := outlet.Result().Get()
//
// Locations are assumed to be pre-normalized plain path strings: no
// query string, no fragment prefix, no percent-decoding is performed.
package route
