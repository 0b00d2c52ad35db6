// Package history provides the location hosts that feed wayfind's
// router. A Host owns the process's navigation state; a Source wraps
// one host binding into the live location signal plus navigation
// effect the router consumes.
//
//	host := history.NewMemoryHost("/")
//	src, err := history.NewSource(host, history.ModePath)
//	if err != nil {
//	    // the host cannot serve the requested mode; fatal at setup
//	}
//	outlet := route.Bind(router, src)
//
// Two navigation modes exist: ModePath routes the plain path and
// ModeHash routes the "#"-delimited fragment, read back as a
// "/"-rooted path. The router is indifferent to which one is active.
//
// The Source follows a single-writer contract: only the host
// subscription writes the location signal. Many independent router
// trees may read it.
package history
