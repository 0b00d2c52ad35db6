// Package reactive provides the small push-based reactive core that
// wayfind's router is built on.
//
// Signal[T] is a reactive value container:
//
//	loc := reactive.NewSignal("/")
//	value := loc.Get()  // Read (subscribes current listener)
//	loc.Set("/users")   // Write (notifies subscribers)
//
// Effect re-runs whenever a signal it read during its last run changes:
//
//	reactive.NewEffect(func() reactive.Cleanup {
//	    fmt.Println("location is", loc.Get())
//	    return nil
//	})
//
// Dependencies are tracked automatically: reading a signal inside an
// effect body subscribes that effect, and subscriptions are rebuilt on
// every run. Batch coalesces notifications for multiple writes.
//
// The intended usage is single-producer: one writer (a location host
// subscription) updates a signal, any number of readers observe it.
// The primitives are nevertheless safe for concurrent use.
package reactive
