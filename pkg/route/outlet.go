package route

import (
	"time"

	"github.com/wayfind-dev/wayfind/pkg/reactive"
)

// LocationSource is the collaborator contract the reactive router
// needs from a location host binding: a current-value read with
// subscribe-to-changes capability, and an absolute-path navigation
// effect. pkg/history provides the concrete bindings.
//
// The signal is expected to follow a single-writer contract: only the
// host subscription writes it, any number of outlets read it.
type LocationSource interface {
	// Location returns the live location signal.
	Location() *reactive.Signal[string]

	// Navigate asks the host to move to an absolute path.
	Navigate(path string)
}

// Outlet drives a Router from a LocationSource. Every location push
// triggers exactly one synchronous re-evaluation: the location is
// matched, the winning handler runs in a freshly descended context,
// and the handler's value is published on Result. A failed match
// leaves Result untouched and publishes the error on Err instead.
type Outlet[T any] struct {
	router *Router[T]
	source LocationSource

	result  *reactive.Signal[T]
	lastErr *reactive.Signal[error]

	observers []Observer
	effect    *reactive.Effect
}

// OutletOption configures Bind.
type OutletOption func(*outletConfig)

type outletConfig struct {
	observers []Observer
}

// WithObserver attaches an evaluation observer to the outlet.
func WithObserver(obs Observer) OutletOption {
	return func(c *outletConfig) {
		c.observers = append(c.observers, obs)
	}
}

// Bind attaches a router to a location source and performs the initial
// evaluation before returning. The returned Outlet keeps re-evaluating
// until disposed. There is no cross-evaluation state: a stale result
// is simply superseded by the next one.
func Bind[T any](r *Router[T], source LocationSource, opts ...OutletOption) *Outlet[T] {
	var cfg outletConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	o := &Outlet[T]{
		router:    r,
		source:    source,
		result:    reactive.NewSignal(zero),
		lastErr:   reactive.NewSignal[error](nil),
		observers: cfg.observers,
	}

	o.effect = reactive.NewEffect(func() reactive.Cleanup {
		o.evaluate()
		return nil
	})

	return o
}

// evaluate runs one match cycle for the current location.
func (o *Outlet[T]) evaluate() {
	root := NewContext(o.source.Location(), o.source.Navigate)

	start := time.Now()
	m, err := o.router.Match(root.Location.Get())
	duration := time.Since(start)

	ev := Evaluation{
		Location: root.Location.Peek(),
		Matched:  err == nil,
		Duration: duration,
	}
	if err == nil {
		ev.Pattern = m.Pattern.Raw
	}
	// Observers run untracked for the same reason handlers do: signals
	// they read must not subscribe the outlet's effect.
	reactive.Untracked(func() {
		for _, obs := range o.observers {
			obs.ObserveEvaluation(ev)
		}
	})

	if err != nil {
		o.lastErr.Set(err)
		return
	}

	// Handler runs untracked: signals it reads are its own business,
	// only the location drives re-evaluation.
	var value T
	reactive.Untracked(func() {
		value = m.Handler(Descend(root, m.MatchedPath, m.Rest, m.Params))
	})

	o.result.Set(value)
	o.lastErr.Set(nil)
}

// Result is the signal of handler results, updated per evaluation.
func (o *Outlet[T]) Result() *reactive.Signal[T] {
	return o.result
}

// Err is the signal of the latest evaluation error. nil after a
// successful evaluation; a *NoMatchError after a failed one.
func (o *Outlet[T]) Err() *reactive.Signal[error] {
	return o.lastErr
}

// Dispose stops the outlet. Result and Err keep their last values.
func (o *Outlet[T]) Dispose() {
	o.effect.Dispose()
}
