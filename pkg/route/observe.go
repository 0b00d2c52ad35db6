package route

import "time"

// Evaluation describes one outlet match cycle.
type Evaluation struct {
	// Location is the path that was evaluated.
	Location string

	// Pattern is the winning pattern's raw string. Empty on a miss.
	Pattern string

	// Matched reports whether a pattern was found.
	Matched bool

	// Duration is how long Match took.
	Duration time.Duration
}

// Observer receives a callback after every outlet evaluation. The core
// Match stays pure; observers only see outlet-level activity. Attach
// with WithObserver.
type Observer interface {
	ObserveEvaluation(ev Evaluation)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ev Evaluation)

// ObserveEvaluation implements Observer.
func (f ObserverFunc) ObserveEvaluation(ev Evaluation) {
	f(ev)
}
