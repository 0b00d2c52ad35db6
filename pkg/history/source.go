package history

import "github.com/wayfind-dev/wayfind/pkg/reactive"

// Source adapts one host binding into the LocationSource contract the
// router consumes: a live location signal plus a navigation effect.
// The signal has a single writer, the host subscription; navigation
// goes through the host and comes back as a subscription update.
type Source struct {
	binding Binding
	mode    Mode
	loc     *reactive.Signal[string]
	cancel  func()
}

// NewSource binds a host in the given mode. It fails with a
// *ConfigurationError when the host cannot serve the mode; this is a
// fatal setup condition, callers should not retry.
func NewSource(host Host, mode Mode) (*Source, error) {
	binding, err := host.Binding(mode)
	if err != nil {
		return nil, &ConfigurationError{Mode: mode, Err: err}
	}

	s := &Source{
		binding: binding,
		mode:    mode,
		loc:     reactive.NewSignal(binding.Current()),
	}
	s.cancel = binding.Subscribe(func(path string) {
		s.loc.Set(path)
	})
	// A push landing between the initial read and the subscription
	// would otherwise never reach the signal.
	s.loc.Set(binding.Current())

	return s, nil
}

// Location returns the live location signal.
func (s *Source) Location() *reactive.Signal[string] {
	return s.loc
}

// Navigate pushes an absolute path onto the host history.
func (s *Source) Navigate(path string) {
	s.binding.Push(path)
}

// Replace swaps the current host history entry for path.
func (s *Source) Replace(path string) {
	s.binding.Replace(path)
}

// Mode returns the navigation mode this source was bound with.
func (s *Source) Mode() Mode {
	return s.mode
}

// Close detaches the source from the host. The signal keeps its last
// value; no further updates arrive.
func (s *Source) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
