package element

import "time"

// Observer receives lifecycle telemetry from instances.
type Observer interface {
	// Transition is called after an instance changes state.
	Transition(tag string, from, to State)

	// Rendered is called after a render pass was handed to the root.
	Rendered(tag string, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) Transition(string, State, State) {}
func (nopObserver) Rendered(string, time.Duration)  {}
