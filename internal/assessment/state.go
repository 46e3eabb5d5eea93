package assessment

// State is the engine's position in the assessment lifecycle.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateReady         State = "ready"       // catalog loaded, no answers
	StateInProgress    State = "in-progress" // at least one answer recorded
	StateComplete      State = "complete"    // finalized with every question answered
)

func (s State) String() string { return string(s) }
