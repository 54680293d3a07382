package domain

// State is the lifecycle state of a single disable job.
type State int

const (
	StatePending State = iota
	StateRequesting
	StateSucceeded
	StateFailed
	StateHalted
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateRequesting:
		return "Requesting"
	case StateSucceeded:
		return "Succeeded"
	case StateFailed:
		return "Failed"
	case StateHalted:
		return "Halted"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateHalted
}

// CanTransition reports whether a job may move from s to next.
// Halted is reachable only before the request has completed.
func (s State) CanTransition(next State) bool {
	switch s {
	case StatePending:
		return next == StateRequesting || next == StateHalted
	case StateRequesting:
		return next == StateSucceeded || next == StateFailed || next == StateHalted
	default:
		return false
	}
}
