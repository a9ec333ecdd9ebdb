package domain

// StateKind tags the active variant of a RequestState.
type StateKind int

const (
	StateIdle StateKind = iota
	StateLoading
	StateSuccess
	StateFailure
)

// String returns a human-readable state name.
func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// RequestState is the lifecycle of the latest plan request. Exactly one
// variant is active: Plan is set only for StateSuccess and Message only
// for StateFailure. Build values with the constructors below.
type RequestState struct {
	Kind    StateKind
	Plan    *PlanResponse
	Message string
}

// Idle is the state before anything was submitted.
func Idle() RequestState { return RequestState{Kind: StateIdle} }

// Loading is the state while a request is in flight.
func Loading() RequestState { return RequestState{Kind: StateLoading} }

// Success carries the plan returned by the service.
func Success(plan *PlanResponse) RequestState {
	return RequestState{Kind: StateSuccess, Plan: plan}
}

// Failure carries the message shown to the user.
func Failure(message string) RequestState {
	return RequestState{Kind: StateFailure, Message: message}
}

// IsLoading reports whether a request is in flight.
func (s RequestState) IsLoading() bool { return s.Kind == StateLoading }
