package planapi

import (
	"errors"
	"fmt"
)

// GenericConnectMessage is shown when a transport error has no message.
const GenericConnectMessage = "Failed to connect to backend"

// EmptyPlanMessage is shown when a 2xx response carries no plan.
const EmptyPlanMessage = "Server returned an empty plan"

// NetworkError means no response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return GenericConnectMessage
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServiceError means the service answered but not with a usable plan:
// either a non-2xx status or a body that did not decode. Message is the
// service's own wording when it sent one.
type ServiceError struct {
	Status  int
	Message string
	Err     error // decode error, if any
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Server error: %d", e.Status)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// UserMessage words any error from Plan for display.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Error()
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return GenericConnectMessage
}
