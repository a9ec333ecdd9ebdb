package domain

import "context"

// Planner produces a plan for a request. The production implementation is
// the HTTP client for the remote planning service.
type Planner interface {
	Plan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}

// PlanStore keeps the successful plans of the current session. Nothing
// outlives the process.
type PlanStore interface {
	Save(ctx context.Context, record *PlanRecord) error
	Latest(ctx context.Context) (*PlanRecord, error)
	List(ctx context.Context) ([]*PlanRecord, error)
	Clear(ctx context.Context) error
}

// Notifier delivers messages to the user. Implementations can write to
// the terminal scrollback or anywhere else.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

type requestIDKey struct{}

// WithRequestID returns a context carrying the id of the plan request
// being made, so transports can forward it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id stored by WithRequestID, if any.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// IntentParser turns a prompt line into an intent.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}
