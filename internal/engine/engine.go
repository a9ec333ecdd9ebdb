// Package engine implements the plan request lifecycle state machine:
// Idle → Loading → Success | Failure, with a new submit re-entering
// Loading from any state.
//
// Overlapping submits are allowed. Each submit takes a generation number
// and only the outcome of the latest generation is applied; older
// outcomes are discarded.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/nutribudget/internal/domain"
	"github.com/hammamikhairi/nutribudget/internal/logger"
	"github.com/hammamikhairi/nutribudget/internal/planapi"
)

// Option configures the engine.
type Option func(*Engine)

// WithListener registers a function called after every applied
// transition. Listeners run on the goroutine that made the transition
// and must not call back into the engine's mutating methods.
func WithListener(fn func(domain.RequestState)) Option {
	return func(e *Engine) {
		e.listeners = append(e.listeners, fn)
	}
}

// WithClock overrides time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Ticket identifies one submit.
type Ticket struct {
	Generation uint64
	RequestID  string
	Request    domain.PlanRequest
}

// Engine owns the request state. All transitions go through Begin and
// Resolve. Safe for concurrent use.
type Engine struct {
	planner   domain.Planner
	store     domain.PlanStore
	log       *logger.Logger
	listeners []func(domain.RequestState)
	now       func() time.Time

	mu         sync.Mutex
	state      domain.RequestState
	last       *domain.PlanResponse
	generation uint64
}

// New creates an engine in the Idle state.
func New(planner domain.Planner, store domain.PlanStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		planner: planner,
		store:   store,
		log:     log,
		now:     time.Now,
		state:   domain.Idle(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current state.
func (e *Engine) State() domain.RequestState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Loading reports whether the latest submit is still in flight.
func (e *Engine) Loading() bool {
	return e.State().IsLoading()
}

// Plan returns the last successful plan, or nil. A later failure does not
// clear it: the dashboard keeps showing it under the error banner.
func (e *Engine) Plan() *domain.PlanResponse {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// Begin starts a new generation and enters Loading, dropping any
// previous failure message.
func (e *Engine) Begin(req domain.PlanRequest) Ticket {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.generation++
	t := Ticket{Generation: e.generation, RequestID: generateID(), Request: req}
	e.log.Info("submit #%d (%s) id=%s", t.Generation, req, t.RequestID)
	e.transition(domain.Loading())
	return t
}

// Resolve applies the outcome of the request identified by t. It returns
// false, changing nothing, when a newer submit has started since.
func (e *Engine) Resolve(ctx context.Context, t Ticket, plan *domain.PlanResponse, err error) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if t.Generation != e.generation {
		e.log.Debug("discarding stale response #%d (latest #%d)", t.Generation, e.generation)
		return false
	}

	if err == nil && plan == nil {
		err = &planapi.ServiceError{Message: planapi.EmptyPlanMessage}
	}
	if err != nil {
		e.log.Warn("submit #%d failed: %v", t.Generation, err)
		e.transition(domain.Failure(planapi.UserMessage(err)))
		return true
	}

	record := &domain.PlanRecord{
		RequestID:  t.RequestID,
		Request:    t.Request,
		Response:   plan,
		ReceivedAt: e.now(),
	}
	if serr := e.store.Save(ctx, record); serr != nil {
		e.log.Error("saving plan %s: %v", t.RequestID, serr)
	}

	e.log.Info("submit #%d ok: %d items, $%.2f", t.Generation, len(plan.Items), plan.Totals.TotalSpent)
	e.last = plan
	e.transition(domain.Success(plan))
	return true
}

// Submit runs one full request: Begin, exactly one planner call, Resolve.
// It blocks until the planner returns; callers that must stay responsive
// run it on its own goroutine. The returned state is the engine's state
// right after this call's outcome was handled, which for a superseded
// call is the newer request's state.
func (e *Engine) Submit(ctx context.Context, req domain.PlanRequest) domain.RequestState {
	t := e.Begin(req)
	plan, err := e.planner.Plan(domain.WithRequestID(ctx, t.RequestID), req)
	e.Resolve(ctx, t, plan, err)
	return e.State()
}

// Reset returns to Idle and forgets the current plan and session history.
// Any in-flight request is invalidated.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.generation++
	e.last = nil
	e.transition(domain.Idle())
	if err := e.store.Clear(ctx); err != nil {
		return err
	}
	e.log.Info("session reset")
	return nil
}

// transition sets the state and tells listeners. Callers hold e.mu, so
// listeners observe transitions in the order they were applied.
func (e *Engine) transition(state domain.RequestState) {
	e.state = state
	for _, fn := range e.listeners {
		fn(state)
	}
}
