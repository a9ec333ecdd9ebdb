// Package animate eases the dashboard's headline totals toward each new
// plan. One background task runs at a time; retargeting or stopping the
// presenter revokes it before it can emit again.
package animate

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/nutribudget/internal/domain"
	"github.com/hammamikhairi/nutribudget/internal/logger"
)

const (
	DefaultDuration      = 700 * time.Millisecond
	DefaultFrameInterval = 16 * time.Millisecond
)

// Display precision per channel.
const (
	costPlaces     = 2
	caloriesPlaces = 0
	proteinPlaces  = 1
)

// Values are the three animated totals as currently displayed.
type Values struct {
	Cost     float64
	Calories float64
	Protein  float64
}

// Target rounds totals to display precision.
func Target(t domain.PlanTotals) Values {
	return Values{
		Cost:     round(t.TotalSpent, costPlaces),
		Calories: round(t.Calories, caloriesPlaces),
		Protein:  round(t.Protein, proteinPlaces),
	}
}

// Ease is the symmetric ease-in-out curve over t in [0,1].
func Ease(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 2 * t * t
	default:
		u := 1 - t
		return 1 - 2*u*u
	}
}

// Interpolate returns the displayed values at progress t.
func Interpolate(from, to Values, t float64) Values {
	e := Ease(t)
	return Values{
		Cost:     round(from.Cost+(to.Cost-from.Cost)*e, costPlaces),
		Calories: round(from.Calories+(to.Calories-from.Calories)*e, caloriesPlaces),
		Protein:  round(from.Protein+(to.Protein-from.Protein)*e, proteinPlaces),
	}
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Option configures the presenter.
type Option func(*Presenter)

// WithDuration sets how long one animation runs.
func WithDuration(d time.Duration) Option {
	return func(p *Presenter) {
		p.duration = d
	}
}

// WithFrameInterval sets the delay between frames.
func WithFrameInterval(d time.Duration) Option {
	return func(p *Presenter) {
		p.frameInterval = d
	}
}

// Presenter owns the displayed totals. Safe for concurrent use.
type Presenter struct {
	log           *logger.Logger
	duration      time.Duration
	frameInterval time.Duration

	mu        sync.Mutex
	displayed Values
	task      uint64
	cancel    context.CancelFunc
}

// New creates a presenter showing zeros.
func New(log *logger.Logger, opts ...Option) *Presenter {
	p := &Presenter{
		log:           log,
		duration:      DefaultDuration,
		frameInterval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.frameInterval <= 0 {
		p.frameInterval = DefaultFrameInterval
	}
	return p
}

// Displayed returns the values currently shown.
func (p *Presenter) Displayed() Values {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.displayed
}

// Retarget starts animating from the displayed values toward totals,
// calling onFrame with each frame and finally with the exact rounded
// target. A nil totals resets to zero at once and emits that single frame.
// onFrame runs with the presenter locked and must not call back into it.
func (p *Presenter) Retarget(totals *domain.PlanTotals, onFrame func(Values)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.revoke()

	if totals == nil {
		p.displayed = Values{}
		p.log.Debug("animation reset to zero")
		emit(onFrame, p.displayed)
		return
	}

	to := Target(*totals)
	from := p.displayed
	if p.duration <= 0 {
		p.displayed = to
		emit(onFrame, to)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.task++
	go p.run(ctx, p.task, from, to, time.Now(), onFrame)

	p.log.Debug("animation #%d: %+v -> %+v over %s", p.task, from, to, p.duration)
}

// Stop revokes any running animation, leaving the displayed values where
// they are.
func (p *Presenter) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.revoke()
}

// revoke cancels the current task. Callers hold p.mu.
func (p *Presenter) revoke() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.task++
}

func (p *Presenter) run(ctx context.Context, task uint64, from, to Values, start time.Time, onFrame func(Values)) {
	ticker := time.NewTicker(p.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			t := float64(now.Sub(start)) / float64(p.duration)
			done := t >= 1
			v := to
			if !done {
				v = Interpolate(from, to, t)
			}
			if !p.apply(task, v, onFrame) || done {
				return
			}
		}
	}
}

// apply publishes a frame if task is still current.
func (p *Presenter) apply(task uint64, v Values, onFrame func(Values)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if task != p.task {
		return false
	}
	p.displayed = v
	emit(onFrame, v)
	return true
}

func emit(onFrame func(Values), v Values) {
	if onFrame != nil {
		onFrame(v)
	}
}
