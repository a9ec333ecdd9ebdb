package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/nutribudget/internal/animate"
	"github.com/hammamikhairi/nutribudget/internal/breakdown"
	"github.com/hammamikhairi/nutribudget/internal/config"
	"github.com/hammamikhairi/nutribudget/internal/conversation"
	"github.com/hammamikhairi/nutribudget/internal/display"
	"github.com/hammamikhairi/nutribudget/internal/domain"
	"github.com/hammamikhairi/nutribudget/internal/engine"
	"github.com/hammamikhairi/nutribudget/internal/export"
	"github.com/hammamikhairi/nutribudget/internal/form"
	"github.com/hammamikhairi/nutribudget/internal/logger"
	"github.com/hammamikhairi/nutribudget/internal/metrics"
	"github.com/hammamikhairi/nutribudget/internal/planapi"
	"github.com/hammamikhairi/nutribudget/internal/storage"
)

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, closeLog := setupLogger(cfg.Logging)
	defer closeLog()

	// Cancelled when the UI quits.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	ui := display.NewUI()
	store := storage.NewMemoryStore(log.Named("store"), cfg.History.Capacity)
	presenter := animate.New(log.Named("animate"),
		animate.WithDuration(cfg.Animation.Duration()),
		animate.WithFrameInterval(cfg.Animation.FrameInterval()),
	)
	defer presenter.Stop()

	f := form.New()
	if err := f.Apply(cfg.Form.Fields()); err != nil {
		return fmt.Errorf("form defaults: %w", err)
	}

	notifier := conversation.NewCLINotifier(log, ui.Printf)
	eng := engine.New(newPlanner(cfg, log), store, log.Named("engine"),
		engine.WithListener(func(s domain.RequestState) {
			ui.SetState(s)
			switch s.Kind {
			case domain.StateSuccess:
				ui.SetPlan(s.Plan)
				presenter.Retarget(&s.Plan.Totals, ui.SetFrame)
			case domain.StateFailure:
				_ = notifier.PlanFailed(ctx, s.Message)
			case domain.StateIdle:
				ui.SetPlan(nil)
				presenter.Retarget(nil, ui.SetFrame)
			}
		}),
	)

	app := &dashboard{
		engine:   eng,
		parser:   conversation.NewKeywordParser(log.Named("parser")),
		notifier: notifier,
		form:     f,
		exporter: export.NewExporter(afero.NewOsFs(), cfg.Export.Dir, log.Named("export")),
		store:    store,
		log:      log,
		ui:       ui,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		if !ui.WaitReady() {
			return
		}
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
	// The input loop may be mid-command; no submit starts once it is gone.
	<-loopDone
	app.wait()
	return nil
}

// newPlanner builds the planning service client from the config.
func newPlanner(cfg *config.Config, log *logger.Logger) *planapi.Client {
	return planapi.NewClient(cfg.API.Base, log.Named("planapi"),
		planapi.WithHTTPTimeout(cfg.API.Timeout()),
	)
}

type dashboard struct {
	engine   *engine.Engine
	parser   domain.IntentParser
	notifier *conversation.CLINotifier
	form     *form.Form
	exporter *export.Exporter
	store    domain.PlanStore
	log      *logger.Logger
	ui       *display.UI

	inflight sync.WaitGroup
}

func (a *dashboard) run(ctx context.Context) {
	a.ui.SetForm(a.form.Request())
	a.ui.SetState(a.engine.State())

	uiCh := a.ui.InputChan()
	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		if !a.handleIntent(ctx, intent) {
			return
		}
	}
}

// handleIntent runs one command. It returns false when the user quits.
func (a *dashboard) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentSetBudget:
		a.form.SetBudget(intent.Payload)
		a.formChanged()
	case domain.IntentSetPeople:
		a.form.SetPeople(intent.Payload)
		a.formChanged()
	case domain.IntentSetDiet:
		if err := a.form.SetDiet(intent.Payload); err != nil {
			a.ui.PrintUrgent(err.Error())
			return true
		}
		a.formChanged()
	case domain.IntentSetGoal:
		if err := a.form.SetGoal(intent.Payload); err != nil {
			a.ui.PrintUrgent(err.Error())
			return true
		}
		a.formChanged()
	case domain.IntentSubmit:
		a.submit(ctx, intent.Payload)
	case domain.IntentExport:
		a.export(ctx)
	case domain.IntentBasket:
		if plan := a.plan(); plan != nil {
			a.ui.PrintBlock(display.RenderBasket(plan.Items))
		}
	case domain.IntentCharts:
		if plan := a.plan(); plan != nil {
			a.ui.PrintBlock(display.RenderCharts(breakdown.Charts(plan)))
		}
	case domain.IntentMeals:
		if plan := a.plan(); plan != nil {
			diet := plan.Inputs.DietType
			if diet == "" {
				diet = string(a.form.Request().DietType)
			}
			a.ui.PrintBlock(display.RenderMeals(plan.Items, diet))
		}
	case domain.IntentStores:
		if plan := a.plan(); plan != nil {
			a.ui.PrintBlock(display.RenderStores(metrics.Stores(plan.Items)))
		}
	case domain.IntentHistory:
		records, err := a.store.List(ctx)
		if err != nil {
			a.log.Error("listing plans: %v", err)
			return true
		}
		a.ui.PrintBlock(display.RenderHistory(records))
	case domain.IntentForm:
		a.ui.PrintChat(display.FormLine(a.form.Request()))
	case domain.IntentReset:
		if err := a.engine.Reset(ctx); err != nil {
			a.log.Error("reset: %v", err)
		}
		a.ui.PrintHint("Cleared the plan and session history.")
	case domain.IntentHelp:
		a.ui.PrintBlock(display.HelpText)
	case domain.IntentQuit:
		a.ui.PrintChat("Bye!")
		return false
	default:
		a.ui.PrintHint("Unknown command. Type 'help' for the list.")
	}
	return true
}

func (a *dashboard) formChanged() {
	req := a.form.Request()
	a.ui.SetForm(req)
	a.ui.PrintHint(display.FormLine(req))
}

// plan returns the current plan, telling the user when there is none.
func (a *dashboard) plan() *domain.PlanResponse {
	plan := a.engine.Plan()
	if plan == nil {
		a.ui.PrintHint("No plan yet. Type 'plan' to generate one.")
	}
	return plan
}

// submit applies inline fields and sends the request in the background
// so the prompt stays responsive. Later submits supersede earlier ones.
func (a *dashboard) submit(ctx context.Context, payload string) {
	if payload != "" {
		if err := a.form.Apply(conversation.InlineFields(payload)); err != nil {
			a.ui.PrintUrgent(err.Error())
			return
		}
	}
	req := a.form.Request()
	a.ui.SetForm(req)
	if ctx.Err() != nil {
		return
	}

	a.inflight.Add(1)
	go func() {
		defer a.inflight.Done()
		a.engine.Submit(ctx, req)
	}()
}

func (a *dashboard) export(ctx context.Context) {
	plan := a.engine.Plan()
	path, err := a.exporter.Export(plan)
	switch {
	case errors.Is(err, domain.ErrNoPlan):
		a.ui.PrintHint("No plan yet. Type 'plan' to generate one.")
	case errors.Is(err, domain.ErrEmptyBasket):
		a.ui.PrintHint("The basket is empty, nothing to export.")
	case err != nil:
		a.log.Error("export: %v", err)
		_ = a.notifier.NotifyUrgent(ctx, "Could not save the shopping list.")
	default:
		_ = a.notifier.Exported(ctx, len(plan.Items), path)
	}
}

// wait blocks until background submits have returned.
func (a *dashboard) wait() {
	a.inflight.Wait()
}
