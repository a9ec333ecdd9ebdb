package display

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/nutribudget/internal/animate"
	"github.com/hammamikhairi/nutribudget/internal/breakdown"
	"github.com/hammamikhairi/nutribudget/internal/domain"
	"github.com/hammamikhairi/nutribudget/internal/export"
	"github.com/hammamikhairi/nutribudget/internal/metrics"
)

// Messages.
type (
	stateMsg  struct{ state domain.RequestState }
	planMsg   struct{ plan *domain.PlanResponse }
	frameMsg  animate.Values
	formMsg   struct{ req domain.PlanRequest }
	revealMsg time.Time
)

type model struct {
	input   textinput.Model
	spinner spinner.Model
	gauge   progress.Model
	inputCh chan<- string
	readyCh chan struct{}
	echoFn  func(string) // prints user input into scrollback
	width   int
	now     func() time.Time

	req      domain.PlanRequest
	hasReq   bool
	state    domain.RequestState
	plan     *domain.PlanResponse
	summary  metrics.Summary
	charts   []breakdown.Chart
	chartsAt time.Time
	values   animate.Values
}

func newModel(inputCh chan<- string, readyCh chan struct{}, echoFn func(string)) model {
	return model{
		input:   newInput(),
		spinner: newSpinner(),
		gauge:   newGauge(),
		inputCh: inputCh,
		readyCh: readyCh,
		echoFn:  echoFn,
		now:     time.Now,
		state:   domain.Idle(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("NutriBudget"),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func revealCmd() tea.Cmd {
	return tea.Tick(breakdown.StaggerStep, func(t time.Time) tea.Msg {
		return revealMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) != "" {
				m.inputCh <- v
				// Echo from a Cmd so it runs outside Update.
				echoFn := m.echoFn
				return m, func() tea.Msg {
					echoFn(v)
					return nil
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > len(promptText) {
			m.input.Width = msg.Width - len(promptText)
		}
		m.gauge.Width = clampInt(msg.Width/3, 10, 40)
		return m, nil

	case stateMsg:
		wasLoading := m.state.IsLoading()
		m.state = msg.state
		title := "NutriBudget"
		switch m.state.Kind {
		case domain.StateLoading:
			title = "NutriBudget — planning…"
		case domain.StateFailure:
			title = "NutriBudget — error"
		}
		cmds := []tea.Cmd{tea.SetWindowTitle(title)}
		if m.state.IsLoading() && !wasLoading {
			cmds = append(cmds, m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !m.state.IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case planMsg:
		m.plan = msg.plan
		m.summary = metrics.Summarize(msg.plan)
		if msg.plan == nil {
			m.charts = nil
			return m, nil
		}
		m.charts = breakdown.Charts(msg.plan)
		m.chartsAt = m.now()
		return m, revealCmd()

	case revealMsg:
		if m.plan == nil || m.chartsDone() {
			return m, nil
		}
		return m, revealCmd()

	case frameMsg:
		m.values = animate.Values(msg)
		return m, nil

	case formMsg:
		m.req = msg.req
		m.hasReq = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) chartsDone() bool {
	elapsed := m.now().Sub(m.chartsAt)
	for _, c := range m.charts {
		if !c.Done(elapsed) {
			return false
		}
	}
	return true
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("NutriBudget"))
	if m.hasReq {
		b.WriteString("  " + labelStyle.Render(FormLine(m.req)))
	}
	b.WriteByte('\n')

	switch m.state.Kind {
	case domain.StateLoading:
		b.WriteString(m.spinner.View() + labelStyle.Render(" Generating plan…"))
		b.WriteByte('\n')
	case domain.StateFailure:
		b.WriteString(errorBannerStyle.Render("✗ " + m.state.Message))
		b.WriteByte('\n')
	}

	if m.plan != nil {
		b.WriteString(m.renderPlan())
	} else if m.state.Kind == domain.StateIdle {
		b.WriteString(labelStyle.Render("Set a budget and type plan to generate a basket."))
		b.WriteByte('\n')
	}

	// Blank line before prompt for visual separation.
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderPlan() string {
	var b strings.Builder

	b.WriteString(valueStyle.Render(TotalsLine(m.values)))
	b.WriteByte('\n')

	gauges := []struct {
		label string
		bar   metrics.Bar
	}{
		{"Calories", m.summary.Calories},
		{"Protein ", m.summary.Protein},
		{"Budget  ", m.summary.BudgetUsed},
	}
	for _, g := range gauges {
		b.WriteString(labelStyle.Render(g.label+" ") + m.gauge.ViewAs(g.bar.Width/100) + " " + g.bar.Label)
		b.WriteByte('\n')
	}

	b.WriteString(savingsStyle.Render(ValueLine(m.summary)))
	b.WriteByte('\n')

	elapsed := m.now().Sub(m.chartsAt)
	var cols []string
	for _, c := range m.charts {
		cols = append(cols, chartStyle.Render(strings.Join(ChartLines(c, c.Revealed(elapsed)), "\n")))
	}
	if len(cols) > 0 {
		b.WriteByte('\n')
		if m.width >= 100 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, withGap(cols)...))
		} else {
			b.WriteString(strings.Join(cols, "\n"))
		}
		b.WriteByte('\n')
	}

	if export.Available(m.plan) {
		b.WriteString(labelStyle.Render("Type export to save the shopping list."))
		b.WriteByte('\n')
	}
	return b.String()
}

// ── Helpers ──────────────────────────────────────────────────────

func withGap(cols []string) []string {
	out := make([]string, 0, len(cols)*2)
	for i, c := range cols {
		if i > 0 {
			out = append(out, "    ")
		}
		out = append(out, c)
	}
	return out
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func clampInt(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
