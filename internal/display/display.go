// Package display provides the terminal dashboard using Bubble Tea.
//
// The [UI] type manages a live plan panel and an input prompt at the
// bottom of the terminal. All application output is printed above the
// rendered area via Program.Println / Printf, so concurrent writes never
// garble the display. Plan state, animation frames and form changes
// reach the panel as messages through Program.Send.
package display

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/nutribudget/internal/animate"
	"github.com/hammamikhairi/nutribudget/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d399")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fecaca")).
				Background(lipgloss.Color("#7f1d1d")).
				Padding(0, 1)

	savingsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	chartStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#67e8f9"))

	// BannerStyle is the muted slate used for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

// promptText is plain so textinput's width math stays correct; styled
// prompts add invisible ANSI bytes.
const promptText = "nutri> "

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may safely
// call the print and Set methods and read from [UI.InputChan] at any
// time after [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	done    atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI() *UI {
	return &UI{
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// Println prints a line above the prompt. Thread-safe. Falls back to
// fmt.Println when the program is not running.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt on its own line.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format+"\n", a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// send delivers msg to the model. Dropped when the program is not running.
func (u *UI) send(msg tea.Msg) {
	if u.program != nil && !u.done.Load() {
		u.program.Send(msg)
	}
}

// SetState shows the request lifecycle state in the panel.
func (u *UI) SetState(s domain.RequestState) { u.send(stateMsg{state: s}) }

// SetPlan replaces the plan behind the panel; nil clears it.
func (u *UI) SetPlan(p *domain.PlanResponse) { u.send(planMsg{plan: p}) }

// SetFrame shows one animation frame of the totals.
func (u *UI) SetFrame(v animate.Values) { u.send(frameMsg(v)) }

// SetForm shows the request the next submit will send.
func (u *UI) SetForm(req domain.PlanRequest) { u.send(formMsg{req: req}) }

// ── Styled print helpers ─────────────────────────────────────────

// PrintChat prints a conversational line.
func (u *UI) PrintChat(text string) {
	u.Println(chatStyle.Render("  " + text))
}

// PrintBlock prints a multi-line block in the primary colour.
func (u *UI) PrintBlock(text string) {
	u.Println(primaryStyle.Render(indent(text)))
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints an error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintUserInput echoes the user's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("nutri") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// WaitReady blocks until the Bubble Tea event loop is running. It
// returns false if Run ended first.
func (u *UI) WaitReady() bool {
	select {
	case <-u.readyCh:
		return true
	case <-u.quitCh:
		return false
	}
}

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	m := newModel(u.inputCh, u.readyCh, func(v string) {
		u.PrintUserInput(v)
	})

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = promptText
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Placeholder = "type help"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60 // updated on first WindowSizeMsg
	return ti
}

func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#34d399"))),
	)
}

func newGauge() progress.Model {
	return progress.New(
		progress.WithGradient("#10b981", "#06b6d4"),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)
}
