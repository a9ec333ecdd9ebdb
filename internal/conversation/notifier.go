package conversation

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/nutribudget/internal/domain"
	"github.com/hammamikhairi/nutribudget/internal/logger"
)

var _ domain.Notifier = (*CLINotifier)(nil)

var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#22c55e")).
		Bold(true)
	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444")).
			Bold(true)
)

// Markers prefixed to notices.
const (
	OKMark   = "✓"
	FailMark = "✗"
)

// PrintFunc prints formatted output. Matches both fmt.Printf and
// display.UI.Printf.
type PrintFunc func(format string, a ...interface{})

// CLINotifier reports plan and export outcomes above the dashboard prompt.
type CLINotifier struct {
	log     *logger.Logger
	printFn PrintFunc
}

// NewCLINotifier creates a terminal notifier. If printFn is nil, lines go
// to stdout.
func NewCLINotifier(log *logger.Logger, printFn PrintFunc) *CLINotifier {
	if printFn == nil {
		printFn = func(format string, a ...interface{}) {
			fmt.Printf(format+"\n", a...)
		}
	}
	return &CLINotifier{log: log, printFn: printFn}
}

// Notify prints a success notice.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn("  %s", okStyle.Render(OKMark+" "+message))
	return nil
}

// NotifyUrgent prints a failure notice.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.printFn("  %s", failStyle.Render(FailMark+" "+message))
	return nil
}

// PlanFailed reports a failed plan request with the user-facing reason.
func (n *CLINotifier) PlanFailed(ctx context.Context, reason string) error {
	return n.NotifyUrgent(ctx, "Plan request failed: "+reason)
}

// Exported reports a written shopping list.
func (n *CLINotifier) Exported(ctx context.Context, items int, path string) error {
	noun := "items"
	if items == 1 {
		noun = "item"
	}
	return n.Notify(ctx, fmt.Sprintf("Saved %d %s to %s", items, noun, path))
}
