// Package export writes the current basket as a plain-text shopping list.
package export

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"

	"github.com/hammamikhairi/nutribudget/internal/domain"
	"github.com/hammamikhairi/nutribudget/internal/logger"
)

const (
	Title    = "NutriBudget Shopping List"
	rule     = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	filePerm = 0o644
	dirPerm  = 0o755
)

// Filename names the export for the UTC date of now.
func Filename(now time.Time) string {
	return fmt.Sprintf("nutribudget-shopping-list-%s.txt", now.UTC().Format("2006-01-02"))
}

// Document renders the shopping list. Items keep their basket order. It
// fails only when totals is nil.
func Document(items []domain.BasketItem, totals *domain.PlanTotals, now time.Time) (string, error) {
	if totals == nil {
		return "", domain.ErrNoTotals
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", Title)
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("1/2/2006"))
	fmt.Fprintf(&b, "Total Cost: $%s\n", money(totals.TotalSpent))
	fmt.Fprintf(&b, "Total Items: %d\n", len(items))
	fmt.Fprintf(&b, "%s\n\n", rule)

	for i, it := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, it.Name)
		fmt.Fprintf(&b, "   Store: %s\n", it.Store)
		fmt.Fprintf(&b, "   Qty: %s\n", number(it.QuantityUnits))
		fmt.Fprintf(&b, "   Price: $%s\n", money(it.EstimatedCost))
	}

	fmt.Fprintf(&b, "\n%s\nNUTRITION SUMMARY\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Total Calories: %s\n", number(totals.Calories))
	fmt.Fprintf(&b, "Total Protein: %sg\n", number(totals.Protein))
	fmt.Fprintf(&b, "Total Fiber: %sg\n", number(totals.Fiber))
	b.WriteString("\nHappy Shopping! 🛒\nPowered by NutriBudget\n")

	return b.String(), nil
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// Exporter writes shopping lists into a directory.
type Exporter struct {
	fs  afero.Fs
	dir string
	log *logger.Logger
	now func() time.Time
}

// NewExporter creates an exporter writing under dir on fs. An empty dir
// means the working directory.
func NewExporter(fs afero.Fs, dir string, log *logger.Logger, opts ...Option) *Exporter {
	if dir == "" {
		dir = "."
	}
	e := &Exporter{fs: fs, dir: dir, log: log, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Available reports whether plan has anything to export.
func Available(plan *domain.PlanResponse) bool {
	return plan != nil && len(plan.Items) > 0
}

// Export writes plan's shopping list and returns the file path.
func (e *Exporter) Export(plan *domain.PlanResponse) (string, error) {
	if plan == nil {
		return "", domain.ErrNoPlan
	}
	if len(plan.Items) == 0 {
		return "", domain.ErrEmptyBasket
	}

	now := e.now()
	doc, err := Document(plan.Items, &plan.Totals, now)
	if err != nil {
		return "", err
	}

	if err := e.fs.MkdirAll(e.dir, dirPerm); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(e.dir, Filename(now))
	if err := afero.WriteFile(e.fs, path, []byte(doc), filePerm); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	e.log.Info("exported %d items to %s", len(plan.Items), path)
	return path, nil
}
