package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/nutribudget/internal/animate"
	"github.com/hammamikhairi/nutribudget/internal/breakdown"
	"github.com/hammamikhairi/nutribudget/internal/domain"
	"github.com/hammamikhairi/nutribudget/internal/meals"
	"github.com/hammamikhairi/nutribudget/internal/metrics"
)

// chartWidth is the number of cells a full breakdown bar occupies.
const chartWidth = 20

// HelpText lists the prompt commands.
const HelpText = `Commands:
  budget <n>            set the budget in dollars
  people <n>            set how many people to feed
  diet <veg|non_veg|vegan>
  goal <balanced|high_protein|low_sugar>
  plan [b p diet goal]  generate a plan (alias: go)
  basket                list the basket
  charts                category and processing breakdowns
  meals                 sample day of meals
  stores                stores in the basket
  export                save the shopping list
  history               plans generated this session
  form                  show the current request
  reset                 clear the plan and history
  help, quit`

func money(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// FormLine renders a request as one line.
func FormLine(req domain.PlanRequest) string {
	people := "people"
	if req.People == 1 {
		people = "person"
	}
	return fmt.Sprintf("$%d · %d %s · %s · %s", req.Budget, req.People, people, req.DietType.Label(), req.Goal.Label())
}

// TotalsLine renders the animated totals.
func TotalsLine(v animate.Values) string {
	return fmt.Sprintf("Cost %s   Calories %s   Protein %sg",
		money(v.Cost),
		decimal.NewFromFloat(v.Calories).StringFixed(0),
		decimal.NewFromFloat(v.Protein).StringFixed(1))
}

// ValueLine renders protein-per-dollar and the savings badge, if any.
func ValueLine(s metrics.Summary) string {
	line := fmt.Sprintf("%.1fg protein per dollar", s.ProteinPerDollar)
	if s.Savings != nil {
		line += fmt.Sprintf(" · You saved %s (%s%% less)", money(s.Savings.Amount), trimFloat(s.Savings.Percentage))
	}
	return line
}

// ChartLines renders the first revealed bars of chart.
func ChartLines(c breakdown.Chart, revealed int) []string {
	lines := []string{c.Title}
	if c.Empty {
		return append(lines, "  "+breakdown.Placeholder)
	}

	labelW := 0
	for _, b := range c.Bars {
		if n := len([]rune(b.Label)); n > labelW {
			labelW = n
		}
	}
	for i, b := range c.Bars {
		if i >= revealed {
			break
		}
		filled := int(math.Round(b.Width / 100 * chartWidth))
		bar := strings.Repeat("█", filled) + strings.Repeat("░", chartWidth-filled)
		lines = append(lines, fmt.Sprintf("  %-*s %s %d items", labelW, b.Label, bar, b.Count))
	}
	return lines
}

// RenderCharts renders every chart fully revealed.
func RenderCharts(charts []breakdown.Chart) string {
	var blocks []string
	for _, c := range charts {
		blocks = append(blocks, strings.Join(ChartLines(c, len(c.Bars)), "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// RenderBasket lists basket items in order.
func RenderBasket(items []domain.BasketItem) string {
	if len(items) == 0 {
		return "The basket is empty."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Basket (%d items)\n", len(items))
	for i, it := range items {
		fmt.Fprintf(&b, "  %2d. %-30s %-14s %s %-6s %8s",
			i+1, it.Name, it.Store, trimFloat(it.QuantityUnits), it.Unit, money(it.EstimatedCost))
		if it.NutriScore != 0 {
			fmt.Fprintf(&b, "  nutri %s", trimFloat(it.NutriScore))
		}
		if i < len(items)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderMeals renders meal suggestions for a plan.
func RenderMeals(items []domain.BasketItem, dietType string) string {
	ms := meals.Suggest(items, dietType)
	if len(ms) == 0 {
		return "No meal suggestions without a basket."
	}
	var b strings.Builder
	b.WriteString("Sample Day Meals\n")
	for _, m := range ms {
		fmt.Fprintf(&b, "  %s %s\n", m.Icon, m.Time)
		for _, it := range m.Items {
			fmt.Fprintf(&b, "     • %s\n", it)
		}
	}
	b.WriteString("  * " + meals.Note(dietType))
	return b.String()
}

// RenderStores lists the distinct stores with a map search link each.
func RenderStores(stores []string) string {
	if len(stores) == 0 {
		return "No stores in the basket."
	}
	var b strings.Builder
	b.WriteString("Local Shopper")
	for _, s := range stores {
		fmt.Fprintf(&b, "\n  %s\n    %s", s, metrics.StoreSearchURL(s))
	}
	return b.String()
}

// RenderHistory lists session plans, newest first.
func RenderHistory(records []*domain.PlanRecord) string {
	if len(records) == 0 {
		return "No plans yet this session."
	}
	var b strings.Builder
	b.WriteString("Plans this session")
	for i, r := range records {
		spent, items := 0.0, 0
		if r.Response != nil {
			spent, items = r.Response.Totals.TotalSpent, len(r.Response.Items)
		}
		fmt.Fprintf(&b, "\n  %d. %s  %s  %d items, %s",
			i+1, r.ReceivedAt.Format("15:04:05"), r.Request, items, money(spent))
	}
	return b.String()
}

// RenderSummary renders a plan as plain text, everything fully shown.
func RenderSummary(plan *domain.PlanResponse) string {
	if plan == nil {
		return "No plan."
	}
	s := metrics.Summarize(plan)

	var b strings.Builder
	b.WriteString(TotalsLine(animate.Target(plan.Totals)))
	fmt.Fprintf(&b, "\nBudget    %s of %s (%s)", money(plan.Totals.TotalSpent), money(plan.Totals.Budget), s.BudgetUsed.Label)
	fmt.Fprintf(&b, "\nCalories  %s of %s (%s)", trimFloat(plan.Coverage.Calories.Actual), trimFloat(plan.Coverage.Calories.Target), s.Calories.Label)
	fmt.Fprintf(&b, "\nProtein   %sg of %sg (%s)", trimFloat(plan.Coverage.Protein.Actual), trimFloat(plan.Coverage.Protein.Target), s.Protein.Label)
	fmt.Fprintf(&b, "\nFiber     %sg", trimFloat(plan.Totals.Fiber))
	b.WriteString("\n" + ValueLine(s))
	b.WriteString("\n\n" + RenderBasket(plan.Items))
	b.WriteString("\n\n" + RenderCharts(breakdown.Charts(plan)))
	return b.String()
}

func trimFloat(v float64) string {
	return decimal.NewFromFloat(v).String()
}
