// Package metrics derives display figures from a plan response. Everything
// here is a pure function of the response; nothing is recomputed that the
// service already decided, except ratios.
package metrics

import (
	"fmt"
	"math"
	"net/url"

	"github.com/hammamikhairi/nutribudget/internal/domain"
)

// Bar is one horizontal gauge: Width is the fill in [0,100], Label the
// unclamped percentage as shown next to it.
type Bar struct {
	Width   float64
	Percent float64
	Label   string
}

// Summary is everything the dashboard shows beside the animated totals.
type Summary struct {
	ProteinPerDollar float64
	Calories         Bar
	Protein          Bar
	Savings          *domain.Savings
	BudgetUsed       Bar
	Stores           []string
}

// ProteinPerDollar returns grams of protein per unit of spend, or 0 when
// nothing was spent.
func ProteinPerDollar(t domain.PlanTotals) float64 {
	if t.TotalSpent == 0 {
		return 0
	}
	v := t.Protein / t.TotalSpent
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// CoverageBar turns a service-computed coverage into a gauge. The fill is
// clamped, the label is not: 145 gives a full bar labelled "145%".
func CoverageBar(c domain.NutrientCoverage) Bar {
	return percentBar(c.Percentage)
}

// BudgetUsed is the share of the budget the basket spends. A zero budget
// yields an empty bar.
func BudgetUsed(t domain.PlanTotals) Bar {
	if t.Budget == 0 {
		return percentBar(0)
	}
	return percentBar(t.TotalSpent / t.Budget * 100)
}

// Stores lists the distinct non-empty store names in basket order.
func Stores(items []domain.BasketItem) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if it.Store == "" || seen[it.Store] {
			continue
		}
		seen[it.Store] = true
		out = append(out, it.Store)
	}
	return out
}

// StoreSearchURL links to a map search for a store.
func StoreSearchURL(store string) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", store+" grocery store")
	return "https://www.google.com/maps/search/?" + q.Encode()
}

// Summarize computes every derived figure for resp. A nil response gives
// the zero Summary.
func Summarize(resp *domain.PlanResponse) Summary {
	if resp == nil {
		return Summary{}
	}
	return Summary{
		ProteinPerDollar: ProteinPerDollar(resp.Totals),
		Calories:         CoverageBar(resp.Coverage.Calories),
		Protein:          CoverageBar(resp.Coverage.Protein),
		Savings:          resp.Savings,
		BudgetUsed:       BudgetUsed(resp.Totals),
		Stores:           Stores(resp.Items),
	}
}

func percentBar(pct float64) Bar {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		pct = 0
	}
	return Bar{
		Width:   Clamp(pct, 0, 100),
		Percent: pct,
		Label:   fmt.Sprintf("%d%%", int64(math.Round(pct))),
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
