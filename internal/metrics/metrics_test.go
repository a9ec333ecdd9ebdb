package metrics

import (
	"math"
	"testing"

	"github.com/hammamikhairi/nutribudget/internal/domain"
)

func TestProteinPerDollar(t *testing.T) {
	tests := []struct {
		name   string
		totals domain.PlanTotals
		want   float64
	}{
		{"normal", domain.PlanTotals{TotalSpent: 4, Protein: 12}, 3},
		{"zero spend", domain.PlanTotals{TotalSpent: 0, Protein: 12}, 0},
		{"zero spend zero protein", domain.PlanTotals{}, 0},
		{"no protein", domain.PlanTotals{TotalSpent: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProteinPerDollar(tt.totals)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("non-finite result %v", got)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCoverageBar(t *testing.T) {
	tests := []struct {
		pct       float64
		wantWidth float64
		wantLabel string
	}{
		{145, 100, "145%"},
		{100, 100, "100%"},
		{62.4, 62.4, "62%"},
		{0, 0, "0%"},
		{-5, 0, "-5%"},
		{math.NaN(), 0, "0%"},
	}

	for _, tt := range tests {
		bar := CoverageBar(domain.NutrientCoverage{Percentage: tt.pct})
		if bar.Width != tt.wantWidth {
			t.Errorf("pct %v: expected width %v, got %v", tt.pct, tt.wantWidth, bar.Width)
		}
		if bar.Label != tt.wantLabel {
			t.Errorf("pct %v: expected label %q, got %q", tt.pct, tt.wantLabel, bar.Label)
		}
	}
}

func TestBudgetUsed(t *testing.T) {
	if got := BudgetUsed(domain.PlanTotals{TotalSpent: 30, Budget: 40}); got.Label != "75%" || got.Width != 75 {
		t.Fatalf("unexpected bar %+v", got)
	}
	if got := BudgetUsed(domain.PlanTotals{TotalSpent: 30}); got.Width != 0 {
		t.Fatalf("zero budget should give an empty bar, got %+v", got)
	}
}

func TestSummarize(t *testing.T) {
	savings := &domain.Savings{Amount: 12.5, Percentage: 20, TypicalCost: 62.5}
	resp := &domain.PlanResponse{
		Items: []domain.BasketItem{
			{Name: "Eggs", Store: "Metro"},
			{Name: "Rice", Store: "Loblaws"},
			{Name: "Milk", Store: "Metro"},
			{Name: "Apples", Store: ""},
		},
		Totals: domain.PlanTotals{TotalSpent: 50, Budget: 60, Protein: 100},
		Coverage: domain.PlanCoverage{
			Calories: domain.NutrientCoverage{Target: 2000, Actual: 2900, Percentage: 145},
			Protein:  domain.NutrientCoverage{Target: 50, Actual: 40, Percentage: 80},
		},
		Savings: savings,
	}

	s := Summarize(resp)
	if s.ProteinPerDollar != 2 {
		t.Fatalf("expected 2 g/$, got %v", s.ProteinPerDollar)
	}
	if s.Calories.Width != 100 || s.Calories.Label != "145%" {
		t.Fatalf("unexpected calories bar %+v", s.Calories)
	}
	if s.Protein.Width != 80 {
		t.Fatalf("unexpected protein bar %+v", s.Protein)
	}
	if s.Savings != savings {
		t.Fatal("savings should be passed through unchanged")
	}
	if len(s.Stores) != 2 || s.Stores[0] != "Metro" || s.Stores[1] != "Loblaws" {
		t.Fatalf("unexpected stores %v", s.Stores)
	}

	if got := Summarize(nil); got.Savings != nil || got.ProteinPerDollar != 0 {
		t.Fatalf("nil response should give zero summary, got %+v", got)
	}
}

func TestStoreSearchURL(t *testing.T) {
	want := "https://www.google.com/maps/search/?api=1&query=No+Frills+grocery+store"
	if got := StoreSearchURL("No Frills"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
