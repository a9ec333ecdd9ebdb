package export

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/hammamikhairi/nutribudget/internal/domain"
	"github.com/hammamikhairi/nutribudget/internal/logger"
)

var fixedNow = time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)

func eggsPlan() *domain.PlanResponse {
	return &domain.PlanResponse{
		Items: []domain.BasketItem{
			{Name: "Eggs", Store: "Metro", QuantityUnits: 2, EstimatedCost: 4.50},
		},
		Totals: domain.PlanTotals{TotalSpent: 4.50, Calories: 140, Protein: 12, Fiber: 0},
	}
}

func TestDocumentEggs(t *testing.T) {
	plan := eggsPlan()
	doc, err := Document(plan.Items, &plan.Totals, fixedNow)
	if err != nil {
		t.Fatalf("document: %v", err)
	}

	for _, want := range []string{
		"NutriBudget Shopping List\n",
		"Generated: 3/9/2024\n",
		"Total Cost: $4.50\n",
		"Total Items: 1\n",
		"1. Eggs\n",
		"   Store: Metro\n",
		"   Qty: 2\n",
		"   Price: $4.50\n",
		"NUTRITION SUMMARY\n",
		"Total Calories: 140\n",
		"Total Protein: 12g\n",
		"Total Fiber: 0g\n",
		"Powered by NutriBudget\n",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
	if !strings.HasPrefix(doc, Title) {
		t.Fatal("document should start with the title")
	}
}

func TestDocumentKeepsOrderAndDuplicates(t *testing.T) {
	items := []domain.BasketItem{
		{Name: "Rice", Store: "A", QuantityUnits: 1, EstimatedCost: 3},
		{Name: "Beans", Store: "B", QuantityUnits: 0.5, EstimatedCost: 1.255},
		{Name: "Rice", Store: "A", QuantityUnits: 1, EstimatedCost: 3},
	}
	doc, err := Document(items, &domain.PlanTotals{TotalSpent: 7.255}, fixedNow)
	if err != nil {
		t.Fatalf("document: %v", err)
	}

	first := strings.Index(doc, "1. Rice")
	second := strings.Index(doc, "2. Beans")
	third := strings.Index(doc, "3. Rice")
	if first < 0 || second < first || third < second {
		t.Fatalf("items out of order:\n%s", doc)
	}
	if !strings.Contains(doc, "Total Items: 3\n") {
		t.Fatal("expected three items counted")
	}
	if !strings.Contains(doc, "   Qty: 0.5\n") {
		t.Fatal("fractional quantity should print as is")
	}
	if !strings.Contains(doc, "   Price: $3.00\n") {
		t.Fatal("price should have two decimals")
	}
}

func TestDocumentDeterministic(t *testing.T) {
	plan := eggsPlan()
	a, _ := Document(plan.Items, &plan.Totals, fixedNow)
	b, _ := Document(plan.Items, &plan.Totals, fixedNow)
	if a != b {
		t.Fatal("same inputs should give the same document")
	}
}

func TestDocumentNilTotals(t *testing.T) {
	if _, err := Document(nil, nil, fixedNow); !errors.Is(err, domain.ErrNoTotals) {
		t.Fatalf("expected ErrNoTotals, got %v", err)
	}
}

func TestFilename(t *testing.T) {
	late := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	tests := []struct {
		now  time.Time
		want string
	}{
		{fixedNow, "nutribudget-shopping-list-2024-03-09.txt"},
		{late, "nutribudget-shopping-list-2024-03-10.txt"},
	}
	for _, tt := range tests {
		if got := Filename(tt.now); got != tt.want {
			t.Errorf("Filename(%v) = %q, want %q", tt.now, got, tt.want)
		}
	}
}

func TestExporterWrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	exp := NewExporter(fs, "exports", logger.New(logger.LevelOff, nil), WithClock(func() time.Time { return fixedNow }))

	path, err := exp.Export(eggsPlan())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if want := filepath.Join("exports", "nutribudget-shopping-list-2024-03-09.txt"); path != want {
		t.Fatalf("expected path %q, got %q", want, path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want, _ := Document(eggsPlan().Items, &eggsPlan().Totals, fixedNow)
	if string(data) != want {
		t.Fatalf("file content differs from document:\n%s", data)
	}
}

func TestExporterRefuses(t *testing.T) {
	exp := NewExporter(afero.NewMemMapFs(), "", logger.New(logger.LevelOff, nil))

	tests := []struct {
		name string
		plan *domain.PlanResponse
		want error
	}{
		{"no plan", nil, domain.ErrNoPlan},
		{"empty basket", &domain.PlanResponse{}, domain.ErrEmptyBasket},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := exp.Export(tt.plan); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if Available(tt.plan) {
				t.Fatal("nothing should be available to export")
			}
		})
	}
	if !Available(eggsPlan()) {
		t.Fatal("non-empty basket should be exportable")
	}
}

func TestExporterReadOnlyFs(t *testing.T) {
	exp := NewExporter(afero.NewReadOnlyFs(afero.NewMemMapFs()), "out", logger.New(logger.LevelOff, nil))
	if _, err := exp.Export(eggsPlan()); err == nil {
		t.Fatal("expected write error on read-only fs")
	}
}
