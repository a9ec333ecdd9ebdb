package meals

import (
	"reflect"
	"testing"

	"github.com/hammamikhairi/nutribudget/internal/domain"
)

func items(pairs ...string) []domain.BasketItem {
	var out []domain.BasketItem
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.BasketItem{Name: pairs[i], Category: pairs[i+1]})
	}
	return out
}

func TestSuggestEmpty(t *testing.T) {
	if got := Suggest(nil, "veg"); got != nil {
		t.Fatalf("expected no meals, got %+v", got)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.BasketItem
		diet  string
		want  [][]string
	}{
		{
			name:  "fallbacks non-veg",
			items: items("Mystery Box", "Misc"),
			diet:  "non_veg",
			want: [][]string{
				{"Eggs & Toast", "Fresh Fruit"},
				{"Grilled Chicken", "Rice", "Mixed Vegetables"},
				{"Protein", "Salad", "Whole Grain"},
			},
		},
		{
			name:  "fallbacks vegan",
			items: items("Mystery Box", "Misc"),
			diet:  "vegan",
			want: [][]string{
				{"Oatmeal", "Fresh Fruit"},
				{"Lentil Curry", "Rice", "Mixed Vegetables"},
				{"Chickpeas", "Salad", "Whole Grain"},
			},
		},
		{
			name:  "fallbacks vegetarian alias",
			items: items("Mystery Box", "Misc"),
			diet:  "vegetarian",
			want: [][]string{
				{"Eggs & Toast", "Fresh Fruit"},
				{"Paneer", "Rice", "Mixed Vegetables"},
				{"Protein", "Salad", "Whole Grain"},
			},
		},
		{
			name: "vegetarian basket",
			items: items(
				"Brown Rice", "Grains",
				"Large Eggs", "Dairy",
				"Greek Yogurt", "Dairy",
				"Baby Spinach", "Fresh",
				"Gala Apple", "Fruit",
				"Chicken Thighs", "Meat",
			),
			diet: "veg",
			want: [][]string{
				{"Brown Rice", "Gala Apple"},
				{"Large Eggs", "Brown Rice", "Baby Spinach"},
				{"Greek Yogurt", "Baby Spinach", "Whole Grain"},
			},
		},
		{
			name: "non-veg uses category",
			items: items(
				"Salmon Fillet", "Seafood",
				"Ground Beef", "Meat",
				"Whole Wheat Bread", "Bakery",
				"Pasta", "Grains",
				"Oats", "Grains",
				"Carrots", "Produce",
				"Kale", "Vegetables",
			),
			diet: "non_veg",
			want: [][]string{
				{"Whole Wheat Bread", "Fresh Fruit"},
				{"Salmon Fillet", "Pasta", "Carrots"},
				{"Ground Beef", "Kale", "Oats"},
			},
		},
		{
			name:  "vegan legume category",
			items: items("Black Turtle", "Legumes", "Firm Tofu", "Soy"),
			diet:  "vegan",
			want: [][]string{
				{"Oatmeal", "Fresh Fruit"},
				{"Black Turtle", "Rice", "Mixed Vegetables"},
				{"Firm Tofu", "Salad", "Whole Grain"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.items, tt.diet)
			if len(got) != 3 {
				t.Fatalf("expected three meals, got %d", len(got))
			}
			for i, meal := range got {
				if !reflect.DeepEqual(meal.Items, tt.want[i]) {
					t.Errorf("%s: expected %v, got %v", meal.Time, tt.want[i], meal.Items)
				}
			}
		})
	}
}

func TestNote(t *testing.T) {
	tests := map[string]string{
		"vegan":   "🌱 Vegan meal suggestions from your basket",
		"veg":     "🥬 Vegetarian meal suggestions from your basket",
		"non_veg": "🍖 Non-Vegetarian meal suggestions from your basket",
		"":        "🍖 Non-Vegetarian meal suggestions from your basket",
	}
	for diet, want := range tests {
		if got := Note(diet); got != want {
			t.Errorf("Note(%q) = %q, want %q", diet, got, want)
		}
	}
}
