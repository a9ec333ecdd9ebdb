// Package meals sketches a sample day of meals from a basket. Items are
// matched by name and category keywords; gaps are filled with generic
// dishes suited to the diet.
package meals

import (
	"strings"

	"github.com/hammamikhairi/nutribudget/internal/domain"
)

// Meal is one suggested meal.
type Meal struct {
	Time  string
	Icon  string
	Items []string
}

type group struct {
	names      []string
	categories []string
}

func (g group) match(it domain.BasketItem) bool {
	name := strings.ToLower(it.Name)
	category := strings.ToLower(it.Category)
	for _, k := range g.names {
		if strings.Contains(name, k) {
			return true
		}
	}
	for _, k := range g.categories {
		if strings.Contains(category, k) {
			return true
		}
	}
	return false
}

var (
	veganProteins = group{
		names:      []string{"bean", "lentil", "tofu", "chickpea", "nut"},
		categories: []string{"legume"},
	}
	vegProteins = group{
		names: []string{"egg", "cheese", "yogurt", "paneer", "bean", "lentil"},
	}
	meatProteins = group{
		names:      []string{"chicken", "beef", "fish", "egg"},
		categories: []string{"meat", "seafood"},
	}
	carbs = group{
		names: []string{"bread", "rice", "pasta", "oat", "cereal", "tortilla"},
	}
	veggies = group{
		names:      []string{"salad", "broccoli", "carrot", "spinach"},
		categories: []string{"produce", "vegetable"},
	}
	fruits = group{
		names: []string{"apple", "banana", "orange", "berry"},
	}
)

type diet int

const (
	dietNonVeg diet = iota
	dietVeg
	dietVegan
)

func parseDiet(s string) diet {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(domain.DietVegan):
		return dietVegan
	case string(domain.DietVeg), "vegetarian":
		return dietVeg
	default:
		return dietNonVeg
	}
}

// pick returns names of matching items in basket order.
func pick(items []domain.BasketItem, g group) []string {
	var out []string
	for _, it := range items {
		if g.match(it) {
			out = append(out, it.Name)
		}
	}
	return out
}

// first returns the first non-empty of names[i] for each index, else fallback.
func first(names []string, fallback string, idx ...int) string {
	for _, i := range idx {
		if i < len(names) && names[i] != "" {
			return names[i]
		}
	}
	return fallback
}

// Suggest builds breakfast, lunch and dinner from items. An empty basket
// gives no suggestions.
func Suggest(items []domain.BasketItem, dietType string) []Meal {
	if len(items) == 0 {
		return nil
	}

	d := parseDiet(dietType)
	var proteins []string
	switch d {
	case dietVegan:
		proteins = pick(items, veganProteins)
	case dietVeg:
		proteins = pick(items, vegProteins)
	default:
		proteins = pick(items, meatProteins)
	}
	c := pick(items, carbs)
	v := pick(items, veggies)
	f := pick(items, fruits)

	breakfastMain := "Eggs & Toast"
	lunchProtein := "Grilled Chicken"
	dinnerProtein := "Protein"
	switch d {
	case dietVegan:
		breakfastMain = "Oatmeal"
		lunchProtein = "Lentil Curry"
		dinnerProtein = "Chickpeas"
	case dietVeg:
		lunchProtein = "Paneer"
	}

	return []Meal{
		{
			Time: "Breakfast",
			Icon: "🌅",
			Items: []string{
				first(c, breakfastMain, 0),
				first(f, "Fresh Fruit", 0),
			},
		},
		{
			Time: "Lunch",
			Icon: "☀️",
			Items: []string{
				first(proteins, lunchProtein, 0),
				first(c, "Rice", 1, 0),
				first(v, "Mixed Vegetables", 0),
			},
		},
		{
			Time: "Dinner",
			Icon: "🌙",
			Items: []string{
				first(proteins, dinnerProtein, 1, 0),
				first(v, "Salad", 1, 0),
				first(c, "Whole Grain", 2),
			},
		},
	}
}

// Note describes which diet the suggestions follow.
func Note(dietType string) string {
	switch parseDiet(dietType) {
	case dietVegan:
		return "🌱 Vegan meal suggestions from your basket"
	case dietVeg:
		return "🥬 Vegetarian meal suggestions from your basket"
	default:
		return "🍖 Non-Vegetarian meal suggestions from your basket"
	}
}
