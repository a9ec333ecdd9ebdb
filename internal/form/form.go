// Package form turns raw, user-typed field values into a plan request.
//
// Numeric fields are parsed leniently: the leading integer is taken and
// anything unparsable becomes 0. There is no range checking here; the
// planning service rejects values it does not accept and that rejection
// is what the user sees.
package form

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/nutribudget/internal/domain"
)

// Defaults for a fresh form.
const (
	DefaultBudget = "40"
	DefaultPeople = "2"
	DefaultDiet   = domain.DietVeg
	DefaultGoal   = domain.GoalBalanced
)

// Fields holds raw form input. Empty Diet or Goal mean "use the default".
type Fields struct {
	Budget string
	People string
	Diet   string
	Goal   string
}

// Build validates and normalizes fields into a request. Only an unknown
// diet or goal is rejected.
func Build(f Fields) (domain.PlanRequest, error) {
	diet, err := ParseDiet(f.Diet)
	if err != nil {
		return domain.PlanRequest{}, err
	}
	goal, err := ParseGoal(f.Goal)
	if err != nil {
		return domain.PlanRequest{}, err
	}
	return domain.PlanRequest{
		Budget:   LenientInt(f.Budget),
		People:   LenientInt(f.People),
		DietType: diet,
		Goal:     goal,
	}, nil
}

// LenientInt parses the leading integer of s. Leading whitespace and an
// optional sign are allowed, parsing stops at the first non-digit, and
// input with no digits yields 0. Negative values coerce to 0.
func LenientInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	const limit = int(^uint(0)>>1) / 10
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		if n >= limit {
			break
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		return 0
	}
	return n
}

var dietAliases = map[string]domain.DietType{
	"veg":            domain.DietVeg,
	"vegetarian":     domain.DietVeg,
	"non_veg":        domain.DietNonVeg,
	"nonveg":         domain.DietNonVeg,
	"non_vegetarian": domain.DietNonVeg,
	"omnivore":       domain.DietNonVeg,
	"vegan":          domain.DietVegan,
}

var goalAliases = map[string]domain.Goal{
	"balanced":     domain.GoalBalanced,
	"high_protein": domain.GoalHighProtein,
	"protein":      domain.GoalHighProtein,
	"low_sugar":    domain.GoalLowSugar,
	"sugar":        domain.GoalLowSugar,
}

// ParseDiet normalizes a diet value. Empty input returns the default.
func ParseDiet(s string) (domain.DietType, error) {
	key := normalize(s)
	if key == "" {
		return DefaultDiet, nil
	}
	if d, ok := dietAliases[key]; ok {
		return d, nil
	}
	return "", fmt.Errorf("diet %q: %w (want one of %s)", s, domain.ErrInvalidChoice, joinDiets())
}

// ParseGoal normalizes a goal value. Empty input returns the default.
func ParseGoal(s string) (domain.Goal, error) {
	key := normalize(s)
	if key == "" {
		return DefaultGoal, nil
	}
	if g, ok := goalAliases[key]; ok {
		return g, nil
	}
	return "", fmt.Errorf("goal %q: %w (want one of %s)", s, domain.ErrInvalidChoice, joinGoals())
}

// normalize lowercases and treats '-', ' ' and '_' alike.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

func joinDiets() string {
	var parts []string
	for _, d := range domain.DietTypes() {
		parts = append(parts, string(d))
	}
	return strings.Join(parts, ", ")
}

func joinGoals() string {
	var parts []string
	for _, g := range domain.Goals() {
		parts = append(parts, string(g))
	}
	return strings.Join(parts, ", ")
}

// Form keeps the current raw values entered at the prompt so fields can
// be set one at a time. Not safe for concurrent use.
type Form struct {
	fields Fields
}

// New returns a form holding the defaults.
func New() *Form {
	return &Form{fields: Fields{
		Budget: DefaultBudget,
		People: DefaultPeople,
		Diet:   string(DefaultDiet),
		Goal:   string(DefaultGoal),
	}}
}

// Fields returns the current raw values.
func (f *Form) Fields() Fields { return f.fields }

// SetBudget stores the raw budget text.
func (f *Form) SetBudget(raw string) { f.fields.Budget = strings.TrimSpace(raw) }

// SetPeople stores the raw people text.
func (f *Form) SetPeople(raw string) { f.fields.People = strings.TrimSpace(raw) }

// SetDiet validates and stores the diet. The previous value is kept on error.
func (f *Form) SetDiet(raw string) error {
	d, err := ParseDiet(raw)
	if err != nil {
		return err
	}
	f.fields.Diet = string(d)
	return nil
}

// SetGoal validates and stores the goal. The previous value is kept on error.
func (f *Form) SetGoal(raw string) error {
	g, err := ParseGoal(raw)
	if err != nil {
		return err
	}
	f.fields.Goal = string(g)
	return nil
}

// Apply overlays the non-empty values of other onto the form, validating
// diet and goal. Nothing is changed on error.
func (f *Form) Apply(other Fields) error {
	next := *f
	if other.Budget != "" {
		next.SetBudget(other.Budget)
	}
	if other.People != "" {
		next.SetPeople(other.People)
	}
	if other.Diet != "" {
		if err := next.SetDiet(other.Diet); err != nil {
			return err
		}
	}
	if other.Goal != "" {
		if err := next.SetGoal(other.Goal); err != nil {
			return err
		}
	}
	*f = next
	return nil
}

// Request builds the request for the current values. Diet and goal were
// validated when set, so this cannot fail.
func (f *Form) Request() domain.PlanRequest {
	req, err := Build(f.fields)
	if err != nil {
		// Only reachable if fields were mutated around the setters.
		return domain.PlanRequest{
			Budget:   LenientInt(f.fields.Budget),
			People:   LenientInt(f.fields.People),
			DietType: DefaultDiet,
			Goal:     DefaultGoal,
		}
	}
	return req
}
