package form

import (
	"errors"
	"testing"

	"github.com/hammamikhairi/nutribudget/internal/domain"
)

func TestLenientInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"40", 40},
		{"  25 ", 25},
		{"40.9", 40},
		{"12kg", 12},
		{"+7", 7},
		{"-5", 0},
		{"abc", 0},
		{"", 0},
		{"$40", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := LenientInt(tt.in); got != tt.want {
				t.Fatalf("LenientInt(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}

	if LenientInt("99999999999999999999999") < 0 {
		t.Fatal("overflow produced a negative value")
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		fields  Fields
		want    domain.PlanRequest
		wantErr bool
	}{
		{
			name:   "well formed",
			fields: Fields{Budget: "60", People: "3", Diet: "vegan", Goal: "low_sugar"},
			want:   domain.PlanRequest{Budget: 60, People: 3, DietType: domain.DietVegan, Goal: domain.GoalLowSugar},
		},
		{
			name:   "malformed numbers default to zero",
			fields: Fields{Budget: "lots", People: "", Diet: "veg", Goal: "balanced"},
			want:   domain.PlanRequest{Budget: 0, People: 0, DietType: domain.DietVeg, Goal: domain.GoalBalanced},
		},
		{
			name:   "aliases and separators",
			fields: Fields{Budget: "40", People: "2", Diet: "Non-Veg", Goal: "High Protein"},
			want:   domain.PlanRequest{Budget: 40, People: 2, DietType: domain.DietNonVeg, Goal: domain.GoalHighProtein},
		},
		{
			name:   "empty choices use defaults",
			fields: Fields{Budget: "40", People: "2"},
			want:   domain.PlanRequest{Budget: 40, People: 2, DietType: DefaultDiet, Goal: DefaultGoal},
		},
		{
			name:    "unknown diet",
			fields:  Fields{Budget: "40", People: "2", Diet: "carnivore"},
			wantErr: true,
		},
		{
			name:    "unknown goal",
			fields:  Fields{Budget: "40", People: "2", Goal: "bulk"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.fields)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidChoice) {
					t.Fatalf("expected ErrInvalidChoice, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestFormDefaultsAndSetters(t *testing.T) {
	f := New()
	want := domain.PlanRequest{Budget: 40, People: 2, DietType: domain.DietVeg, Goal: domain.GoalBalanced}
	if got := f.Request(); got != want {
		t.Fatalf("expected defaults %+v, got %+v", want, got)
	}

	f.SetBudget("75")
	f.SetPeople("4 people")
	if err := f.SetDiet("vegan"); err != nil {
		t.Fatalf("set diet: %v", err)
	}
	if err := f.SetGoal("bulk"); err == nil {
		t.Fatal("expected error for unknown goal")
	}

	got := f.Request()
	if got.Budget != 75 || got.People != 4 || got.DietType != domain.DietVegan || got.Goal != domain.GoalBalanced {
		t.Fatalf("unexpected request after setters: %+v", got)
	}
}

func TestFormApplyIsAtomic(t *testing.T) {
	f := New()
	err := f.Apply(Fields{Budget: "90", Diet: "paleo"})
	if err == nil {
		t.Fatal("expected error for unknown diet")
	}
	if f.Fields().Budget != DefaultBudget {
		t.Fatalf("budget changed despite error: %q", f.Fields().Budget)
	}

	if err := f.Apply(Fields{Budget: "90", Goal: "protein"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := f.Request(); got.Budget != 90 || got.Goal != domain.GoalHighProtein {
		t.Fatalf("unexpected request after apply: %+v", got)
	}
}
