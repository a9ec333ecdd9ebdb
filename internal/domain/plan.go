// Package domain defines the plan contract shared by every layer of the
// dashboard: the request payload, the planning service's response, the
// request lifecycle state, and the ports the engine depends on.
// All other packages depend on domain; domain depends on nothing.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DietType is the dietary restriction sent with a plan request.
type DietType string

const (
	DietVeg    DietType = "veg"
	DietNonVeg DietType = "non_veg"
	DietVegan  DietType = "vegan"
)

// DietTypes lists the accepted diet values in display order.
func DietTypes() []DietType { return []DietType{DietVeg, DietNonVeg, DietVegan} }

// Valid reports whether d is one of the known diet types.
func (d DietType) Valid() bool {
	switch d {
	case DietVeg, DietNonVeg, DietVegan:
		return true
	}
	return false
}

// Label returns a human-readable name for the diet type.
func (d DietType) Label() string {
	switch d {
	case DietVeg:
		return "Vegetarian"
	case DietNonVeg:
		return "Non-vegetarian"
	case DietVegan:
		return "Vegan"
	default:
		return string(d)
	}
}

// Goal is the nutritional objective sent with a plan request.
type Goal string

const (
	GoalBalanced    Goal = "balanced"
	GoalHighProtein Goal = "high_protein"
	GoalLowSugar    Goal = "low_sugar"
)

// Goals lists the accepted goal values in display order.
func Goals() []Goal { return []Goal{GoalBalanced, GoalHighProtein, GoalLowSugar} }

// Valid reports whether g is one of the known goals.
func (g Goal) Valid() bool {
	switch g {
	case GoalBalanced, GoalHighProtein, GoalLowSugar:
		return true
	}
	return false
}

// Label returns a human-readable name for the goal.
func (g Goal) Label() string {
	switch g {
	case GoalBalanced:
		return "Balanced"
	case GoalHighProtein:
		return "High Protein"
	case GoalLowSugar:
		return "Low Sugar"
	default:
		return string(g)
	}
}

// PlanRequest is the payload POSTed to the planning service.
// Budget and People are already coerced to non-negative integers; the
// service decides which values it accepts.
type PlanRequest struct {
	Budget   int      `json:"budget"`
	People   int      `json:"people"`
	DietType DietType `json:"dietType"`
	Goal     Goal     `json:"goal"`
}

// String renders the request compactly for logs and history listings.
func (r PlanRequest) String() string {
	return fmt.Sprintf("$%d for %d (%s, %s)", r.Budget, r.People, r.DietType, r.Goal)
}

// ProductID identifies a product. The service sends either a string or a
// number; the text is kept verbatim along with which form it arrived in.
type ProductID struct {
	value   string
	numeric bool
}

// NewProductID returns a textual product id.
func NewProductID(s string) ProductID { return ProductID{value: s} }

// String returns the id text.
func (p ProductID) String() string { return p.value }

// UnmarshalJSON accepts a JSON string or number.
func (p *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ProductID{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = ProductID{value: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product_id: %w", err)
	}
	*p = ProductID{value: n.String(), numeric: true}
	return nil
}

// MarshalJSON writes the id back in the form it arrived in.
func (p ProductID) MarshalJSON() ([]byte, error) {
	if p.numeric {
		return []byte(p.value), nil
	}
	return json.Marshal(p.value)
}

// BasketItem is one product chosen by the planner. Items are owned by the
// PlanResponse that carried them and are never modified.
type BasketItem struct {
	ProductID     ProductID `json:"product_id"`
	Name          string    `json:"product_name"`
	Store         string    `json:"store"`
	Category      string    `json:"category"`
	ClusterLabel  string    `json:"cluster_label"`
	QuantityUnits float64   `json:"quantity_units"`
	Unit          string    `json:"unit"`
	EstimatedCost float64   `json:"estimated_cost"`
	HealthScore   float64   `json:"health_score"`
	NutriScore    float64   `json:"nutri_score_app"`
	PricePer100g  float64   `json:"price_per_100g"`
	Calories      *float64  `json:"calories,omitempty"`
	Protein       *float64  `json:"protein,omitempty"`
}

// PlanTotals aggregates the whole basket. Computed by the service.
type PlanTotals struct {
	TotalSpent float64 `json:"total_spent"`
	Budget     float64 `json:"budget"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Fiber      float64 `json:"fiber"`
}

// NutrientCoverage compares an achieved amount against a target.
// Percentage is service-computed and may exceed 100.
type NutrientCoverage struct {
	Target     float64 `json:"target"`
	Actual     float64 `json:"actual"`
	Percentage float64 `json:"percentage"`
}

// PlanCoverage holds per-nutrient coverage.
type PlanCoverage struct {
	Calories NutrientCoverage `json:"calories"`
	Protein  NutrientCoverage `json:"protein"`
}

// Savings is present only when the service found a baseline to compare to.
type Savings struct {
	Amount      float64 `json:"amount"`
	Percentage  float64 `json:"percentage"`
	TypicalCost float64 `json:"typical_cost"`
}

// PlanInputs echoes the request as the service understood it.
type PlanInputs struct {
	Budget   float64 `json:"budget"`
	People   int     `json:"people"`
	DietType string  `json:"dietType"`
	Goal     string  `json:"goal,omitempty"`
}

// PlanResponse is a complete plan. A new successful request replaces the
// current response wholesale; nothing mutates one in place.
type PlanResponse struct {
	Inputs              PlanInputs   `json:"inputs"`
	Items               []BasketItem `json:"items"`
	Totals              PlanTotals   `json:"totals"`
	Coverage            PlanCoverage `json:"coverage"`
	Savings             *Savings     `json:"savings,omitempty"`
	ClusterBreakdown    Counts       `json:"clusterBreakdown"`
	ProcessingBreakdown Counts       `json:"processingBreakdown"`
}

// PlanRecord is a successful response kept for the current session
// together with the request that produced it.
type PlanRecord struct {
	RequestID  string
	Request    PlanRequest
	Response   *PlanResponse
	ReceivedAt time.Time
}
