package domain

// IntentType classifies what the user typed at the dashboard prompt.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentSetBudget
	IntentSetPeople
	IntentSetDiet
	IntentSetGoal
	IntentSubmit  // submit the form; payload may carry inline fields
	IntentExport  // write the shopping list for the current plan
	IntentBasket  // print the basket
	IntentCharts  // print the breakdown charts
	IntentMeals   // print meal suggestions
	IntentStores  // print the distinct stores
	IntentHistory // list the plans of this session
	IntentForm    // print the current form values
	IntentReset   // drop the current plan and session history
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentSetBudget:
		return "set_budget"
	case IntentSetPeople:
		return "set_people"
	case IntentSetDiet:
		return "set_diet"
	case IntentSetGoal:
		return "set_goal"
	case IntentSubmit:
		return "submit"
	case IntentExport:
		return "export"
	case IntentBasket:
		return "basket"
	case IntentCharts:
		return "charts"
	case IntentMeals:
		return "meals"
	case IntentStores:
		return "stores"
	case IntentHistory:
		return "history"
	case IntentForm:
		return "form"
	case IntentReset:
		return "reset"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed prompt command.
type Intent struct {
	Type    IntentType
	Payload string // raw argument text, e.g. "40" for set_budget
}
