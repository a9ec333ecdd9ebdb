// Package conversation provides prompt command parsing and user
// notification implementations.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/nutribudget/internal/domain"
	"github.com/hammamikhairi/nutribudget/internal/form"
	"github.com/hammamikhairi/nutribudget/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches prompt input to intents using keywords and
// simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		// Field setters carry their argument in group 2.
		{regexp.MustCompile(`(?i)^(budget|b)(?:\s*[:=]\s*|\s+)(.+)$`), domain.IntentSetBudget},
		{regexp.MustCompile(`(?i)^(people|persons|servings)(?:\s*[:=]\s*|\s+)(.+)$`), domain.IntentSetPeople},
		{regexp.MustCompile(`(?i)^(diet|d)(?:\s*[:=]\s*|\s+)(.+)$`), domain.IntentSetDiet},
		{regexp.MustCompile(`(?i)^(goal|g)(?:\s*[:=]\s*|\s+)(.+)$`), domain.IntentSetGoal},
		{regexp.MustCompile(`(?i)^(plan|submit)\s+(.+)$`), domain.IntentSubmit},

		{regexp.MustCompile(`(?i)^(plan|submit|go|run|generate)$`), domain.IntentSubmit},
		{regexp.MustCompile(`(?i)^(export|save|download|list)$`), domain.IntentExport},
		{regexp.MustCompile(`(?i)^(basket|items|cart)$`), domain.IntentBasket},
		{regexp.MustCompile(`(?i)^(charts?|breakdown)$`), domain.IntentCharts},
		{regexp.MustCompile(`(?i)^(meals?|menu)$`), domain.IntentMeals},
		{regexp.MustCompile(`(?i)^(stores?|shops?)$`), domain.IntentStores},
		{regexp.MustCompile(`(?i)^(history|plans)$`), domain.IntentHistory},
		{regexp.MustCompile(`(?i)^(form|settings|show)$`), domain.IntentForm},
		{regexp.MustCompile(`(?i)^(reset|clear)$`), domain.IntentReset},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q|bye)$`), domain.IntentQuit},
	}
	return p
}

// Parse converts prompt input into an intent.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		intent := &domain.Intent{Type: rule.intent}
		if len(m) > 2 {
			intent.Payload = strings.TrimSpace(m[2])
		}
		if rule.intent == domain.IntentSetBudget {
			intent.Payload = stripCurrency(intent.Payload)
		}
		return intent, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

// InlineFields reads the positional arguments of an inline submit,
// "budget people diet goal". Missing trailing arguments stay empty so
// they do not override the form.
func InlineFields(payload string) form.Fields {
	var f form.Fields
	args := strings.Fields(payload)
	for i, a := range args {
		switch i {
		case 0:
			f.Budget = stripCurrency(a)
		case 1:
			f.People = a
		case 2:
			f.Diet = a
		case 3:
			f.Goal = strings.Join(args[3:], " ")
		}
	}
	return f
}

func stripCurrency(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "$")
}
