package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hammamikhairi/nutribudget/internal/form"
	"github.com/hammamikhairi/nutribudget/internal/logger"
)

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting found.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the Config and returns every problem found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateAnimation()...)
	errors = append(errors, c.validateHistory()...)
	errors = append(errors, c.validateForm()...)
	return errors
}

func (c *Config) validateAPI() []ValidationError {
	var errors []ValidationError

	u, err := url.Parse(c.API.Base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "api.base",
			Value:   c.API.Base,
			Message: "must be an http or https URL",
		})
	}
	if c.API.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Value:   c.API.TimeoutSeconds,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	if _, ok := logger.ParseLevel(c.Logging.Level); !ok {
		return []ValidationError{{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: "must be one of: off, info, debug",
		}}
	}
	return nil
}

func (c *Config) validateAnimation() []ValidationError {
	var errors []ValidationError

	if c.Animation.DurationMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "animation.duration_ms",
			Value:   c.Animation.DurationMs,
			Message: "must not be negative",
		})
	}
	if c.Animation.FrameMs <= 0 {
		errors = append(errors, ValidationError{
			Field:   "animation.frame_ms",
			Value:   c.Animation.FrameMs,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateHistory() []ValidationError {
	if c.History.Capacity < 1 {
		return []ValidationError{{
			Field:   "history.capacity",
			Value:   c.History.Capacity,
			Message: "must be at least 1",
		}}
	}
	return nil
}

func (c *Config) validateForm() []ValidationError {
	var errors []ValidationError

	if _, err := form.ParseDiet(c.Form.Diet); err != nil {
		errors = append(errors, ValidationError{Field: "form.diet", Value: c.Form.Diet, Message: err.Error()})
	}
	if _, err := form.ParseGoal(c.Form.Goal); err != nil {
		errors = append(errors, ValidationError{Field: "form.goal", Value: c.Form.Goal, Message: err.Error()})
	}

	return errors
}
