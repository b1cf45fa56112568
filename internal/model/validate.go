package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("validation error")

// FieldError describes a problem with one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists field-level problems found by a Validate method.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func validationResult(errs []FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}

// Validate checks the reminder's enumerations and the recurrence invariant.
func (r Reminder) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	}
	if r.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "required"})
	}
	if !ValidPriorities[r.Priority] {
		errs = append(errs, FieldError{Field: "priority", Message: fmt.Sprintf("invalid %q (valid: low, medium, high)", r.Priority)})
	}
	switch {
	case r.IsRecurring && !ValidRecurrences[r.RecurrencePattern]:
		errs = append(errs, FieldError{Field: "recurrencePattern", Message: fmt.Sprintf("invalid %q (valid: daily, weekly, monthly)", r.RecurrencePattern)})
	case !r.IsRecurring && r.RecurrencePattern != "":
		errs = append(errs, FieldError{Field: "recurrencePattern", Message: "set on a non-recurring reminder"})
	}
	return validationResult(errs)
}

// Validate checks the memory's required fields.
func (m Memory) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(m.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	}
	if m.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "required"})
	}
	return validationResult(errs)
}

// Validate checks preference ranges and enumerations.
func (p Profile) Validate() error {
	var errs []FieldError
	if p.Age < 0 {
		errs = append(errs, FieldError{Field: "age", Message: "must not be negative"})
	}
	prefs := p.Preferences
	if prefs.VoiceVolume < 0 || prefs.VoiceVolume > 100 {
		errs = append(errs, FieldError{Field: "preferences.voiceVolume", Message: "must be between 0 and 100"})
	}
	if prefs.VoiceSpeed < 0.5 || prefs.VoiceSpeed > 2.0 {
		errs = append(errs, FieldError{Field: "preferences.voiceSpeed", Message: "must be between 0.5 and 2.0"})
	}
	switch prefs.TextSize {
	case TextSmall, TextMedium, TextLarge:
	default:
		errs = append(errs, FieldError{Field: "preferences.textSize", Message: fmt.Sprintf("invalid %q", prefs.TextSize)})
	}
	switch prefs.Theme {
	case ThemeLight, ThemeDark:
	default:
		errs = append(errs, FieldError{Field: "preferences.theme", Message: fmt.Sprintf("invalid %q", prefs.Theme)})
	}
	return validationResult(errs)
}
