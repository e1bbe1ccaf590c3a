// Package validation implements request input validation. Handlers build a
// Validator, run the entity-specific checks, and reject the request with a
// VALIDATION_ERROR when any check fails.
package validation

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// Validator collects field-level validation errors.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator. The first error per field wins.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// First returns one error as a "field: message" string, or "" when valid.
func (v *Validator) First() string {
	for field, msg := range v.Errors {
		return field + ": " + msg
	}
	return ""
}

// Required checks that a string is not blank.
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "must not be empty")
}

// Email validates email format.
func (v *Validator) Email(field, email string) {
	v.Check(emailRegex.MatchString(email), field, "must be a valid email address")
}

// Phone validates phone number format. Blank is allowed; callers mark the
// field Required separately when it is mandatory.
func (v *Validator) Phone(field, phone string) {
	if phone == "" {
		return
	}
	v.Check(phoneRegex.MatchString(phone), field, "must be a valid phone number")
}

// MinLength checks a minimum string length.
func (v *Validator) MinLength(field, value string, n int) {
	v.Check(len(value) >= n, field, "is too short")
}

// Range checks that an integer falls within [min, max].
func (v *Validator) Range(field string, value, min, max int) {
	v.Check(value >= min && value <= max, field, "is out of range")
}

// OneOf checks enum membership.
func (v *Validator) OneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field, "must be one of: "+strings.Join(allowed, ", "))
}
