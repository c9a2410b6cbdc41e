// Package forms validates visitor form submissions against declarative
// per-form schemas. A schema maps field names to rules and is constructed once
// at package init, never mutated per request.
package forms

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"ziada-travel/utils"
)

// Kind selects the value-level check applied after the required check.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindPositiveInt
	KindDate
	KindBool
)

// Rule describes one form field: whether it is required, how long it may be,
// which closed set of values it accepts, and a UI hint for rendering.
type Rule struct {
	Required bool
	MaxLen   int
	Kind     Kind
	Enum     []string
	Hint     string
}

// Schema maps field name to rule for one form.
type Schema map[string]Rule

// Errors holds field-level validation messages keyed by field name.
type Errors map[string]string

// Validate checks raw form values against the schema. A nil return means the
// submission is valid. Unknown fields are ignored.
func (s Schema) Validate(values map[string]string) Errors {
	errs := Errors{}

	for field, rule := range s {
		value := strings.TrimSpace(values[field])

		if value == "" {
			if rule.Required {
				errs[field] = "This field is required."
			}
			continue
		}

		if rule.MaxLen > 0 && len(value) > rule.MaxLen {
			errs[field] = fmt.Sprintf("Ensure this value has at most %d characters.", rule.MaxLen)
			continue
		}

		if len(rule.Enum) > 0 && !contains(rule.Enum, value) {
			errs[field] = fmt.Sprintf("%q is not a valid choice.", value)
			continue
		}

		switch rule.Kind {
		case KindEmail:
			if _, err := mail.ParseAddress(value); err != nil {
				errs[field] = "Enter a valid email address."
			}
		case KindPositiveInt:
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				errs[field] = "Enter a positive whole number."
			}
		case KindDate:
			if _, err := utils.ParseTravelDate(value); err != nil {
				errs[field] = "Enter a valid date."
			}
		case KindBool:
			// Checkboxes arrive as "on", "true" or "1"; anything present is accepted.
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ParseBool interprets a checkbox value.
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// ParseUint parses an optional positive integer field. Returns nil when blank.
func ParseUint(value string) *uint {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return nil
	}
	u := uint(n)
	return &u
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
