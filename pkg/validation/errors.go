package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Kind groups validation failures by what the user has to fix.
type Kind int

const (
	KindNone Kind = iota
	KindMissing
	KindFormat
	KindOther
)

// FieldLabels maps struct field names to the JSON names clients send
var FieldLabels = map[string]string{
	"FirstName": "firstName",
	"LastName":  "lastName",
	"Email":     "email",
	"Company":   "company",
	"Phone":     "phone",
	"Message":   "message",
}

// Classify reports the most important kind of failure in err.
// Missing fields win over format errors.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return KindOther
	}

	kind := KindNone
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required", "notblank":
			return KindMissing
		case "contact_email", "email":
			kind = KindFormat
		default:
			if kind == KindNone {
				kind = KindOther
			}
		}
	}
	return kind
}

// FormatValidationErrors converts validator.ValidationErrors to short messages for logs
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s: required", label)
	case "contact_email", "email":
		return fmt.Sprintf("%s: invalid email format", label)
	default:
		return fmt.Sprintf("%s: failed %s", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
