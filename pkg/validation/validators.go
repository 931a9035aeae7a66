package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Regex patterns
var (
	// local@domain.tld. Whitespace and address-list delimiters (, ; < >) are
	// rejected so one field can never expand into several SMTP recipients.
	contactEmailRegex = regexp.MustCompile(`^[^\s@,;<>]+@[^\s@,;<>]+\.[^\s@,;<>]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// New returns a validator with the custom rules already registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// ContactEmail validates the basic local@domain.tld shape.
// Empty values pass; pair with notblank when the field is required.
func ContactEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return contactEmailRegex.MatchString(val)
}

// IsContactEmail is the same check for callers outside a validator run.
func IsContactEmail(s string) bool {
	return contactEmailRegex.MatchString(s)
}
