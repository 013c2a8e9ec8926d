package app

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/numerology-service/internal/domain"
	"github.com/jsamuelsen/numerology-service/internal/domain/numerology"
)

// Input limits.
const (
	MaxNameLength     = 200 // characters, not bytes
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt ignores anything longer
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateSubject checks the name and date of birth a reading is computed
// from. now bounds the date of birth.
func ValidateSubject(name, dob string, now time.Time) error {
	name = strings.TrimSpace(name)
	dob = strings.TrimSpace(dob)

	switch {
	case name == "":
		return domain.NewValidationError("name", "is required")
	case utf8.RuneCountInString(name) > MaxNameLength:
		return domain.NewValidationErrorWithValue("name", "is too long", utf8.RuneCountInString(name))
	case numerology.NameValue(name, numerology.AllLetters) == 0:
		return domain.NewValidationError("name", "must contain at least one letter A-Z")
	case dob == "":
		return domain.NewValidationError("dob", "is required")
	}

	if err := validate.Var(dob, "datetime="+domain.DateLayout); err != nil {
		return domain.NewValidationErrorWithValue("dob", "must be a date in YYYY-MM-DD format", dob)
	}

	parsed, _ := time.Parse(domain.DateLayout, dob)
	if parsed.After(now) {
		return domain.NewValidationErrorWithValue("dob", "must not be in the future", dob)
	}

	return nil
}

// validateCredentials checks a registration request.
func validateCredentials(email, password string) error {
	if err := validate.Var(email, "required,email,max=254"); err != nil {
		return domain.NewValidationError("email", "must be a valid email address")
	}

	switch {
	case len(password) < MinPasswordLength:
		return domain.NewValidationError("password", "must be at least 8 characters")
	case len(password) > MaxPasswordLength:
		return domain.NewValidationError("password", "must be at most 72 bytes")
	}

	return nil
}
