package validator

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("card_expiry", validateCardExpiry)

	return validator
}

// validateCardExpiry accepts MM/YY card expiration dates that are not in
// the past. The last day of the stated month still counts as valid.
func validateCardExpiry(fl validator.FieldLevel) bool {
	expiry, err := time.Parse("01/06", fl.Field().String())
	if err != nil {
		return false
	}

	endOfMonth := expiry.AddDate(0, 1, 0)

	return time.Now().Before(endOfMonth)
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", err.Param())
	case "numeric":
		return "must contain only digits"
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", err.Param())
	case "credit_card":
		return "must be a valid card number"
	case "card_expiry":
		return "must be a MM/YY date that is not in the past"
	default:
		return "is invalid"
	}
}
