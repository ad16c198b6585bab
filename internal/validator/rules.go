package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Custom rules used by the DTOs.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("datestr", validateDateStr); err != nil {
		return err
	}
	if err := v.RegisterValidation("babygender", validateBabyGender); err != nil {
		return err
	}
	return nil
}

// datestr: a calendar date as YYYY-MM-DD. Leave ranges are stored as plain
// date strings, no timezone.
func validateDateStr(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// babygender: gender may be unknown before birth.
func validateBabyGender(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "male", "female", "unknown":
		return true
	}
	return false
}
