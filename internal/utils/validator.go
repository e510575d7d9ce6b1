// internal/utils/validator.go
package utils

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("adult21", validateAdult21)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateAdult21 accepts a YYYY-MM-DD birth date belonging to someone
// at least 21 years old today.
func validateAdult21(fl validator.FieldLevel) bool {
	birth, err := time.Parse("2006-01-02", fl.Field().String())
	if err != nil {
		return false
	}
	return IsOfAge(birth, time.Now(), 21)
}

// IsOfAge reports whether someone born on birth has reached minYears
// by the reference date, accounting for month and day.
func IsOfAge(birth, at time.Time, minYears int) bool {
	years := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		years--
	}
	return years >= minYears
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "datetime":
		return e.Field() + " must be a date in YYYY-MM-DD form"
	case "adult21":
		return "You must be at least 21 years old"
	default:
		return e.Field() + " is invalid"
	}
}
