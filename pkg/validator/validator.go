package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("summary_length", summaryLength)
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// notBlank rejects strings made only of whitespace
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// summaryLength accepts empty, short, medium or long in any case
func summaryLength(fl validator.FieldLevel) bool {
	_, err := entities.ParseSummaryLength(fl.Field().String())
	return err == nil
}
