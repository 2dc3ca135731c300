package apperror

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var fieldCaser = cases.Title(language.English)

// formatFieldName turns a json field name such as birthDate or team_id into
// "Birth Date" / "Team Id" for messages.
func formatFieldName(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case r == '_':
			b.WriteRune(' ')
			prevLower = false
			continue
		case prevLower && unicode.IsUpper(r):
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r)
	}
	return fieldCaser.String(b.String())
}

// ruleMessage renders the custom and built-in tags used by the request DTOs.
func ruleMessage(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "krmobile":
		return field + " must be a Korean mobile number such as 01012345678"
	case "yyyymmdd":
		return field + " must be a date in YYYYMMDD form"
	case "uuid":
		return field + " must be a valid id"
	case "oneof":
		return field + " must be one of: " + strings.Join(strings.Fields(e.Param()), ", ")
	case "len":
		return field + " must be " + e.Param() + " characters long"
	case "max":
		return field + " must be at most " + e.Param() + " characters long"
	case "numeric":
		return field + " must contain digits only"
	default:
		return field + " is invalid"
	}
}

// MapValidationError turns the first binding failure into a field-level
// AppError. Everything else becomes a generic validation error.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeValidation, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	field := formatFieldName(e.Field())
	if e.Tag() == "required" {
		return RequiredField(field)
	}
	return InvalidField(field).
		WithMessage(ruleMessage(field, e)).
		WithDetails(map[string]string{
			"field": e.Field(),
			"rule":  e.Tag(),
		})
}
