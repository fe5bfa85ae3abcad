package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError menerjemahkan error binding menjadi AppError dengan
// pesan per-tag. Hanya error pertama yang dilaporkan.
func MapValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "email":
		return invalidWith(field, "must be a valid email address")
	case "uuid":
		return invalidWith(field, "must be a valid UUID")
	case "datetime":
		return invalidWith(field, fmt.Sprintf("must match the %s format", e.Param()))
	case "oneof":
		return invalidWith(field, fmt.Sprintf("must be one of: %s", e.Param()))
	case "min":
		return invalidWith(field, fmt.Sprintf("must be at least %s", e.Param()))
	case "max":
		return invalidWith(field, fmt.Sprintf("must be at most %s", e.Param()))
	default:
		return InvalidField(field)
	}
}

func invalidWith(field, constraint string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s %s", field, constraint),
		http.StatusBadRequest,
	)
}
