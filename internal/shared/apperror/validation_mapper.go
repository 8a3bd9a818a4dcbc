package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// academic_year -> Academic Year
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts binding errors into INVALID_INPUT errors that
// name the first offending field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		details := map[string]string{"field": e.Field()}

		switch e.Tag() {
		case "required":
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s is required", formatFieldName(e.Field())),
				http.StatusBadRequest,
			).WithDetails(details)
		default:
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s is invalid", formatFieldName(e.Field())),
				http.StatusBadRequest,
			).WithDetails(details)
		}
	}

	return ErrInvalidInput.WithDetails(err.Error())
}
