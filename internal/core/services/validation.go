package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// requestValidator checks the binding tags on dto requests.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}

// validateRequest runs the binding rules of req and reports failures as ErrValidation.
func validateRequest(req any) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
}

// validateValue checks a single value against binding rules such as "required,max=255".
func validateValue(field string, value any, rules string) error {
	if err := requestValidator.Var(value, rules); err != nil {
		return fmt.Errorf("%w: %s failed %s", apperrors.ErrValidation, field, rules)
	}
	return nil
}
