package exceptions

import (
	"clinicgate-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validationTagMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "is too short",
	"max":      "is too long",
	"datetime": "must be a valid date",
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		message, ok := validationTagMessages[firstErr.Tag()]
		if !ok {
			message = "is invalid"
		}
		return fieldName + " " + message
	}
	return constvars.ErrClientCannotProcessRequest
}
