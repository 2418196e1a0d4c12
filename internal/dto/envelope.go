package dto

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Response is the API envelope shared by every endpoint.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is one validation failure tied to a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// ValidationFailed converts a binding error into the envelope's field-error
// form. Non-validator errors (malformed JSON, wrong types) get a single
// body-level entry.
func ValidationFailed(err error) Response {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Response{
			Success: false,
			Message: "Validation failed",
			Errors:  []FieldError{{Field: "body", Message: "Invalid request body"}},
		}
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := jsonFieldName(fe.Field())
		fields = append(fields, FieldError{Field: field, Message: fieldMessage(field, fe)})
	}
	return Response{Success: false, Message: "Validation failed", Errors: fields}
}

// fieldMessages carries the user-facing copy per field and failed rule.
var fieldMessages = map[string]string{
	"fullName.min":      "Full name must be at least 2 characters",
	"email.email":       "Please enter a valid email address",
	"phoneNumber.min":   "Please enter a valid phone number",
	"learningGoals.min": "Please select at least one learning goal",
	"currentSkills.min": "Please select at least one current skill",
	"motivation.min":    "Please tell us more about your motivation (at least 50 characters)",
	"availability.min":  "Please select at least one availability option",
	"name.min":          "Name must be at least 2 characters",
	"subject.min":       "Subject must be at least 5 characters",
	"message.min":       "Message must be at least 10 characters",
	"type.oneof":        "Invalid enum value. Expected 'general' | 'partnership' | 'support' | 'feedback'",
}

func fieldMessage(field string, fe validator.FieldError) string {
	if msg, ok := fieldMessages[field+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
	case "max":
		return fmt.Sprintf("Number must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("Invalid value for %s", field)
	}
}

// jsonFieldName lowercases the leading rune of the struct field name, which
// matches the camelCase json tags used by every request DTO.
func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	runes := []rune(structField)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
