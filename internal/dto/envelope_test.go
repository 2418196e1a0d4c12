package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBindingValidator mirrors gin's validator setup, which reads the
// "binding" struct tag.
func newBindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func fieldErrorMap(resp Response) map[string]string {
	out := make(map[string]string, len(resp.Errors))
	for _, fe := range resp.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestValidationFailedContactMessages(t *testing.T) {
	v := newBindingValidator()
	err := v.Struct(ContactRequest{
		Name:    "G",
		Email:   "not-an-email",
		Subject: "Hi",
		Type:    "spam",
		Message: "short",
	})
	require.Error(t, err)

	resp := ValidationFailed(err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)

	fields := fieldErrorMap(resp)
	assert.Equal(t, "Name must be at least 2 characters", fields["name"])
	assert.Equal(t, "Please enter a valid email address", fields["email"])
	assert.Equal(t, "Subject must be at least 5 characters", fields["subject"])
	assert.Equal(t, "Message must be at least 10 characters", fields["message"])
	assert.Contains(t, fields["type"], "Invalid enum value")
}

func TestValidationFailedRegistrationMessages(t *testing.T) {
	v := newBindingValidator()
	err := v.Struct(RegistrationRequest{
		FullName:          "A",
		Email:             "ada@example.com",
		PhoneNumber:       "123",
		YearsOfExperience: new(int),
		LearningGoals:     []string{},
		CurrentSkills:     []string{"JavaScript"},
		Motivation:        "too short",
		Availability:      []string{"Weekends"},
	})
	require.Error(t, err)

	fields := fieldErrorMap(ValidationFailed(err))
	assert.Equal(t, "Full name must be at least 2 characters", fields["fullName"])
	assert.Equal(t, "Please enter a valid phone number", fields["phoneNumber"])
	assert.Equal(t, "Please select at least one learning goal", fields["learningGoals"])
	assert.Equal(t, "Please tell us more about your motivation (at least 50 characters)", fields["motivation"])
}

func TestRegistrationQuizScoreIsUnconstrained(t *testing.T) {
	v := newBindingValidator()
	score := 150
	err := v.Struct(RegistrationRequest{
		FullName:          "Ada Lovelace",
		Email:             "ada@example.com",
		PhoneNumber:       "0123456789",
		YearsOfExperience: new(int),
		LearningGoals:     []string{"Web Development"},
		CurrentSkills:     []string{"JavaScript"},
		Motivation:        "I want to become a professional developer and build things that matter.",
		Availability:      []string{"Weekends"},
		QuizScore:         &score,
	})
	assert.NoError(t, err)
}

func TestValidationFailedMissingFields(t *testing.T) {
	v := newBindingValidator()
	err := v.Struct(NewsletterRequest{})
	require.Error(t, err)

	fields := fieldErrorMap(ValidationFailed(err))
	assert.Equal(t, "Required", fields["email"])
}

func TestValidationFailedNonValidatorError(t *testing.T) {
	resp := ValidationFailed(errors.New("unexpected EOF"))
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "body", resp.Errors[0].Field)
}
