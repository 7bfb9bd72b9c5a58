package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"portfolio/api/models"
)

const (
	maxNameLength    = 100
	maxSubjectLength = 200
	maxMessageLength = 1000
)

// ValidationError reports a rejected contact-form field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateContactMessage trims every field and checks the submission rules:
// name 1-100 chars, subject 1-200, message 1-1000, email non-empty and
// containing '@'. Bounds count characters, not bytes, so multibyte scripts
// get the full allowance. On success the returned payload carries the
// trimmed values.
func ValidateContactMessage(input models.ContactMessageCreate) (models.ContactMessageCreate, *ValidationError) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)

	if input.Name == "" {
		return input, &ValidationError{Field: "name", Message: "name is required"}
	}
	if utf8.RuneCountInString(input.Name) > maxNameLength {
		return input, &ValidationError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", maxNameLength)}
	}

	if input.Email == "" {
		return input, &ValidationError{Field: "email", Message: "email is required"}
	}
	if !strings.Contains(input.Email, "@") {
		return input, &ValidationError{Field: "email", Message: "email must contain '@'"}
	}

	if input.Subject == "" {
		return input, &ValidationError{Field: "subject", Message: "subject is required"}
	}
	if utf8.RuneCountInString(input.Subject) > maxSubjectLength {
		return input, &ValidationError{Field: "subject", Message: fmt.Sprintf("subject must be at most %d characters", maxSubjectLength)}
	}

	if input.Message == "" {
		return input, &ValidationError{Field: "message", Message: "message is required"}
	}
	if utf8.RuneCountInString(input.Message) > maxMessageLength {
		return input, &ValidationError{Field: "message", Message: fmt.Sprintf("message must be at most %d characters", maxMessageLength)}
	}

	return input, nil
}
