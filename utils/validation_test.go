package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/api/models"
)

func validInput() models.ContactMessageCreate {
	return models.ContactMessageCreate{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "I would like to get in touch.",
	}
}

func TestValidateContactMessage_TrimsAllFields(t *testing.T) {
	input := models.ContactMessageCreate{
		Name:    "  Jane Doe  ",
		Email:   "\tjane@example.com\n",
		Subject: " Hello ",
		Message: "  I would like to get in touch.  ",
	}

	normalized, vErr := ValidateContactMessage(input)
	require.Nil(t, vErr)

	assert.Equal(t, "Jane Doe", normalized.Name)
	assert.Equal(t, "jane@example.com", normalized.Email)
	assert.Equal(t, "Hello", normalized.Subject)
	assert.Equal(t, "I would like to get in touch.", normalized.Message)
}

func TestValidateContactMessage_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.ContactMessageCreate)
		wantField string
	}{
		{
			name:      "empty name",
			mutate:    func(m *models.ContactMessageCreate) { m.Name = "" },
			wantField: "name",
		},
		{
			name:      "whitespace-only name",
			mutate:    func(m *models.ContactMessageCreate) { m.Name = "   " },
			wantField: "name",
		},
		{
			name:      "name too long",
			mutate:    func(m *models.ContactMessageCreate) { m.Name = strings.Repeat("a", 101) },
			wantField: "name",
		},
		{
			name:      "empty email",
			mutate:    func(m *models.ContactMessageCreate) { m.Email = "  " },
			wantField: "email",
		},
		{
			name:      "email without at sign",
			mutate:    func(m *models.ContactMessageCreate) { m.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "subject too long",
			mutate:    func(m *models.ContactMessageCreate) { m.Subject = strings.Repeat("s", 201) },
			wantField: "subject",
		},
		{
			name:      "empty subject",
			mutate:    func(m *models.ContactMessageCreate) { m.Subject = "" },
			wantField: "subject",
		},
		{
			name:      "message too long",
			mutate:    func(m *models.ContactMessageCreate) { m.Message = strings.Repeat("m", 1001) },
			wantField: "message",
		},
		{
			name:      "empty message",
			mutate:    func(m *models.ContactMessageCreate) { m.Message = "\n\t" },
			wantField: "message",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, vErr := ValidateContactMessage(input)
			require.NotNil(t, vErr)
			assert.Equal(t, tc.wantField, vErr.Field)
		})
	}
}

func TestValidateContactMessage_BoundaryLengths(t *testing.T) {
	input := validInput()
	input.Name = strings.Repeat("n", 100)
	input.Subject = strings.Repeat("s", 200)
	input.Message = strings.Repeat("m", 1000)

	_, vErr := ValidateContactMessage(input)
	assert.Nil(t, vErr)
}

func TestValidateContactMessage_BoundsCountRunesNotBytes(t *testing.T) {
	// Multibyte text must get the full character allowance: 100 'é' runes are
	// 200 bytes but still a valid name, and a 1000-rune Japanese message is
	// 3000 bytes but still a valid message.
	input := validInput()
	input.Name = strings.Repeat("é", 100)
	input.Subject = strings.Repeat("ü", 200)
	input.Message = strings.Repeat("あ", 1000)

	_, vErr := ValidateContactMessage(input)
	assert.Nil(t, vErr)
}

func TestValidateContactMessage_MultibyteOverBoundsRejected(t *testing.T) {
	input := validInput()
	input.Message = strings.Repeat("あ", 1001)

	_, vErr := ValidateContactMessage(input)
	require.NotNil(t, vErr)
	assert.Equal(t, "message", vErr.Field)
}

func TestValidateContactMessage_TrimBeforeBoundsCheck(t *testing.T) {
	// 100 chars of content padded by whitespace must pass.
	input := validInput()
	input.Name = "  " + strings.Repeat("n", 100) + "  "

	normalized, vErr := ValidateContactMessage(input)
	require.Nil(t, vErr)
	assert.Len(t, normalized.Name, 100)
}
