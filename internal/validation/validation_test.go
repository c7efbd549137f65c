package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateName("Jane Doe"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("a", 51)))
	assert.NoError(t, ValidateName(strings.Repeat("a", 50)))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"jane@example.com",
		"jane.doe+tag@sub.example.co.uk",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"jane@",
		"jane@example",
		strings.Repeat("a", 250) + "@example.com",
	}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), email)
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 129)))
}
