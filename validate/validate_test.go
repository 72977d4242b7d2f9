package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matchqueue/e2e/validate"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"test01@gmail.com", true},
		{"test+special@example.com", true},
		{"abc@", false},
		{"not-an-email", false},
		{"", false},
		{"a b@example.com", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validate.Email(tt.email), "email %q", tt.email)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0123456789", false}, // 1 is not a valid carrier digit
		{"0987654321", true},
		{"+84987654321", true},
		{"0387654321", true},
		{"123", false},
		{"09876543210", false}, // too long
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validate.Phone(tt.phone), "phone %q", tt.phone)
	}
}

func TestURL(t *testing.T) {
	assert.True(t, validate.URL("https://example.com/login"))
	assert.True(t, validate.URL("http://localhost:3000"))
	assert.False(t, validate.URL("not a url"))
	assert.False(t, validate.URL(""))
}

func TestPassword(t *testing.T) {
	weak := validate.Password("123")
	assert.False(t, weak.Valid)
	assert.False(t, weak.HasMinLength)
	assert.True(t, weak.HasMaxLength)
	assert.True(t, weak.HasNumber)
	assert.False(t, weak.HasUpperCase)

	strong := validate.Password("Test@123456")
	assert.True(t, strong.Valid)
	assert.True(t, strong.HasMinLength)
	assert.True(t, strong.HasUpperCase)
	assert.True(t, strong.HasLowerCase)
	assert.True(t, strong.HasNumber)
	assert.True(t, strong.HasSpecialChar)

	long := validate.Password(string(make([]byte, 60)))
	assert.False(t, long.HasMaxLength)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, `scriptalert("XSS")/script`, validate.Sanitize(`<script>alert("XSS")</script>`))
	assert.Equal(t, "hello", validate.Sanitize("  hello  "))
	assert.Equal(t, "", validate.Sanitize(""))
}
