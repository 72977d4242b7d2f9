// Package validate holds the suite's own notion of valid input shapes. These
// checks are deliberately independent of whatever the application validates;
// a mismatch between the two surfaces as a test failure and must stay visible.
package validate

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	checker = validator.New()

	// Vietnamese mobile numbers: 0 or +84 prefix, carrier digit 3/5/7/8/9,
	// eight more digits.
	phonePattern = regexp.MustCompile(`^(0|\+84)(3|5|7|8|9)\d{8}$`)

	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return checker.Var(s, "required,email") == nil
}

// Phone reports whether s is a Vietnamese mobile number.
func Phone(s string) bool {
	return phonePattern.MatchString(s)
}

// URL reports whether s parses as an absolute URL.
func URL(s string) bool {
	return checker.Var(s, "required,url") == nil
}

// PasswordStrength describes a password against the suite's rules. There is
// no single pass/fail beyond the minimum length.
type PasswordStrength struct {
	Valid          bool
	HasMinLength   bool
	HasMaxLength   bool
	HasUpperCase   bool
	HasLowerCase   bool
	HasNumber      bool
	HasSpecialChar bool
}

// Password evaluates s against the length and character-class rules.
func Password(s string) PasswordStrength {
	return PasswordStrength{
		Valid:          len(s) >= 6,
		HasMinLength:   len(s) >= 6,
		HasMaxLength:   len(s) <= 50,
		HasUpperCase:   upperPattern.MatchString(s),
		HasLowerCase:   lowerPattern.MatchString(s),
		HasNumber:      digitPattern.MatchString(s),
		HasSpecialChar: specialPattern.MatchString(s),
	}
}

// Sanitize trims s and strips angle brackets.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	return strings.NewReplacer("<", "", ">", "").Replace(s)
}
