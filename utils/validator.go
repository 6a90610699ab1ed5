package utils

import (
	"regexp"
)

// Minimum lengths enforced on intake payloads. These mirror the rules
// the public forms apply, so the store never accepts what a form would
// reject.
const (
	MinNameLength    = 2
	MinPhoneLength   = 10
	MinSubjectLength = 2
	MinBodyLength    = 10
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateIntakeContact checks the contact fields shared by all three
// intake forms. Returns an error message, or "" when the fields pass.
// The phone rule counts characters, not digits, on purpose.
func ValidateIntakeContact(name, email, phone string) string {
	if len(name) < MinNameLength {
		return "The name must contain at least 2 characters"
	}
	if !ValidateEmail(email) {
		return "Invalid email format"
	}
	if len(phone) < MinPhoneLength {
		return "The phone number must contain at least 10 characters"
	}
	return ""
}
