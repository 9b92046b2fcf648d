package utils

import (
	"regexp"
	"strings"
)

var (
	// Indian mobile numbers are 10 digits starting with 6-9
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w{2,}$`)
	namePattern  = regexp.MustCompile(`^[A-Za-z ]{2,50}$`)
)

// IsValidName checks that a person's name contains only letters and spaces
// and is between 2 and 50 characters long.
func IsValidName(name string) bool {
	return namePattern.MatchString(strings.TrimSpace(name))
}

// IsValidPhone checks that a phone number is a valid 10-digit Indian mobile number.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// IsValidEmail checks that an email address has a plausible shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsNotEmpty checks that a string contains at least one non-whitespace character.
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsInRange checks that a value lies within [min, max].
func IsInRange(value, min, max int) bool {
	return value >= min && value <= max
}
