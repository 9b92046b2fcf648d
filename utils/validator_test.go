package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Simple name", "Ravi Kumar", true},
		{"Single word", "Priya", true},
		{"With surrounding spaces", "  Ravi Kumar  ", true},
		{"Too short", "R", false},
		{"Empty", "", false},
		{"Contains digits", "Ravi2", false},
		{"Contains punctuation", "Ravi-Kumar", false},
		{"At max length", "Abcdefghij Abcdefghij Abcdefghij Abcdefghij Abcdef", true},
		{"Over max length", "Abcdefghij Abcdefghij Abcdefghij Abcdefghij Abcdefg", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidName(tt.input))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Valid starting with 9", "9876543210", true},
		{"Valid starting with 6", "6123456789", true},
		{"Starts below 6", "5876543210", false},
		{"Too short", "987654321", false},
		{"Too long", "98765432100", false},
		{"Contains letters", "98765x3210", false},
		{"With surrounding spaces", " 9876543210 ", true},
		{"Empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPhone(tt.input))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Simple address", "ravi@example.com", true},
		{"With dots and dashes", "ravi.kumar@mail-server.co.in", true},
		{"Missing at sign", "ravi.example.com", false},
		{"Missing domain", "ravi@", false},
		{"One-letter TLD", "ravi@example.c", false},
		{"Empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.input))
		})
	}
}

func TestIsNotEmpty(t *testing.T) {
	assert.True(t, IsNotEmpty("gas leak near regulator"))
	assert.False(t, IsNotEmpty(""))
	assert.False(t, IsNotEmpty("   "))
	assert.False(t, IsNotEmpty("\t\n"))
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(5, 1, 10))
	assert.True(t, IsInRange(1, 1, 10))
	assert.True(t, IsInRange(10, 1, 10))
	assert.False(t, IsInRange(0, 1, 10))
	assert.False(t, IsInRange(11, 1, 10))
}
