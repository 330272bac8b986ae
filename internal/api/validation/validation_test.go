package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"simple address", "donor@example.com", true},
		{"with plus tag", "donor+tag@example.com", true},
		{"with subdomain", "donor@mail.example.co.in", true},
		{"missing at", "donor.example.com", false},
		{"missing domain", "donor@", false},
		{"missing tld", "donor@example", false},
		{"empty", "", false},
		{"spaces", "do nor@example.com", false},
		{"too long", strings.Repeat("a", 250) + "@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"national digits", "5550100123", true},
		{"with country code", "+915550100123", true},
		{"minimum length", "1234567", true},
		{"too short", "123456", false},
		{"too long", "1234567890123456", false},
		{"letters", "555x100123", false},
		{"dashes", "555-010-0123", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPhone(tt.phone))
		})
	}
}

func TestIsValidOTP(t *testing.T) {
	tests := []struct {
		name  string
		otp   string
		valid bool
	}{
		{"six digits", "042137", true},
		{"all zeros", "000000", true},
		{"five digits", "12345", false},
		{"seven digits", "1234567", false},
		{"letters", "12a456", false},
		{"empty", "", false},
		{"leading space", " 123456", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidOTP(tt.otp))
		})
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{"admin", "donor", "organisation", "hospital"} {
		assert.True(t, IsValidRole(role), role)
	}
	for _, role := range []string{"", "Donor", "superuser", "org"} {
		assert.False(t, IsValidRole(role), role)
	}
}

func TestIsValidBloodGroup(t *testing.T) {
	for _, g := range []string{"O+", "O-", "AB+", "AB-", "A+", "A-", "B+", "B-"} {
		assert.True(t, IsValidBloodGroup(g), g)
	}
	for _, g := range []string{"", "o+", "C+", "AB", "A"} {
		assert.False(t, IsValidBloodGroup(g), g)
	}
}

func TestIsValidInventoryType(t *testing.T) {
	assert.True(t, IsValidInventoryType("in"))
	assert.True(t, IsValidInventoryType("out"))
	assert.False(t, IsValidInventoryType(""))
	assert.False(t, IsValidInventoryType("IN"))
	assert.False(t, IsValidInventoryType("transfer"))
}
