package validation

import (
	"regexp"

	"github.com/praveennqumar/blood-bridge/internal/database/models"
)

var (
	// emailRegex validates email format
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// phoneRegex validates phone numbers: optional +, 7-15 digits
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

	// otpRegex validates a fixed-length numeric code
	otpRegex = regexp.MustCompile(`^[0-9]{6}$`)
)

// IsValidEmail checks if the string is a valid email format
func IsValidEmail(email string) bool {
	if len(email) > 254 {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidPhone checks if the string is a plausible phone number
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidOTP checks if the string is a well-formed one-time code
func IsValidOTP(otp string) bool {
	return otpRegex.MatchString(otp)
}

// IsValidRole checks if the string names a known account role
func IsValidRole(role string) bool {
	return models.Role(role).Valid()
}

// IsValidBloodGroup checks if the string is one of the eight groups
func IsValidBloodGroup(group string) bool {
	for _, g := range models.BloodGroups {
		if group == g {
			return true
		}
	}
	return false
}

// IsValidInventoryType checks for an "in" or "out" movement
func IsValidInventoryType(t string) bool {
	return t == string(models.InventoryIn) || t == string(models.InventoryOut)
}
