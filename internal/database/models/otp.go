package models

import "time"

// EmailOTP is a single issuance of a one-time code. The email is not a
// foreign key: codes are issued before the user record exists. Records
// are never deleted; expiry is evaluated at verification time, and
// verification always targets the record with the latest OtpExpiry.
type EmailOTP struct {
	Base
	Email      string    `gorm:"index;not null" json:"email"`
	Code       string    `gorm:"not null" json:"-"` // age-encrypted at rest
	OtpExpiry  time.Time `gorm:"index" json:"otp_expiry"`
	IsVerified bool      `gorm:"default:false" json:"is_verified"`
}

func (EmailOTP) TableName() string {
	return "email_otps"
}

// Expired reports whether the code can no longer be used at the given
// instant.
func (o *EmailOTP) Expired(now time.Time) bool {
	return o.OtpExpiry.Before(now)
}
