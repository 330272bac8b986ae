package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/praveennqumar/blood-bridge/internal/database/models"
	"github.com/praveennqumar/blood-bridge/internal/mail"
	"github.com/praveennqumar/blood-bridge/pkg/crypto"
	"gorm.io/gorm"
)

var (
	ErrNoOtpIssued = errors.New("no otp issued for this email")
	ErrOtpExpired  = errors.New("otp expired")
	ErrOtpMismatch = errors.New("otp does not match")
)

const (
	otpDigits   = 6
	otpValidity = 5 * time.Minute
)

// OTPService issues and verifies one-time codes. Issuance precedes
// registration, so records are keyed by bare email. Codes are
// age-encrypted before they touch the database and decrypted only for
// the exact-string comparison during verification.
type OTPService struct {
	db        *gorm.DB
	encryptor *crypto.Encryptor
	sender    mail.Sender
}

func NewOTPService(db *gorm.DB, encryptor *crypto.Encryptor, sender mail.Sender) *OTPService {
	return &OTPService{db: db, encryptor: encryptor, sender: sender}
}

// Issue generates a fresh code, persists its record and dispatches it
// by email. The record and the send are deliberately not coupled: a
// delivery failure is returned to the caller, but the persisted code
// stays valid. Repeated issuance just stacks additional records for
// the same address.
func (s *OTPService) Issue(ctx context.Context, email string) (*models.EmailOTP, error) {
	code, err := generateOTP()
	if err != nil {
		return nil, fmt.Errorf("generating otp: %w", err)
	}

	sealed, err := s.encryptor.EncryptString(code)
	if err != nil {
		return nil, fmt.Errorf("sealing otp: %w", err)
	}

	otp := models.EmailOTP{
		Email:     email,
		Code:      sealed,
		OtpExpiry: time.Now().Add(otpValidity),
	}
	if err := s.db.WithContext(ctx).Create(&otp).Error; err != nil {
		return nil, err
	}

	err = s.sender.Send(ctx, mail.Message{
		To:      email,
		Subject: "Your Blood Bridge verification code",
		HTML:    fmt.Sprintf("<h1>Your verification code is %s. It expires in 5 minutes.</h1>", code),
	})
	if err != nil {
		return &otp, err
	}

	return &otp, nil
}

// Verify checks a submitted code against the most recently issued
// record for the email. Latest is resolved by otp_expiry, which is
// issuance time plus a fixed offset and therefore an equivalent sort
// key. Expiry is a derived predicate, never a stored state, and a
// verified record is not single-use: re-verifying an unexpired code
// succeeds again.
func (s *OTPService) Verify(ctx context.Context, email, submitted string) error {
	var otp models.EmailOTP
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		Order("otp_expiry DESC").
		First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoOtpIssued
		}
		return err
	}

	if otp.Expired(time.Now()) {
		return ErrOtpExpired
	}

	code, err := s.encryptor.DecryptString(otp.Code)
	if err != nil {
		return fmt.Errorf("unsealing otp: %w", err)
	}

	// Exact string equality, no normalization.
	if submitted != code {
		return ErrOtpMismatch
	}

	return s.db.WithContext(ctx).Model(&otp).Update("is_verified", true).Error
}

// generateOTP returns a uniformly distributed fixed-length numeric
// code, zero-padded on the left.
func generateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
