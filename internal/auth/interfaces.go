package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/praveennqumar/blood-bridge/internal/database/models"
)

// Authenticator defines the credential-store and login operations.
type Authenticator interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, input LoginInput) (*AuthResponse, error)
	ResetPassword(ctx context.Context, email, newPassword string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// OTPManager defines one-time-code issuance and verification.
type OTPManager interface {
	Issue(ctx context.Context, email string) (*models.EmailOTP, error)
	Verify(ctx context.Context, email, submitted string) error
}

// TokenService defines session token operations.
type TokenService interface {
	GenerateToken(userID uuid.UUID, role models.Role) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Compile-time interface satisfaction checks
var (
	_ Authenticator = (*Service)(nil)
	_ OTPManager    = (*OTPService)(nil)
	_ TokenService  = (*JWTService)(nil)
)
