package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/praveennqumar/blood-bridge/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrRoleMismatch    = errors.New("role does not match")
	ErrInvalidPassword = errors.New("invalid password")
)

// Service owns credential records: registration, lookup, password
// reset and login. Session tokens are minted by the embedded JWT
// service on successful login.
type Service struct {
	db  *gorm.DB
	jwt *JWTService
}

func NewService(db *gorm.DB, jwt *JWTService) *Service {
	return &Service{db: db, jwt: jwt}
}

type RegisterInput struct {
	Email            string
	Password         string
	Role             models.Role
	Name             string
	OrganisationName string
	HospitalName     string
	Address          string
	Phone            string
	Website          string
}

type LoginInput struct {
	Email    string
	Password string
	Role     models.Role
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates a credential record. The duplicate check here is
// read-then-write; the unique index on users.email is what actually
// rejects a concurrent registration for the same address.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, ErrUserExists
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:            input.Email,
		PasswordHash:     hash,
		Role:             input.Role,
		Name:             input.Name,
		OrganisationName: input.OrganisationName,
		HospitalName:     input.HospitalName,
		Address:          input.Address,
		Phone:            input.Phone,
		Website:          input.Website,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Login authenticates credentials plus the client-claimed role. The
// claimed role must agree with the stored one; it is deliberately not
// inferred server-side. Check order is fixed: unknown user, then role,
// then password.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Role != input.Role {
		return nil, ErrRoleMismatch
	}

	if !CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidPassword
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token: token,
		User:  &user,
	}, nil
}

// ResetPassword replaces the stored hash. Session tokens issued before
// the reset stay valid until they expire; there is no revocation list.
func (s *Service) ResetPassword(ctx context.Context, email, newPassword string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("password_hash", hash).Error; err != nil {
		return nil, err
	}

	user.PasswordHash = hash
	return &user, nil
}

func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
