package dto

import (
	"time"

	"github.com/praveennqumar/blood-bridge/internal/api/validation"
	"github.com/praveennqumar/blood-bridge/internal/database/models"
)

type RegisterRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	Name             string `json:"name,omitempty"`
	OrganisationName string `json:"organisationName,omitempty"`
	HospitalName     string `json:"hospitalName,omitempty"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Website          string `json:"website,omitempty"`
}

// Validate enforces the per-role profile variant: admins and donors
// register a personal name, organisations an organisation name,
// hospitals a hospital name. Exactly one of the three is accepted.
func (r RegisterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	} else if !validation.IsValidEmail(r.Email) {
		errors["email"] = "Invalid email format"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	} else if len(r.Password) < 6 {
		errors["password"] = "Password must be at least 6 characters"
	}
	if !validation.IsValidRole(r.Role) {
		errors["role"] = "Role must be admin, donor, organisation or hospital"
		return errors
	}

	switch models.Role(r.Role) {
	case models.RoleAdmin, models.RoleDonor:
		if r.Name == "" {
			errors["name"] = "Name is required"
		}
		if r.OrganisationName != "" || r.HospitalName != "" {
			errors["role"] = "Only name may be set for this role"
		}
	case models.RoleOrganisation:
		if r.OrganisationName == "" {
			errors["organisationName"] = "Organisation name is required"
		}
		if r.Name != "" || r.HospitalName != "" {
			errors["role"] = "Only organisationName may be set for this role"
		}
	case models.RoleHospital:
		if r.HospitalName == "" {
			errors["hospitalName"] = "Hospital name is required"
		}
		if r.Name != "" || r.OrganisationName != "" {
			errors["role"] = "Only hospitalName may be set for this role"
		}
	}

	if r.Phone != "" && !validation.IsValidPhone(r.Phone) {
		errors["phone"] = "Invalid phone number"
	}

	return errors
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	}
	if !validation.IsValidRole(r.Role) {
		errors["role"] = "Role must be admin, donor, organisation or hospital"
	}

	return errors
}

type ForgotPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

func (r ForgotPasswordRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.NewPassword == "" {
		errors["newPassword"] = "New password is required"
	} else if len(r.NewPassword) < 6 {
		errors["newPassword"] = "Password must be at least 6 characters"
	}

	return errors
}

type SendMailRequest struct {
	Email string `json:"email"`
}

func (r SendMailRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	} else if !validation.IsValidEmail(r.Email) {
		errors["email"] = "Invalid email format"
	}

	return errors
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (r VerifyOTPRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.OTP == "" {
		errors["otp"] = "OTP is required"
	} else if !validation.IsValidOTP(r.OTP) {
		errors["otp"] = "OTP must be a 6-digit code"
	}

	return errors
}

type UserDTO struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	Name             string `json:"name,omitempty"`
	OrganisationName string `json:"organisationName,omitempty"`
	HospitalName     string `json:"hospitalName,omitempty"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Website          string `json:"website,omitempty"`
	CreatedAt        string `json:"created_at"`
}

func UserToDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:               u.ID.String(),
		Email:            u.Email,
		Role:             string(u.Role),
		Name:             u.Name,
		OrganisationName: u.OrganisationName,
		HospitalName:     u.HospitalName,
		Address:          u.Address,
		Phone:            u.Phone,
		Website:          u.Website,
		CreatedAt:        u.CreatedAt.Format(time.RFC3339),
	}
}

type UserResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

type LoginResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}
