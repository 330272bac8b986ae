package models

// Role determines which profile fields and inventory operations apply
// to a user.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDonor        Role = "donor"
	RoleOrganisation Role = "organisation"
	RoleHospital     Role = "hospital"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDonor, RoleOrganisation, RoleHospital:
		return true
	}
	return false
}

// User is a registered account. Exactly one of Name, OrganisationName or
// HospitalName is populated, depending on the role: admins and donors
// carry Name, organisations OrganisationName, hospitals HospitalName.
// The role is fixed at registration; there is no update path for it.
type User struct {
	Base
	Email            string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string `gorm:"not null" json:"-"`
	Role             Role   `gorm:"not null;index" json:"role"`
	Name             string `json:"name,omitempty"`
	OrganisationName string `json:"organisationName,omitempty"`
	HospitalName     string `json:"hospitalName,omitempty"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Website          string `json:"website,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName returns whichever profile field the user's role populates.
func (u *User) DisplayName() string {
	switch u.Role {
	case RoleOrganisation:
		return u.OrganisationName
	case RoleHospital:
		return u.HospitalName
	default:
		return u.Name
	}
}
