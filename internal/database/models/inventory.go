package models

import "github.com/google/uuid"

type InventoryType string

const (
	InventoryIn  InventoryType = "in"  // donation from a donor
	InventoryOut InventoryType = "out" // issue to a hospital
)

var BloodGroups = []string{"O+", "O-", "AB+", "AB-", "A+", "A-", "B+", "B-"}

// Inventory records a movement of blood, linked to the organisation
// that recorded it. "in" movements reference the donor account, "out"
// movements the hospital account.
type Inventory struct {
	Base
	InventoryType  InventoryType `gorm:"not null" json:"inventoryType"`
	BloodGroup     string        `gorm:"not null" json:"bloodGroup"`
	Quantity       int           `gorm:"not null" json:"quantity"`
	Email          string        `gorm:"not null" json:"email"`
	OrganisationID uuid.UUID     `gorm:"type:uuid;index;not null" json:"organisation"`
	DonorID        *uuid.UUID    `gorm:"type:uuid" json:"donor,omitempty"`
	HospitalID     *uuid.UUID    `gorm:"type:uuid" json:"hospital,omitempty"`

	// Relationships
	Donor    *User `gorm:"foreignKey:DonorID" json:"donorRecord,omitempty"`
	Hospital *User `gorm:"foreignKey:HospitalID" json:"hospitalRecord,omitempty"`
}

func (Inventory) TableName() string {
	return "inventories"
}
