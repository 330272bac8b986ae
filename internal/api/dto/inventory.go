package dto

import (
	"time"

	"github.com/praveennqumar/blood-bridge/internal/api/validation"
	"github.com/praveennqumar/blood-bridge/internal/database/models"
)

type CreateInventoryRequest struct {
	Email         string `json:"email"`
	InventoryType string `json:"inventoryType"`
	BloodGroup    string `json:"bloodGroup"`
	Quantity      int    `json:"quantity"`
}

func (r CreateInventoryRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	} else if !validation.IsValidEmail(r.Email) {
		errors["email"] = "Invalid email format"
	}
	if !validation.IsValidInventoryType(r.InventoryType) {
		errors["inventoryType"] = "Inventory type must be in or out"
	}
	if !validation.IsValidBloodGroup(r.BloodGroup) {
		errors["bloodGroup"] = "Invalid blood group"
	}
	if r.Quantity <= 0 {
		errors["quantity"] = "Quantity must be positive"
	}

	return errors
}

type InventoryDTO struct {
	ID            string   `json:"id"`
	InventoryType string   `json:"inventoryType"`
	BloodGroup    string   `json:"bloodGroup"`
	Quantity      int      `json:"quantity"`
	Email         string   `json:"email"`
	Organisation  string   `json:"organisation"`
	Donor         *UserDTO `json:"donor,omitempty"`
	Hospital      *UserDTO `json:"hospital,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

func InventoryToDTO(inv *models.Inventory) InventoryDTO {
	d := InventoryDTO{
		ID:            inv.ID.String(),
		InventoryType: string(inv.InventoryType),
		BloodGroup:    inv.BloodGroup,
		Quantity:      inv.Quantity,
		Email:         inv.Email,
		Organisation:  inv.OrganisationID.String(),
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
	}
	if inv.Donor != nil {
		u := UserToDTO(inv.Donor)
		d.Donor = &u
	}
	if inv.Hospital != nil {
		u := UserToDTO(inv.Hospital)
		d.Hospital = &u
	}
	return d
}

type InventoryResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Inventory InventoryDTO `json:"inventory"`
}

type InventoryListResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Inventory []InventoryDTO `json:"inventory"`
}
