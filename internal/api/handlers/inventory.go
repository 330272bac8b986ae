package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/praveennqumar/blood-bridge/internal/api/dto"
	"github.com/praveennqumar/blood-bridge/internal/api/middleware"
	"github.com/praveennqumar/blood-bridge/internal/database/models"
	"gorm.io/gorm"
)

// InventoryHandler records blood movements. It consumes the session
// guard's derived identity as its authorization input; the acting
// organisation is whoever holds the token.
type InventoryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewInventoryHandler(db *gorm.DB, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{db: db, logger: logger}
}

// Create handles POST /api/v1/inventory/create. "in" movements must
// name a donor account, "out" movements a hospital account.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.FailWith("Validation failed", errs))
		return
	}

	var user models.User
	if err := h.db.WithContext(r.Context()).Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusInternalServerError, dto.Fail("User not found"))
			return
		}
		h.logger.Error("inventory user lookup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.Fail("Unable to create inventory"))
		return
	}

	invType := models.InventoryType(req.InventoryType)
	if invType == models.InventoryIn && user.Role != models.RoleDonor {
		writeJSON(w, http.StatusInternalServerError, dto.Fail("Not a donor account"))
		return
	}
	if invType == models.InventoryOut && user.Role != models.RoleHospital {
		writeJSON(w, http.StatusInternalServerError, dto.Fail("Not a hospital"))
		return
	}

	inv := models.Inventory{
		InventoryType:  invType,
		BloodGroup:     req.BloodGroup,
		Quantity:       req.Quantity,
		Email:          req.Email,
		OrganisationID: middleware.GetUserID(r.Context()),
	}
	switch invType {
	case models.InventoryIn:
		inv.DonorID = &user.ID
	case models.InventoryOut:
		inv.HospitalID = &user.ID
	}

	if err := h.db.WithContext(r.Context()).Create(&inv).Error; err != nil {
		h.logger.Error("inventory create failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.Fail("Unable to create inventory"))
		return
	}

	writeJSON(w, http.StatusCreated, dto.InventoryResponse{
		Success:   true,
		Message:   "Inventory created successfully",
		Inventory: dto.InventoryToDTO(&inv),
	})
}

// List handles GET /api/v1/inventory/get-inventory: the caller's
// records, newest first, with the donor/hospital accounts resolved.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetUserID(r.Context())

	var records []models.Inventory
	err := h.db.WithContext(r.Context()).
		Where("organisation_id = ?", orgID).
		Preload("Donor").
		Preload("Hospital").
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		h.logger.Error("inventory list failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.Fail("Unable to list inventory"))
		return
	}

	out := make([]dto.InventoryDTO, 0, len(records))
	for i := range records {
		out = append(out, dto.InventoryToDTO(&records[i]))
	}

	writeJSON(w, http.StatusOK, dto.InventoryListResponse{
		Success:   true,
		Message:   "Records fetched successfully",
		Inventory: out,
	})
}
