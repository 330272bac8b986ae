package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/praveennqumar/blood-bridge/internal/api/dto"
	"github.com/praveennqumar/blood-bridge/internal/api/middleware"
	"github.com/praveennqumar/blood-bridge/internal/auth"
	"github.com/praveennqumar/blood-bridge/internal/database/models"
	"github.com/praveennqumar/blood-bridge/internal/mail"
	"github.com/praveennqumar/blood-bridge/internal/tasks"
)

type AuthHandler struct {
	authService *auth.Service
	otpService  *auth.OTPService
	asynqClient *asynq.Client
	logger      *slog.Logger
}

func NewAuthHandler(authService *auth.Service, otpService *auth.OTPService, asynqClient *asynq.Client, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		otpService:  otpService,
		asynqClient: asynqClient,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.FailWith("Validation failed", errs))
		return
	}

	user, err := h.authService.Register(r.Context(), auth.RegisterInput{
		Email:            req.Email,
		Password:         req.Password,
		Role:             models.Role(req.Role),
		Name:             req.Name,
		OrganisationName: req.OrganisationName,
		HospitalName:     req.HospitalName,
		Address:          req.Address,
		Phone:            req.Phone,
		Website:          req.Website,
	})

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			// Duplicates are a 200 failure envelope, not a 409;
			// clients branch on the success flag.
			writeJSON(w, http.StatusOK, dto.Fail("User already exists"))
		default:
			h.logger.Error("registration failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, dto.Fail("Registration failed"))
		}
		return
	}

	h.enqueueMail(tasks.NotificationMailPayload{
		To:      user.Email,
		Subject: "Welcome to Blood Bridge",
		HTML:    fmt.Sprintf("<h1>Welcome, %s!</h1><p>Your %s account is ready.</p>", user.DisplayName(), user.Role),
	})

	writeJSON(w, http.StatusCreated, dto.UserResponse{
		Success: true,
		Message: "User registered successfully",
		User:    dto.UserToDTO(user),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.FailWith("Validation failed", errs))
		return
	}

	resp, err := h.authService.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})

	if err != nil {
		// Unknown user is a 404; role and password failures are
		// 500 envelopes. Clients depend on this mapping.
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.Fail("User not found"))
		case errors.Is(err, auth.ErrRoleMismatch):
			writeJSON(w, http.StatusInternalServerError, dto.Fail("Role does not match"))
		case errors.Is(err, auth.ErrInvalidPassword):
			writeJSON(w, http.StatusInternalServerError, dto.Fail("Invalid password"))
		default:
			h.logger.Error("login failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, dto.Fail("Login failed"))
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   resp.Token,
		User:    dto.UserToDTO(resp.User),
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.FailWith("Validation failed", errs))
		return
	}

	user, err := h.authService.ResetPassword(r.Context(), req.Email, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.Fail("User not found"))
		default:
			h.logger.Error("password reset failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, dto.Fail("Password reset failed"))
		}
		return
	}

	h.enqueueMail(tasks.NotificationMailPayload{
		To:      user.Email,
		Subject: "Your Blood Bridge password was changed",
		HTML:    "<p>Your password was just reset. If this wasn't you, reset it again immediately.</p>",
	})

	writeJSON(w, http.StatusOK, dto.UserResponse{
		Success: true,
		Message: "Password reset successfully",
		User:    dto.UserToDTO(user),
	})
}

func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Fail("Unable to get current user"))
		return
	}

	writeJSON(w, http.StatusOK, dto.UserResponse{
		Success: true,
		Message: "User fetched successfully",
		User:    dto.UserToDTO(user),
	})
}

func (h *AuthHandler) SendMail(w http.ResponseWriter, r *http.Request) {
	var req dto.SendMailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.FailWith("Validation failed", errs))
		return
	}

	_, err := h.otpService.Issue(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mail.ErrDeliveryFailed) {
			// The OTP record is already persisted and stays valid;
			// only the delivery is reported as failed.
			h.logger.Error("otp delivery failed", "email", req.Email, "error", err)
			writeJSON(w, http.StatusInternalServerError, dto.Fail("Email failed"))
			return
		}
		h.logger.Error("otp issuance failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.Fail("Unable to send OTP"))
		return
	}

	writeJSON(w, http.StatusOK, dto.Response{
		Success: true,
		Message: "Email sent successfully",
	})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.FailWith("Validation failed", errs))
		return
	}

	if err := h.otpService.Verify(r.Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, auth.ErrNoOtpIssued):
			writeJSON(w, http.StatusBadRequest, dto.Fail("No OTP issued for this email"))
		case errors.Is(err, auth.ErrOtpExpired):
			writeJSON(w, http.StatusBadRequest, dto.Fail("OTP expired"))
		case errors.Is(err, auth.ErrOtpMismatch):
			writeJSON(w, http.StatusBadRequest, dto.Fail("OTP does not match"))
		default:
			h.logger.Error("otp verification failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, dto.Fail("Unable to verify OTP"))
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.Response{
		Success: true,
		Message: "OTP verified successfully",
	})
}

// enqueueMail queues a best-effort notification. The queue being down
// never fails the request.
func (h *AuthHandler) enqueueMail(payload tasks.NotificationMailPayload) {
	if h.asynqClient == nil {
		return
	}
	task, err := tasks.NewNotificationMailTask(payload)
	if err != nil {
		h.logger.Error("building mail task", "error", err)
		return
	}
	if _, err := h.asynqClient.Enqueue(task); err != nil {
		h.logger.Warn("enqueueing mail task", "to", payload.To, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
