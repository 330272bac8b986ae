package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/praveennqumar/blood-bridge/internal/mail"
)

type Handler struct {
	sender mail.Sender
	logger *slog.Logger
}

func NewHandler(sender mail.Sender, logger *slog.Logger) *Handler {
	return &Handler{sender: sender, logger: logger}
}

func (h *Handler) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeNotificationMail, h.HandleNotificationMail)
}

func (h *Handler) HandleNotificationMail(ctx context.Context, t *asynq.Task) error {
	var payload NotificationMailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	h.logger.Info("sending notification mail",
		"to", payload.To,
		"subject", payload.Subject,
	)

	if err := h.sender.Send(ctx, mail.Message{
		To:      payload.To,
		Subject: payload.Subject,
		HTML:    payload.HTML,
	}); err != nil {
		h.logger.Error("notification mail failed", "to", payload.To, "error", err)
		return err
	}

	return nil
}
