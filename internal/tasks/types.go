package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type names
const (
	TypeNotificationMail = "mailer:notification"
)

// NotificationMailPayload carries a rendered, non-critical email. OTP
// delivery never goes through the queue; the issuer has to report
// failures synchronously.
type NotificationMailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func NewNotificationMailTask(payload NotificationMailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotificationMail, data, asynq.Queue("mail")), nil
}
