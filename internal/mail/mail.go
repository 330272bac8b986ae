// Package mail is the outbound email transport. Callers depend on the
// Sender interface; the SMTP implementation lives in smtp.go.
package mail

import (
	"context"
	"errors"
)

var ErrDeliveryFailed = errors.New("email delivery failed")

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}
