package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/praveennqumar/blood-bridge/pkg/config"
)

// SMTPSender delivers mail over implicit TLS (port 465 style). Every
// failure is wrapped in ErrDeliveryFailed so callers can distinguish
// transport trouble from their own errors.
type SMTPSender struct {
	addr     string
	host     string
	username string
	password string
	from     string
}

func NewSMTPSender(cfg *config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		addr:     cfg.Addr(),
		host:     cfg.Host,
		username: cfg.User,
		password: cfg.Password,
		from:     cfg.From,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := s.send(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

func (s *SMTPSender) send(msg Message) error {
	body := []byte(
		fmt.Sprintf("From: %s\r\n", s.from) +
			fmt.Sprintf("To: %s\r\n", msg.To) +
			fmt.Sprintf("Subject: %s\r\n", msg.Subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			msg.HTML,
	)

	conn, err := tls.Dial("tcp", s.addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return err
	}

	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(msg.To); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	return w.Close()
}

var _ Sender = (*SMTPSender)(nil)
