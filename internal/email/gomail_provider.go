package email

import (
	"fmt"

	"delivery_management/internal/config"

	"gopkg.in/gomail.v2"
)

// GomailProvider sends email over SMTP via gomail.
type GomailProvider struct {
	cfg *config.Config
}

func NewGomailProvider(cfg *config.Config) *GomailProvider {
	return &GomailProvider{cfg: cfg}
}

func (p *GomailProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
