package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the SMTP server configuration.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func (c SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.Port == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// SMTPProvider delivers mail through gomail.
type SMTPProvider struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config SMTPConfig) (Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = m.FormatAddress(p.config.FromEmail, p.config.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendLeaveDecision(to, name, status, rejectReason string) error {
	body := fmt.Sprintf("Hi %s,\n\nYour leave request has been %s.", name, status)
	if rejectReason != "" {
		body += fmt.Sprintf("\nReason: %s", rejectReason)
	}
	body += "\n\nNameDesk"

	return p.Send(&Email{
		To:      []string{to},
		Subject: fmt.Sprintf("Leave request %s", status),
		Body:    body,
	})
}

func (p *SMTPProvider) SendWelcome(to, name, username string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour NameDesk account is ready. Sign in with username %q and the password given to you by your administrator.\n\nNameDesk",
		name, username,
	)

	return p.Send(&Email{
		To:      []string{to},
		Subject: "Welcome to NameDesk",
		Body:    body,
	})
}

func (p *SMTPProvider) Close() error {
	// gomail dials per message, nothing to tear down
	return nil
}
