// Package email sends mail over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// Send delivers a multipart message with a plain text body and an HTML alternative.
func (s *SMTPEmailService) Send(to, subject, htmlBody, plainBody string) error {
	if to == "" {
		return fmt.Errorf("recipient address is required")
	}

	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	if htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
