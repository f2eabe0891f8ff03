// Package mail delivers transactional email over SMTP.
package mail

import (
	"crypto/tls"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"hackathon-server/internal/config"
)

// Sender delivers email through the configured SMTP relay. Delivery first
// tries STARTTLS on the configured port and falls back to implicit SSL on
// 465, since providers differ on which one they accept.
type Sender struct {
	cfg    config.EmailConfig
	logger *zap.Logger
}

// NewSender creates an SMTP sender.
func NewSender(cfg config.EmailConfig, logger *zap.Logger) *Sender {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &Sender{cfg: cfg, logger: logger}
}

// Send delivers one HTML message, retrying up to MaxRetries times.
func (s *Sender) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.cfg.SenderEmail, s.cfg.SenderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		lastErr = s.deliver(msg)
		if lastErr == nil {
			s.logger.Info("email sent",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Int("attempt", attempt))
			return nil
		}
		s.logger.Warn("email delivery attempt failed",
			zap.String("to", to),
			zap.Int("attempt", attempt),
			zap.Error(lastErr))
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	return fmt.Errorf("failed to send email to %s after %d attempts: %w", to, s.cfg.MaxRetries, lastErr)
}

func (s *Sender) deliver(msg *gomail.Message) error {
	dialer := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.Username, s.cfg.Password)
	dialer.TLSConfig = &tls.Config{ServerName: s.cfg.SMTPHost}

	err := dialer.DialAndSend(msg)
	if err == nil {
		return nil
	}
	if s.cfg.SMTPPort == 465 {
		return err
	}

	// STARTTLS refused, retry with implicit SSL on 465.
	ssl := gomail.NewDialer(s.cfg.SMTPHost, 465, s.cfg.Username, s.cfg.Password)
	ssl.SSL = true
	ssl.TLSConfig = &tls.Config{ServerName: s.cfg.SMTPHost}
	return ssl.DialAndSend(msg)
}
