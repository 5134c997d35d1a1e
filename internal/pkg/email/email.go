package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// MailService defines the interface for transactional email operations
type MailService interface {
	SendRegistrationConfirmation(toEmail, username, eventTitle string) error
	SendCancellationNotice(toEmail, username, eventTitle string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// MailServiceImpl implements MailService over SMTP
type MailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewMailService creates a new MailService
func NewMailService(config SMTPConfig, logger zerolog.Logger) MailService {
	return &MailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendRegistrationConfirmation sends a confirmation email after a successful event registration
func (s *MailServiceImpl) SendRegistrationConfirmation(toEmail, username, eventTitle string) error {
	subject := "Event Registration Successful"
	body := fmt.Sprintf("Hi %s, you have successfully registered for the event \"%s\".", username, eventTitle)
	return s.sendPlainTextEmail(toEmail, subject, body)
}

// SendCancellationNotice sends a notice email after a registration has been cancelled
func (s *MailServiceImpl) SendCancellationNotice(toEmail, username, eventTitle string) error {
	subject := "Event Registration Cancelled"
	body := fmt.Sprintf("Hi %s, your registration for \"%s\" has been cancelled.", username, eventTitle)
	return s.sendPlainTextEmail(toEmail, subject, body)
}

// sendPlainTextEmail sends a plain-text email to a single recipient
func (s *MailServiceImpl) sendPlainTextEmail(toEmail, subject, body string) error {
	// Without SMTP credentials, log the message instead of sending (development mode)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Str("body", body).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/plain; charset=UTF-8",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if s.config.UseTLS {
		return s.sendOverTLS(serverAddress, auth, toEmail, message)
	}

	err := smtp.SendMail(
		serverAddress,
		auth,
		s.config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// sendOverTLS delivers a message over an explicit TLS connection
func (s *MailServiceImpl) sendOverTLS(serverAddress string, auth smtp.Auth, toEmail, message string) error {
	tlsConfig := &tls.Config{
		ServerName: s.config.Host,
	}

	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create SMTP client")
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		s.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return nil
}
