package mailing

import (
	"Yoriview-Backend/internal/utils"
	"fmt"
	"gopkg.in/gomail.v2"
	"html"
	"strconv"
)

type (
	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	MailConfig struct {
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	smtpMailer struct {
		config MailConfig
	}
)

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// NewMailer returns nil when no SMTP host is configured.
func NewMailer(config MailConfig) Mailer {
	if config.SMTPHost == "" {
		return nil
	}
	return &smtpMailer{config: config}
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(m.config.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP port %q: %w", m.config.SMTPPort, err)
	}
	dialer := gomail.NewDialer(
		m.config.SMTPHost,
		port,
		m.config.SMTPEmail,
		m.config.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

func WelcomeMail(nickname string) (string, string) {
	return "Welcome to Yoriview", fmt.Sprintf(
		"<p>Hi %s,</p><p>your account is ready. Scan a receipt to write your first review.</p>",
		html.EscapeString(nickname),
	)
}

func PasswordChangedMail(nickname string) (string, string) {
	return "Your Yoriview password was changed", fmt.Sprintf(
		"<p>Hi %s,</p><p>the password of your account was just changed. If this was not you, reset it immediately.</p>",
		html.EscapeString(nickname),
	)
}
