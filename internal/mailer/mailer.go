package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"os"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	SendPasswordResetEmail(ctx context.Context, to, name, code string, expiresInMinutes int) error
}

type smtpMailer struct {
	host      string
	port      string
	username  string
	password  string
	fromName  string
	fromEmail string
	logger    *zap.Logger
}

func NewSMTPMailerFromEnv(logger ...*zap.Logger) Mailer {
	l := zap.L().Named("mailer.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer.smtp")
	}

	fromEmail := os.Getenv("SMTP_FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = os.Getenv("SMTP_USER")
	}

	return &smtpMailer{
		host:      os.Getenv("SMTP_HOST"),
		port:      os.Getenv("SMTP_PORT"),
		username:  os.Getenv("SMTP_USER"),
		password:  os.Getenv("SMTP_PASSWORD"),
		fromName:  os.Getenv("SMTP_FROM_NAME"),
		fromEmail: fromEmail,
		logger:    l,
	}
}

func (m *smtpMailer) SendPasswordResetEmail(ctx context.Context, to, name, code string, expiresInMinutes int) error {
	subject := "Your Password Reset Code - HrApp"
	body := resetEmailBody(code, expiresInMinutes)

	msg := fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.fromName, m.fromEmail, to, subject, body,
	)

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.fromEmail, []string{to}, []byte(msg))
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			m.logger.Error("send password reset email failed",
				zap.String("to", to),
				zap.Error(err),
			)
			return err
		}
	}

	m.logger.Info("password reset email sent", zap.String("to", to))
	return nil
}

func resetEmailBody(code string, expiresInMinutes int) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #f8f9fa; padding: 20px; text-align: center; border-radius: 5px;"><h2>Password Reset Request</h2></div>
    <p>Hello,</p>
    <p>You requested to reset your password. Use the verification code below to proceed:</p>
    <div style="font-size: 32px; font-weight: bold; color: #007bff; text-align: center; margin: 30px 0; padding: 20px; background-color: #f8f9fa; border-radius: 5px; letter-spacing: 5px;">%s</div>
    <div style="background-color: #fff3cd; border: 1px solid #ffeaa7; color: #856404; padding: 15px; border-radius: 5px; margin: 20px 0;"><strong>Important:</strong> This code will expire in %d minutes. Do not share this code with anyone.</div>
    <p>If you didn't request this password reset, please ignore this email.</p>
    <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; text-align: center; color: #666; font-size: 14px;">
        <p>This is an automated message. Please do not reply to this email.</p>
        <p>&copy; %d HrApp. All rights reserved.</p>
    </div>
</body>
</html>`, code, expiresInMinutes, time.Now().Year())
}
