package email

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// smtpPlaceholderPassword is the unreplaced template value shipped in
// .env examples; sending with it would only produce auth failures.
const smtpPlaceholderPassword = "REPLACE_WITH_BREVO_SMTP_KEY"

type smtpSender struct {
	cfg Config
}

func (s *smtpSender) Send(subject, htmlBody string, recipients []string) error {
	to, err := cleanRecipients("smtp", recipients)
	if err != nil {
		return err
	}

	password := strings.TrimSpace(s.cfg.SMTP.Password)
	if password == "" || password == smtpPlaceholderPassword {
		return &ConfigurationError{Provider: "smtp", Reason: "EMAIL_HOST_PASSWORD is missing or a placeholder"}
	}

	fromName, fromAddr := ParseFromAddress(s.cfg.DefaultFrom)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", fromName, fromAddr))
	msg.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	hostPort := fmt.Sprintf("%s:%d", s.cfg.SMTP.Host, s.cfg.SMTP.Port)
	conn, err := net.DialTimeout("tcp", hostPort, s.cfg.Timeout)
	if err != nil {
		return &DispatchError{Provider: "smtp", Err: err}
	}
	// Bound the whole SMTP conversation, not only the dial.
	_ = conn.SetDeadline(deadline(s.cfg.Timeout))

	client, err := smtp.NewClient(conn, s.cfg.SMTP.Host)
	if err != nil {
		conn.Close()
		return &DispatchError{Provider: "smtp", Err: err}
	}
	defer client.Close()

	if s.cfg.SMTP.UseTLS {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.SMTP.Host}); err != nil {
			return &DispatchError{Provider: "smtp", Err: err}
		}
	}

	if s.cfg.SMTP.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.SMTP.Username, password, s.cfg.SMTP.Host)
		if err := client.Auth(auth); err != nil {
			return &DispatchError{Provider: "smtp", Err: err}
		}
	}

	if err := client.Mail(fromAddr); err != nil {
		return &DispatchError{Provider: "smtp", Err: err}
	}
	for _, recipient := range to {
		if err := client.Rcpt(recipient); err != nil {
			return &DispatchError{Provider: "smtp", Err: err}
		}
	}

	writer, err := client.Data()
	if err != nil {
		return &DispatchError{Provider: "smtp", Err: err}
	}
	if _, err := writer.Write([]byte(msg.String())); err != nil {
		writer.Close()
		return &DispatchError{Provider: "smtp", Err: err}
	}
	if err := writer.Close(); err != nil {
		return &DispatchError{Provider: "smtp", Err: err}
	}

	return client.Quit()
}

func deadline(timeout time.Duration) time.Time {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return time.Now().Add(timeout)
}
