package email

import (
	"fmt"
	"strings"

	emailapi "ziada-travel/httpServices/email"
)

// Sender delivers one rendered message to a recipient list. Implementations
// make a single attempt; failure surfaces synchronously as DispatchError or
// ConfigurationError.
type Sender interface {
	Send(subject, htmlBody string, recipients []string) error
}

// NewSender builds the Sender matching cfg.Provider. An unrecognized provider
// value is a startup error, not a silently missing backend.
func NewSender(cfg Config) (Sender, error) {
	switch cfg.Provider {
	case ProviderSMTP:
		return &smtpSender{cfg: cfg}, nil
	case ProviderMailtrapAPI:
		return &mailtrapSender{
			client: emailapi.NewMailtrapClient(cfg.MailtrapToken, cfg.Timeout),
			cfg:    cfg,
		}, nil
	case ProviderBrevoAPI, ProviderBrevoAlias:
		return &brevoSender{
			client: emailapi.NewBrevoClient(cfg.BrevoAPIKey, cfg.Timeout),
			cfg:    cfg,
		}, nil
	default:
		return nil, fmt.Errorf("unknown EMAIL_PROVIDER %q (want smtp, mailtrap_api or brevo_api)", cfg.Provider)
	}
}

// ParseFromAddress resolves a display name and address pair from a single
// "Name <email>" configuration string. A bare address gets the site's default
// display name.
func ParseFromAddress(from string) (name, addr string) {
	if strings.Contains(from, "<") && strings.Contains(from, ">") {
		name = strings.TrimSpace(from[:strings.Index(from, "<")])
		addr = strings.TrimSpace(from[strings.Index(from, "<")+1 : strings.Index(from, ">")])
		return name, addr
	}
	return "Ziada Travel", strings.TrimSpace(from)
}

// cleanRecipients trims and drops empty entries; an empty result is rejected
// before any provider call is made.
func cleanRecipients(provider string, recipients []string) ([]string, error) {
	var cleaned []string
	for _, recipient := range recipients {
		if trimmed := strings.TrimSpace(recipient); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil, &DispatchError{Provider: provider, Detail: "recipient list is empty"}
	}
	return cleaned, nil
}

type mailtrapSender struct {
	client *emailapi.MailtrapClient
	cfg    Config
}

func (s *mailtrapSender) Send(subject, htmlBody string, recipients []string) error {
	to, err := cleanRecipients("mailtrap", recipients)
	if err != nil {
		return err
	}
	if s.cfg.MailtrapToken == "" {
		return &ConfigurationError{Provider: "mailtrap", Reason: "MAILTRAP_API_TOKEN is not set"}
	}

	name, addr := ParseFromAddress(s.cfg.DefaultFrom)
	sendErr := s.client.SendMail(emailapi.Message{
		SenderName:  name,
		SenderEmail: addr,
		To:          to,
		Subject:     subject,
		HTML:        htmlBody,
	})
	return wrapAPIError("mailtrap", sendErr)
}

type brevoSender struct {
	client *emailapi.BrevoClient
	cfg    Config
}

func (s *brevoSender) Send(subject, htmlBody string, recipients []string) error {
	to, err := cleanRecipients("brevo", recipients)
	if err != nil {
		return err
	}
	if s.cfg.BrevoAPIKey == "" {
		return &ConfigurationError{Provider: "brevo", Reason: "BREVO_API_KEY is not set"}
	}

	// Brevo has dedicated sender settings; fall back to the shared
	// "Name <email>" string when they are absent.
	senderName := s.cfg.BrevoSenderName
	senderEmail := s.cfg.BrevoSenderEmail
	if senderEmail == "" {
		senderName, senderEmail = ParseFromAddress(s.cfg.DefaultFrom)
	}

	sendErr := s.client.SendMail(emailapi.Message{
		SenderName:  senderName,
		SenderEmail: senderEmail,
		To:          to,
		Subject:     subject,
		HTML:        htmlBody,
	})
	return wrapAPIError("brevo", sendErr)
}

func wrapAPIError(provider string, err error) error {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*emailapi.APIError); ok {
		return &DispatchError{
			Provider:   provider,
			StatusCode: apiErr.StatusCode,
			Detail:     apiErr.Body,
			Err:        apiErr,
		}
	}
	return &DispatchError{Provider: provider, Err: err}
}
