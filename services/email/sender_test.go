package email

import (
	"errors"
	"testing"
)

func TestParseFromAddress(t *testing.T) {
	cases := []struct {
		in       string
		wantName string
		wantAddr string
	}{
		{"Ziada Tours and Travel.com <info@ziadatoursandtravel.com>", "Ziada Tours and Travel.com", "info@ziadatoursandtravel.com"},
		{"info@ziadatoursandtravel.com", "Ziada Travel", "info@ziadatoursandtravel.com"},
		{"  Name  < a@b.com > ", "Name", "a@b.com"},
	}

	for _, c := range cases {
		name, addr := ParseFromAddress(c.in)
		if name != c.wantName || addr != c.wantAddr {
			t.Errorf("ParseFromAddress(%q) = (%q, %q), want (%q, %q)", c.in, name, addr, c.wantName, c.wantAddr)
		}
	}
}

func TestNewSenderUnknownProvider(t *testing.T) {
	_, err := NewSender(Config{Provider: "carrier-pigeon"})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewSenderKnownProviders(t *testing.T) {
	for _, provider := range []Provider{ProviderSMTP, ProviderMailtrapAPI, ProviderBrevoAPI, ProviderBrevoAlias} {
		if _, err := NewSender(Config{Provider: provider}); err != nil {
			t.Errorf("provider %q: %v", provider, err)
		}
	}
}

func TestMailtrapSenderRequiresToken(t *testing.T) {
	sender, err := NewSender(Config{Provider: ProviderMailtrapAPI})
	if err != nil {
		t.Fatal(err)
	}

	err = sender.Send("s", "<p>b</p>", []string{"a@example.com"})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %T: %v", err, err)
	}
	if cfgErr.Provider != "mailtrap" {
		t.Errorf("provider = %q", cfgErr.Provider)
	}
}

func TestSMTPSenderRejectsPlaceholderPassword(t *testing.T) {
	sender, err := NewSender(Config{
		Provider: ProviderSMTP,
		SMTP: SMTPConfig{
			Host:     "smtp-relay.brevo.com",
			Port:     587,
			Username: "user",
			Password: "REPLACE_WITH_BREVO_SMTP_KEY",
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	err = sender.Send("s", "<p>b</p>", []string{"a@example.com"})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %T: %v", err, err)
	}
}

func TestSendEmptyRecipients(t *testing.T) {
	sender, err := NewSender(Config{Provider: ProviderMailtrapAPI, MailtrapToken: "token"})
	if err != nil {
		t.Fatal(err)
	}

	err = sender.Send("s", "<p>b</p>", []string{"", "   "})
	var dispatchErr *DispatchError
	if !errors.As(err, &dispatchErr) {
		t.Fatalf("expected *DispatchError, got %T: %v", err, err)
	}
	if dispatchErr.Detail != "recipient list is empty" {
		t.Errorf("detail = %q", dispatchErr.Detail)
	}
}

type recordingSender struct {
	sent []sentMessage
	fail bool
}

type sentMessage struct {
	Subject    string
	HTML       string
	Recipients []string
}

func (r *recordingSender) Send(subject, htmlBody string, recipients []string) error {
	r.sent = append(r.sent, sentMessage{Subject: subject, HTML: htmlBody, Recipients: recipients})
	if r.fail {
		return &DispatchError{Provider: "test", Detail: "boom"}
	}
	return nil
}

func TestNotifyInquirySendsBothMessages(t *testing.T) {
	recorder := &recordingSender{}
	dispatcher := &Dispatcher{Sender: recorder, Cfg: Config{AdminEmail: "info@ziadatoursandtravel.com"}}

	n := Notification{
		SubmitterSubject: "We received your request",
		SubmitterHTML:    "<p>thanks</p>",
		StaffSubject:     "New contact inquiry",
		StaffHTML:        "<p>new</p>",
	}
	if err := dispatcher.NotifyInquiry(n, "visitor@example.com", "info@ziadatoursandtravel.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recorder.sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(recorder.sent))
	}
	if recorder.sent[0].Subject != "We received your request" {
		t.Errorf("first subject = %q", recorder.sent[0].Subject)
	}
	if recorder.sent[0].Recipients[0] != "visitor@example.com" {
		t.Errorf("first recipient = %q", recorder.sent[0].Recipients[0])
	}
	if recorder.sent[1].Subject != "New contact inquiry" {
		t.Errorf("second subject = %q", recorder.sent[1].Subject)
	}
	if recorder.sent[1].Recipients[0] != "info@ziadatoursandtravel.com" {
		t.Errorf("second recipient = %q", recorder.sent[1].Recipients[0])
	}
}

func TestNotifyInquiryAttemptsBothOnFailure(t *testing.T) {
	recorder := &recordingSender{fail: true}
	dispatcher := &Dispatcher{Sender: recorder, Cfg: Config{}}

	err := dispatcher.NotifyInquiry(Notification{
		SubmitterSubject: "a",
		StaffSubject:     "b",
	}, "visitor@example.com", "staff@example.com")
	if err == nil {
		t.Fatal("expected error")
	}
	// The staff notification is still attempted after the submitter send fails.
	if len(recorder.sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(recorder.sent))
	}
}

func TestNotifyInquiryExtraRecipients(t *testing.T) {
	recorder := &recordingSender{}
	dispatcher := &Dispatcher{Sender: recorder, Cfg: Config{
		ExtraRecipients: []string{"audit@ziadatoursandtravel.com"},
	}}

	if err := dispatcher.NotifyInquiry(Notification{}, "visitor@example.com", "staff@example.com"); err != nil {
		t.Fatal(err)
	}
	for i, msg := range recorder.sent {
		if len(msg.Recipients) != 2 || msg.Recipients[1] != "audit@ziadatoursandtravel.com" {
			t.Errorf("message %d recipients = %v", i, msg.Recipients)
		}
	}
}
